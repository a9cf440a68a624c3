package Sets

// Set of byte strings. Members are copied in; members handed out are copies unless documented.
type Set interface {
	// Put e in the set. Returns true if e wasn't already present.
	Put(e []byte) bool
	Has(e []byte) bool
	// Remove e from the set. Returns true if e was present.
	Remove(e []byte) bool
	Size() uint
	// Take removes an arbitrary member and returns it; false if the set is empty.
	Take() ([]byte, bool)
	Range(f func(e []byte) bool)
}
