package Maps

// Map is a map from byte strings to byte strings. Implementations own private copies of everything
// passed in; nothing returned aliases their storage unless documented.
type Map interface {
	// Insert key:val, replacing any previous value of key.
	Insert(key, val []byte)
	// Search returns a copy of the value of key.
	Search(key []byte) ([]byte, bool)
	Has(key []byte) bool
	// Delete key. Returns false and does nothing if key is absent.
	Delete(key []byte) bool
	Size() uint
	// Range calls f on every pair until f returns false. The slices are only valid during f, and the map
	// must not be modified from f.
	Range(f func(key, val []byte) bool)
}

// Stats is a snapshot of the occupancy of an open addressing table.
type Stats struct {
	Size                    uint //occupied slots.
	Capacity                uint
	SizeIndex               uint
	Tombstones              uint
	LoadFactor              float32 //Size/Capacity.
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32 //0 when Size is 0.
}
