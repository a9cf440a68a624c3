package DHSet

import (
	"bytes"

	"github.com/g-m-twostay/go-dhtable/Maps/DHMap"
	"github.com/g-m-twostay/go-dhtable/Sets"
)

var _ Sets.Set = (*DHSet)(nil)

// DHSet is a set of byte strings stored as the keys of a DHMap.
type DHSet struct {
	m *DHMap.DHMap
}

func New() *DHSet {
	return &DHSet{DHMap.New()}
}

func (u *DHSet) Put(e []byte) bool {
	if u.m.Has(e) {
		return false
	}
	u.m.Insert(e, nil)
	return true
}

func (u *DHSet) Has(e []byte) bool {
	return u.m.Has(e)
}

func (u *DHSet) Remove(e []byte) bool {
	return u.m.Delete(e)
}

// Size of the set.
func (u *DHSet) Size() uint {
	return u.m.Size()
}

func (u *DHSet) Take() ([]byte, bool) {
	var e []byte
	found := false
	u.m.Range(func(key, _ []byte) bool {
		e, found = bytes.Clone(key), true
		return false
	})
	if found {
		u.m.Delete(e)
	}
	return e, found
}

// Range calls f on every member until f returns false. e is only valid during f and the set must not
// be modified from f.
func (u *DHSet) Range(f func(e []byte) bool) {
	u.m.Range(func(key, _ []byte) bool {
		return f(key)
	})
}

// Destroy releases all members. The set must not be used afterward.
func (u *DHSet) Destroy() {
	u.m.Destroy()
}
