// Package OrderedMap pairs a DHMap with a sorted index of its keys. Point operations keep DHMap's
// expected O(1) cost plus an O(log n) index update on inserts of new keys and on deletes; iteration
// is in ascending bytewise key order.
package OrderedMap

import (
	"github.com/g-m-twostay/go-dhtable/Maps"
	"github.com/g-m-twostay/go-dhtable/Maps/DHMap"
)

var _ Maps.Map = (*OrderedMap)(nil)

type OrderedMap struct {
	m   *DHMap.DHMap
	idx index
}

// New OrderedMap indexed by a B-tree.
func New() *OrderedMap {
	return &OrderedMap{DHMap.New(), newBTreeIndex()}
}

// NewLLRB is New with a left-leaning red-black tree as the index.
func NewLLRB() *OrderedMap {
	return &OrderedMap{DHMap.New(), newLLRBIndex()}
}

func (u *OrderedMap) Insert(key, val []byte) {
	if !u.m.Has(key) {
		u.idx.insert(string(key))
	}
	u.m.Insert(key, val)
}

func (u *OrderedMap) Search(key []byte) ([]byte, bool) {
	return u.m.Search(key)
}

func (u *OrderedMap) Has(key []byte) bool {
	return u.m.Has(key)
}

func (u *OrderedMap) Delete(key []byte) bool {
	if u.m.Delete(key) {
		u.idx.remove(string(key))
		return true
	}
	return false
}

func (u *OrderedMap) Size() uint {
	return u.m.Size()
}

// Range over all entries in ascending key order. Values are copies.
func (u *OrderedMap) Range(f func(key, val []byte) bool) {
	u.AscendRange(nil, nil, f)
}

// AscendRange calls f on the entries with from <= key < to in ascending key order until f returns false.
// A nil to means no upper bound. The map must not be modified from f.
func (u *OrderedMap) AscendRange(from, to []byte, f func(key, val []byte) bool) {
	var end *string
	if to != nil {
		s := string(to)
		end = &s
	}
	u.idx.ascend(string(from), end, func(key string) bool {
		k := []byte(key)
		v, _ := u.m.Search(k)
		return f(k, v)
	})
}

// Min is the smallest key.
func (u *OrderedMap) Min() ([]byte, bool) {
	k, ok := u.idx.min()
	if !ok {
		return nil, false
	}
	return []byte(k), true
}

// Max is the largest key.
func (u *OrderedMap) Max() ([]byte, bool) {
	k, ok := u.idx.max()
	if !ok {
		return nil, false
	}
	return []byte(k), true
}

func (u *OrderedMap) Clear() {
	u.m.Clear()
	u.idx.clear()
}

// Destroy releases everything. The OrderedMap must not be used afterward.
func (u *OrderedMap) Destroy() {
	u.m.Destroy()
	u.idx = nil
}

func (u *OrderedMap) Stats() Maps.Stats {
	return u.m.Stats()
}
