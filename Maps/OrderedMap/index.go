package OrderedMap

import (
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// index keeps the keys of an OrderedMap sorted. Keys are compared as strings, which is bytewise.
type index interface {
	insert(key string)
	remove(key string)
	// ascend calls f on keys >= from, and < *to if to isn't nil, until f returns false.
	ascend(from string, to *string, f func(key string) bool)
	min() (string, bool)
	max() (string, bool)
	clear()
}

const degree = 32

type btreeIndex struct {
	t *btree.BTreeG[string]
}

func newBTreeIndex() *btreeIndex {
	return &btreeIndex{btree.NewG[string](degree, func(a, b string) bool { return a < b })}
}

func (u *btreeIndex) insert(key string) {
	u.t.ReplaceOrInsert(key)
}

func (u *btreeIndex) remove(key string) {
	u.t.Delete(key)
}

func (u *btreeIndex) ascend(from string, to *string, f func(key string) bool) {
	if to == nil {
		u.t.AscendGreaterOrEqual(from, f)
	} else {
		u.t.AscendRange(from, *to, f)
	}
}

func (u *btreeIndex) min() (string, bool) {
	return u.t.Min()
}

func (u *btreeIndex) max() (string, bool) {
	return u.t.Max()
}

func (u *btreeIndex) clear() {
	u.t.Clear(false)
}

type llrbIndex struct {
	t *llrb.LLRB
}

func newLLRBIndex() *llrbIndex {
	return &llrbIndex{llrb.New()}
}

func (u *llrbIndex) insert(key string) {
	u.t.ReplaceOrInsert(llrb.String(key))
}

func (u *llrbIndex) remove(key string) {
	u.t.Delete(llrb.String(key))
}

func (u *llrbIndex) ascend(from string, to *string, f func(key string) bool) {
	it := func(i llrb.Item) bool {
		return f(string(i.(llrb.String)))
	}
	if to == nil {
		u.t.AscendGreaterOrEqual(llrb.String(from), it)
	} else {
		u.t.AscendRange(llrb.String(from), llrb.String(*to), it)
	}
}

func unwrap(i llrb.Item) (string, bool) {
	if i == nil {
		return "", false
	}
	return string(i.(llrb.String)), true
}

func (u *llrbIndex) min() (string, bool) {
	return unwrap(u.t.Min())
}

func (u *llrbIndex) max() (string, bool) {
	return unwrap(u.t.Max())
}

func (u *llrbIndex) clear() {
	u.t = llrb.New()
}
