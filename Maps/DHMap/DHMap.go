package DHMap

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	Go_DHTable "github.com/g-m-twostay/go-dhtable"
	"github.com/g-m-twostay/go-dhtable/Maps"
	"github.com/g-m-twostay/go-dhtable/Primes"
)

const (
	baseCapacity uint = 50 //capacity at size index i is the next prime of baseCapacity<<i.
	loadDen      uint = 10
	growNum      uint = 7 //grow before an insert when Size/Capacity > growNum/loadDen.
	shrinkNum    uint = 1 //shrink before a delete when Size/Capacity < shrinkNum/loadDen.
)

func capacityOf(sizeIdx uint) uint {
	return Primes.NextPrime(baseCapacity << sizeIdx)
}

// DHMap is an open addressing hash table from byte strings to byte strings using double hashing.
// Deleted entries leave tombstones so probe sequences of other keys stay intact. The capacity is
// always prime and moves along the ladder NextPrime(50<<i): up one rung when the load factor
// exceeds 0.7 at an insert, down one rung when it drops below 0.1 at a delete. Resizing drops all
// tombstones.
//
// DHMap isn't safe for concurrent use. A DHMap must be created with New.
type DHMap struct {
	bkt     []slot
	sizeIdx uint
	count   uint //occupied slots.
	dead    uint //tombstones.
}

// New DHMap at the smallest capacity, 53.
func New() *DHMap {
	return newSized(0)
}

func newSized(sizeIdx uint) *DHMap {
	return &DHMap{bkt: make([]slot, capacityOf(sizeIdx)), sizeIdx: sizeIdx}
}

func (u *DHMap) live() {
	if u.bkt == nil {
		panic("DHMap: use after Destroy")
	}
}

// probe returns the first slot and the step of the probe sequence of key in the current table.
func (u *DHMap) probe(key []byte) (h1, step, m uint) {
	m = uint(len(u.bkt))
	return Go_DHTable.H1.HashBytes(key, m), Go_DHTable.Step(Go_DHTable.H2.HashBytes(key, m), m), m
}

// find returns the index of the slot holding key, or -1. At most m slots are visited: the sequence
// is a full cycle, so a table whose empty slots are all used up by tombstones still terminates.
func (u *DHMap) find(key []byte) int {
	h1, step, m := u.probe(key)
	for a := range m {
		i := Go_DHTable.Probe(h1, step, m, a)
		if s := &u.bkt[i]; s.state == empty {
			break
		} else if s.state == occupied && bytes.Equal(s.key, key) {
			return int(i)
		}
	}
	return -1
}

// move places key:val into a table that has no tombstones and doesn't contain key, taking ownership
// of both slices.
func (u *DHMap) move(key, val []byte) {
	h1, step, m := u.probe(key)
	for a := range m {
		if s := &u.bkt[Go_DHTable.Probe(h1, step, m, a)]; s.state == empty {
			s.key, s.val, s.state = key, val, occupied
			u.count++
			return
		}
	}
	panic("DHMap: no empty slot during rebuild")
}

// resize rebuilds the table at sizeIdx. Every live entry is moved into a fresh table first and only
// then the whole header is swapped in one assignment; tombstones aren't carried over.
func (u *DHMap) resize(sizeIdx uint) {
	M := newSized(sizeIdx)
	for i := range u.bkt {
		if s := &u.bkt[i]; s.state == occupied {
			M.move(s.key, s.val)
		}
	}
	*u = *M
}

// Insert key:val. An existing value of key is replaced and Size doesn't change. Both slices are copied.
// Grows the table first if the load factor is above 0.7. If tombstones alone push the used slots
// above that, the table is rebuilt at the same capacity instead.
func (u *DHMap) Insert(key, val []byte) {
	u.live()
	if m := uint(len(u.bkt)); u.count*loadDen > m*growNum {
		u.resize(u.sizeIdx + 1)
	} else if (u.count+u.dead)*loadDen > m*growNum {
		u.resize(u.sizeIdx)
	}

	h1, step, m := u.probe(key)
	free := -1
	for a := range m {
		i := Go_DHTable.Probe(h1, step, m, a)
		s := &u.bkt[i]
		if s.state == occupied {
			if bytes.Equal(s.key, key) {
				s.val = bytes.Clone(val)
				return
			}
			continue
		}
		if free < 0 {
			free = int(i)
		}
		if s.state == empty { //key can't be further along the sequence.
			break
		}
	}
	if free < 0 {
		panic("DHMap: no free slot")
	}
	s := &u.bkt[free]
	if s.state == tombstone {
		u.dead--
	}
	s.key, s.val, s.state = bytes.Clone(key), bytes.Clone(val), occupied
	u.count++
}

// Search returns a copy of the value of key.
func (u *DHMap) Search(key []byte) ([]byte, bool) {
	u.live()
	if i := u.find(key); i >= 0 {
		return bytes.Clone(u.bkt[i].val), true
	}
	return nil, false
}

// Has key.
func (u *DHMap) Has(key []byte) bool {
	u.live()
	return u.find(key) >= 0
}

// Delete key and leave a tombstone in its slot. Returns false if key wasn't present.
// Shrinks the table first if the load factor is below 0.1 and the table isn't at the smallest capacity;
// this happens even when key turns out to be absent.
func (u *DHMap) Delete(key []byte) bool {
	u.live()
	if u.sizeIdx > 0 && u.count*loadDen < uint(len(u.bkt))*shrinkNum {
		u.resize(u.sizeIdx - 1)
	}
	i := u.find(key)
	if i < 0 {
		return false
	}
	u.bkt[i] = slot{state: tombstone}
	u.count--
	u.dead++
	return true
}

// Destroy releases all entries. The DHMap must not be used afterward; every method except Destroy panics.
func (u *DHMap) Destroy() {
	clear(u.bkt)
	*u = DHMap{}
}

// Clear removes all entries and returns the table to the smallest capacity.
func (u *DHMap) Clear() {
	u.live()
	*u = *newSized(0)
}

// Size is the number of entries.
func (u *DHMap) Size() uint {
	return u.count
}

// Capacity is the number of slots, always prime.
func (u *DHMap) Capacity() uint {
	return uint(len(u.bkt))
}

// SizeIndex is the current rung on the capacity ladder, 0 for the smallest table.
func (u *DHMap) SizeIndex() uint {
	return u.sizeIdx
}

// Range calls f on every entry in slot order until f returns false. key and val are the table's own
// slices: they must not be modified or retained, and the table must not be modified during Range.
func (u *DHMap) Range(f func(key, val []byte) bool) {
	u.live()
	for i := range u.bkt {
		if s := &u.bkt[i]; s.state == occupied && !f(s.key, s.val) {
			return
		}
	}
}

// Keys returns copies of all keys in slot order.
func (u *DHMap) Keys() [][]byte {
	keys := make([][]byte, 0, u.count)
	u.Range(func(key, _ []byte) bool {
		keys = append(keys, bytes.Clone(key))
		return true
	})
	return keys
}

func (u *DHMap) Stats() Maps.Stats {
	st := Maps.Stats{Size: u.count, Capacity: uint(len(u.bkt)), SizeIndex: u.sizeIdx, Tombstones: u.dead}
	if st.Capacity > 0 {
		st.LoadFactor = float32(u.count) / float32(st.Capacity)
		st.TombstonesCapacityRatio = float32(u.dead) / float32(st.Capacity)
	}
	if u.count > 0 {
		st.TombstonesSizeRatio = float32(u.dead) / float32(u.count)
	}
	return st
}

// Fingerprint digests the set of entries independently of their layout: two tables holding the same
// pairs have the same fingerprint whatever their capacity or insertion history.
func (u *DHMap) Fingerprint() uint64 {
	var sum uint64
	var n [8]byte
	d := xxhash.New()
	u.Range(func(key, val []byte) bool {
		d.Reset()
		binary.LittleEndian.PutUint64(n[:], uint64(len(key)))
		d.Write(n[:])
		d.Write(key)
		d.Write(val)
		sum += d.Sum64()
		return true
	})
	return sum
}
