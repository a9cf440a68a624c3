package DHMap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps"
)

var _ maps.Map = GodsMap{}

// GodsMap exposes a DHMap through the gods maps.Map interface. Keys and values passed in must be string
// or []byte; values handed out are []byte copies.
type GodsMap struct {
	m *DHMap
}

// Gods returns a view of u as a gods map. Changes through either side are visible to the other.
func (u *DHMap) Gods() GodsMap {
	return GodsMap{u}
}

func toBytes(v interface{}) []byte {
	switch x := v.(type) {
	case []byte:
		return x
	case string:
		return []byte(x)
	case nil:
		return nil
	}
	panic(fmt.Sprintf("DHMap: unsupported gods key or value type %T", v))
}

func (u GodsMap) Put(key, value interface{}) {
	u.m.Insert(toBytes(key), toBytes(value))
}

func (u GodsMap) Get(key interface{}) (interface{}, bool) {
	if v, ok := u.m.Search(toBytes(key)); ok {
		return v, true
	}
	return nil, false
}

func (u GodsMap) Remove(key interface{}) {
	u.m.Delete(toBytes(key))
}

func (u GodsMap) Keys() []interface{} {
	keys := make([]interface{}, 0, u.m.Size())
	for _, k := range u.m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Values in the same order as Keys.
func (u GodsMap) Values() []interface{} {
	vals := make([]interface{}, 0, u.m.Size())
	u.m.Range(func(_, val []byte) bool {
		vals = append(vals, bytes.Clone(val))
		return true
	})
	return vals
}

func (u GodsMap) Empty() bool {
	return u.m.Size() == 0
}

func (u GodsMap) Size() int {
	return int(u.m.Size())
}

func (u GodsMap) Clear() {
	u.m.Clear()
}

func (u GodsMap) String() string {
	var sb strings.Builder
	sb.WriteString("DHMap\n")
	u.m.Range(func(key, val []byte) bool {
		fmt.Fprintf(&sb, "%q:%q ", key, val)
		return true
	})
	return sb.String()
}
