package value

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// MapEntry is a single key/value pair of a map.
type MapEntry struct {
	Key   any
	Value any
}

// Map is an associative container with arbitrary comparable keys that
// remembers insertion order. The zero value is an empty map ready to use.
type Map struct {
	keys []any
	vals map[any]any
}

// NewMap creates a map from entries. Entries whose key is not comparable are
// skipped.
func NewMap(entries ...MapEntry) *Map {
	m := &Map{
		keys: make([]any, 0, len(entries)),
		vals: make(map[any]any, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Comparable reports whether v can be used as a [Map] key or [Set] member
// without panicking.
func Comparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	if !Comparable(key) {
		return false
	}
	_, ok := m.vals[key]
	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key any) (any, bool) {
	if !Comparable(key) {
		return nil, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Set stores v under key and reports whether the key was accepted. Keys
// that are not comparable are rejected.
func (m *Map) Set(key, v any) bool {
	if !Comparable(key) {
		return false
	}
	if m.vals == nil {
		m.vals = make(map[any]any)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return true
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key any) bool {
	if !m.Has(key) {
		return false
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k any) bool { return k == key })
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []any { return slices.Clone(m.keys) }

// Values returns the values in key order.
func (m *Map) Values() []any {
	out := make([]any, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.vals[k]
	}
	return out
}

// Entries returns the key/value pairs in key order.
func (m *Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.keys))
	for i, k := range m.keys {
		out[i] = MapEntry{Key: k, Value: m.vals[k]}
	}
	return out
}

// All iterates over the entries in key order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map) Clone() *Map { return NewMap(m.Entries()...) }

// String renders the map as Map{k1=>v1 k2=>v2}.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("Map{")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=>%v", k, m.vals[k])
	}
	b.WriteByte('}')
	return b.String()
}
