package value

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Entry is a single key/value pair of an object.
type Entry struct {
	Key   string
	Value any
}

// Object is a string-keyed record that remembers insertion order.
//
// The zero value is an empty object ready to use. Object is not safe for
// concurrent mutation.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject creates an object from entries. A repeated key keeps its first
// position and takes the last value.
func NewObject(entries ...Entry) *Object {
	o := &Object{
		keys: make([]string, 0, len(entries)),
		vals: make(map[string]any, len(entries)),
	}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// ObjectOf copies m into a new object. Keys are inserted in sorted order
// because Go maps carry none.
func ObjectOf(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	o := &Object{keys: keys, vals: make(map[string]any, len(m))}
	for k, v := range m {
		o.vals[k] = v
	}
	return o
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Set stores v under key. New keys are appended to the key order; existing
// keys keep their position.
func (o *Object) Set(key string, v any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.vals[key]; !ok {
		return false
	}
	delete(o.vals, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Values returns the values in key order.
func (o *Object) Values() []any {
	out := make([]any, len(o.keys))
	for i, k := range o.keys {
		out[i] = o.vals[k]
	}
	return out
}

// Entries returns the key/value pairs in key order.
func (o *Object) Entries() []Entry {
	out := make([]Entry, len(o.keys))
	for i, k := range o.keys {
		out[i] = Entry{Key: k, Value: o.vals[k]}
	}
	return out
}

// All iterates over the entries in key order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (o *Object) Clone() *Object { return NewObject(o.Entries()...) }

// String renders the object as {k1:v1 k2:v2}.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%v", k, o.vals[k])
	}
	b.WriteByte('}')
	return b.String()
}
