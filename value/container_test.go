package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-datakit/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Object
// ─────────────────────────────────────────────────────────────────────────────

func TestObjectKeepsInsertionOrder(t *testing.T) {
	o := value.NewObject(
		value.Entry{Key: "b", Value: 1},
		value.Entry{Key: "a", Value: 2},
	)
	o.Set("c", 3)
	o.Set("b", 10)

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	assert.Equal(t, []any{10, 2, 3}, o.Values())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestObjectDelete(t *testing.T) {
	o := value.NewObject(value.Entry{Key: "a", Value: 1}, value.Entry{Key: "b", Value: 2})
	assert.True(t, o.Delete("a"))
	assert.False(t, o.Delete("a"))
	assert.Equal(t, []string{"b"}, o.Keys())
	assert.False(t, o.Has("a"))
}

func TestObjectZeroValue(t *testing.T) {
	var o value.Object
	o.Set("x", 1)
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, "{x:1}", o.String())
}

func TestObjectOfSortsKeys(t *testing.T) {
	o := value.ObjectOf(map[string]any{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, o.Keys())
}

func TestObjectCloneIsIndependent(t *testing.T) {
	o := value.NewObject(value.Entry{Key: "a", Value: 1})
	c := o.Clone()
	c.Set("b", 2)
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, 2, c.Len())
}

func TestObjectAllStopsEarly(t *testing.T) {
	o := value.NewObject(value.Entry{Key: "a", Value: 1}, value.Entry{Key: "b", Value: 2})
	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func TestMapArbitraryKeys(t *testing.T) {
	m := value.NewMap(
		value.MapEntry{Key: 1, Value: "one"},
		value.MapEntry{Key: "1", Value: "string one"},
		value.MapEntry{Key: true, Value: "yes"},
	)
	assert.Equal(t, []any{1, "1", true}, m.Keys())

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = m.Get("1")
	require.True(t, ok)
	assert.Equal(t, "string one", v)
}

func TestMapRejectsUncomparableKeys(t *testing.T) {
	m := value.NewMap()
	assert.False(t, m.Set([]int{1}, "x"))
	assert.False(t, m.Has([]int{1}))
	assert.Equal(t, 0, m.Len())
}

func TestMapDelete(t *testing.T) {
	m := value.NewMap(value.MapEntry{Key: 1, Value: "a"}, value.MapEntry{Key: 2, Value: "b"})
	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, []any{2}, m.Keys())
	assert.Equal(t, "Map{2=>b}", m.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Set
// ─────────────────────────────────────────────────────────────────────────────

func TestSet(t *testing.T) {
	s := value.NewSet(3, 1, 3, 2)
	assert.Equal(t, []any{3, 1, 2}, s.Values())
	assert.True(t, s.Has(1))
	assert.False(t, s.Add(1))
	assert.True(t, s.Delete(1))
	assert.False(t, s.Has(1))
	assert.Equal(t, "Set{3 2}", s.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Weak containers
// ─────────────────────────────────────────────────────────────────────────────

func TestWeakMap(t *testing.T) {
	key := &user{ID: 1}
	w := value.NewWeakMap[user, string]()
	w.Set(key, "ada")

	v, ok := w.Get(key)
	require.True(t, ok)
	assert.Equal(t, "ada", v)
	assert.False(t, w.Has(&user{ID: 1}), "keys compare by identity")
	assert.True(t, w.Delete(key))
	assert.False(t, w.Has(key))
}

func TestWeakSet(t *testing.T) {
	p := &user{ID: 2}
	w := value.NewWeakSet[user]()
	w.Add(p)
	w.Add(nil)
	assert.True(t, w.Has(p))
	assert.False(t, w.Has(nil))
	assert.True(t, w.Delete(p))
	assert.False(t, w.Has(p))
}
