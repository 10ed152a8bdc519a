package value_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-datakit/value"
)

func TestElements(t *testing.T) {
	items, ok := value.Elements([]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, items)

	items, ok = value.Elements(&[2]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, items)

	_, ok = value.Elements(map[string]any{})
	assert.False(t, ok)
}

func TestFieldsStruct(t *testing.T) {
	fields, ok := value.Fields(user{ID: 7, Name: "Ada", note: "hidden"})
	require.True(t, ok)
	assert.Equal(t, []value.Entry{{Key: "id", Value: 7}, {Key: "name", Value: "Ada"}}, fields)
}

func TestFieldsMapSortedKeys(t *testing.T) {
	fields, ok := value.Fields(map[string]int{"b": 2, "a": 1})
	require.True(t, ok)
	assert.Equal(t, []value.Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, fields)

	_, ok = value.Fields([]any{})
	assert.False(t, ok)
}

func TestField(t *testing.T) {
	v, ok := value.Field(&user{ID: 3}, "id")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = value.Field(user{}, "note")
	assert.False(t, ok, "unexported fields are invisible")

	v, ok = value.Field(map[label]int{"k": 9}, "k")
	require.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = value.Field(42, "k")
	assert.False(t, ok)
}

func TestMapEntries(t *testing.T) {
	entries, ok := value.MapEntries(map[int]string{10: "ten", 2: "two"})
	require.True(t, ok)
	assert.Equal(t, []value.MapEntry{{Key: 2, Value: "two"}, {Key: 10, Value: "ten"}}, entries)
}

func TestLookup(t *testing.T) {
	m := value.NewMap(value.MapEntry{Key: "id", Value: 1})
	v, ok := value.Lookup(m, "id")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = value.Lookup(map[int]string{4: "four"}, 4)
	require.True(t, ok)
	assert.Equal(t, "four", v)

	_, ok = value.Lookup(map[int]string{4: "four"}, "4")
	assert.False(t, ok)

	_, ok = value.Lookup(value.NewObject(), 1)
	assert.False(t, ok, "object keys are strings")

	assert.NotPanics(t, func() {
		_, ok = value.Lookup(map[any]any{1: "a"}, []any{1})
	})
	assert.False(t, ok, "unhashable keys are never present")
}

func TestSize(t *testing.T) {
	assert.Equal(t, 3, value.Size([]int{1, 2, 3}))
	assert.Equal(t, 2, value.Size(user{}))
	assert.Equal(t, 1, value.Size(value.NewSet(1)))
	assert.Equal(t, 2, value.Size("héllo"[:3]))
	assert.Equal(t, 0, value.Size(42))
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, value.Undefined, false, 0, 0.0, math.NaN(), "", big.NewInt(0)}
	for _, v := range falsy {
		assert.False(t, value.Truthy(v), "%#v should be falsy", v)
	}
	truthy := []any{true, 1, -1.5, "0", []any{}, value.NewObject(), big.NewInt(2), value.NewSymbol("")}
	for _, v := range truthy {
		assert.True(t, value.Truthy(v), "%#v should be truthy", v)
	}
}

func TestIsEmpty(t *testing.T) {
	empty := []any{[]any{}, value.NewObject(), map[string]any{}, value.NewMap(), value.NewSet(), "", math.NaN()}
	for _, v := range empty {
		assert.True(t, value.IsEmpty(v), "%#v should be empty", v)
	}
	nonEmpty := []any{0, false, nil, []int{0}, "a", value.NewObject(value.Entry{Key: "a"})}
	for _, v := range nonEmpty {
		assert.False(t, value.IsEmpty(v), "%#v should not be empty", v)
	}
}

func TestFloat(t *testing.T) {
	f, ok := value.Float(uint16(7))
	require.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = value.Float("7")
	assert.False(t, ok)
}
