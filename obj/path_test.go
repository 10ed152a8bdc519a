package obj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-datakit/obj"
	"github.com/hasbyte1/go-datakit/value"
)

func nested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"tags":    []any{"admin", "ops"},
			"account": account{ID: 9},
			"seen":    value.NewMap(value.MapEntry{Key: 1, Value: "mon"}),
		},
	}
}

func TestGet(t *testing.T) {
	m := nested()
	cases := map[string]any{
		"user.name":       "Alice",
		"user.tags.1":     "ops",
		"user.account.id": 9,
		"user.seen.1":     "mon",
	}
	for path, want := range cases {
		got, ok := obj.Get(m, path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}

	for _, path := range []string{"user.missing", "user.tags.5", "user.tags.x", "user.name.first"} {
		_, ok := obj.Get(m, path)
		assert.False(t, ok, path)
	}
}

func TestHas(t *testing.T) {
	m := nested()
	assert.True(t, obj.Has(m, "user"))
	assert.False(t, obj.Has(m, "nope"))
}

func TestSetCreatesIntermediates(t *testing.T) {
	m := nested()
	require.NoError(t, obj.Set(m, "user.address.city", "London"))
	got, ok := obj.Get(m, "user.address.city")
	require.True(t, ok)
	assert.Equal(t, "London", got)
	assert.IsType(t, &value.Object{}, m["user"].(map[string]any)["address"])
}

func TestSetThroughReadOnly(t *testing.T) {
	m := nested()
	err := obj.Set(m, "user.account.id", 1)
	assert.ErrorIs(t, err, obj.ErrNotObject)
	assert.Contains(t, err.Error(), `"account"`)
}

func TestDotAndUndot(t *testing.T) {
	m := map[string]any{"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}}, "e": []any{3}}
	flat := obj.Dot(m)
	assert.Equal(t, []string{"a.b", "a.c.d", "e"}, flat.Keys())

	back, err := obj.Undot(flat)
	require.NoError(t, err)
	d, ok := obj.Get(back, "a.c.d")
	require.True(t, ok)
	assert.Equal(t, 2, d)

	_, err = obj.Undot(map[string]any{"a": 1, "a.b": 2})
	assert.ErrorIs(t, err, obj.ErrNotObject)
}
