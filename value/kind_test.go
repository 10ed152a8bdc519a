package value_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-datakit/value"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	note string
}

type label string

type codeErr struct{ code int }

func (e *codeErr) Error() string { return "code" }

func TestOf(t *testing.T) {
	var nilObj *value.Object
	var nilPtr *user
	var nilFunc func()
	now := time.Now()

	tests := []struct {
		name string
		in   any
		want value.Kind
	}{
		{"nil", nil, value.KindNull},
		{"undefined", value.Undefined, value.KindUndefined},
		{"symbol", value.NewSymbol("s"), value.KindSymbol},
		{"string", "a", value.KindString},
		{"named string", label("x"), value.KindString},
		{"int", 1, value.KindNumber},
		{"uint8", uint8(1), value.KindNumber},
		{"float", 1.5, value.KindNumber},
		{"bool", true, value.KindBoolean},
		{"big int", big.NewInt(3), value.KindBigInt},
		{"date", now, value.KindDate},
		{"date pointer", &now, value.KindDate},
		{"any slice", []any{1}, value.KindArray},
		{"typed slice", []string{"a"}, value.KindArray},
		{"nil slice", []int(nil), value.KindArray},
		{"array", [2]int{1, 2}, value.KindArray},
		{"object", value.NewObject(), value.KindObject},
		{"string map", map[string]int{"a": 1}, value.KindObject},
		{"struct", user{}, value.KindObject},
		{"struct pointer", &user{}, value.KindObject},
		{"map", value.NewMap(), value.KindMap},
		{"int keyed map", map[int]string{}, value.KindMap},
		{"set", value.NewSet(), value.KindSet},
		{"weak map", value.NewWeakMap[int, string](), value.KindWeakMap},
		{"weak set", value.NewWeakSet[int](), value.KindWeakSet},
		{"func", func() {}, value.KindFunction},
		{"nil func", nilFunc, value.KindNull},
		{"error", errors.New("boom"), value.KindError},
		{"pointer error", &codeErr{1}, value.KindError},
		{"nil object", nilObj, value.KindNull},
		{"nil pointer", nilPtr, value.KindNull},
		{"channel falls back to object", make(chan int), value.KindObject},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.Of(tc.in))
			assert.Equal(t, tc.want, value.Of(tc.in), "classification must be stable")
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, value.KindString.IsPrimitive())
	assert.True(t, value.KindSymbol.IsPrimitive())
	assert.False(t, value.KindObject.IsPrimitive())

	assert.True(t, value.KindSet.IsComposite())
	assert.False(t, value.KindDate.IsComposite())

	assert.True(t, value.KindObject.IsKeyed())
	assert.True(t, value.KindMap.IsKeyed())
	assert.False(t, value.KindArray.IsKeyed())
}

func TestIndirect(t *testing.T) {
	n := 5
	p := &n
	assert.Equal(t, 5, value.Indirect(&p))
	assert.Nil(t, value.Indirect((*int)(nil)))

	o := value.NewObject()
	assert.Same(t, o, value.Indirect(o))

	f := big.NewFloat(1)
	assert.Same(t, f, value.Indirect(f), "pointers to sealed structs keep their identity")
	u := &user{ID: 1}
	assert.Equal(t, user{ID: 1}, value.Indirect(u))
}

func TestSealed(t *testing.T) {
	assert.True(t, value.Sealed(big.Float{}))
	assert.True(t, value.Sealed(big.NewFloat(1)))
	assert.True(t, value.Sealed(codeErr{}))
	assert.False(t, value.Sealed(user{}))
	assert.False(t, value.Sealed(&user{}))
	assert.False(t, value.Sealed(map[string]any{}))
	assert.False(t, value.Sealed(nil))
}

func TestSymbolIdentity(t *testing.T) {
	a := value.NewSymbol("id")
	b := value.NewSymbol("id")
	c := a

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, "Symbol(id)", a.String())
	assert.Equal(t, "id", b.Description())
}
