package deep

import (
	"reflect"
	"slices"

	"github.com/hasbyte1/go-datakit/value"
)

// Equal reports whether a and b are structurally equal.
//
// Kinds must match. Objects and maps must hold the same keys with equal
// values, arrays the same elements in the same order and sets the same
// members. Scalars compare without coercion: numbers by numeric value
// (NaN is never equal), strings by content, dates by instant. Functions,
// errors, symbols and weak containers compare by identity. Structs without
// exported fields compare with ==, and pointers to them by address.
func Equal(a, b any) bool { return std.Equal(a, b) }

// Equal is the configured form of the package-level [Equal]. With
// [IgnoreOrder], arrays at every depth compare as multisets.
func (c *Comparer) Equal(a, b any) bool {
	a, b = value.Indirect(a), value.Indirect(b)
	kind := value.Of(a)
	if kind != value.Of(b) {
		return false
	}
	switch kind {
	case value.KindObject:
		return c.equalObjects(a, b)
	case value.KindMap:
		return c.equalMaps(a, b)
	case value.KindArray:
		return c.equalArrays(a, b)
	case value.KindSet:
		return c.equalSets(a.(*value.Set), b.(*value.Set))
	}
	return equalScalars(kind, a, b)
}

func (c *Comparer) equalObjects(a, b any) bool {
	if isOpaque(a) || isOpaque(b) {
		return value.Comparable(a) && value.Comparable(b) && a == b
	}
	fa, _ := value.Fields(a)
	fb, _ := value.Fields(b)
	if len(fa) != len(fb) {
		return false
	}
	other := make(map[string]any, len(fb))
	for _, f := range fb {
		other[f.Key] = f.Value
	}
	for _, f := range fa {
		v, ok := other[f.Key]
		if !ok || !c.Equal(f.Value, v) {
			return false
		}
	}
	return true
}

func (c *Comparer) equalMaps(a, b any) bool {
	ea, _ := value.MapEntries(a)
	if len(ea) != value.Size(b) {
		return false
	}
	for _, e := range ea {
		v, ok := value.Lookup(b, e.Key)
		if !ok || !c.Equal(e.Value, v) {
			return false
		}
	}
	return true
}

func (c *Comparer) equalArrays(a, b any) bool {
	xs, _ := value.Elements(a)
	ys, _ := value.Elements(b)
	if len(xs) != len(ys) {
		return false
	}
	if c.ignoreOrder {
		return c.matchAll(xs, ys)
	}
	for i := range xs {
		if !c.Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// matchAll reports whether every element of xs pairs off with a distinct
// equal element of ys. Callers check the lengths first.
func (c *Comparer) matchAll(xs, ys []any) bool {
	rest := slices.Clone(ys)
	for _, x := range xs {
		i := slices.IndexFunc(rest, func(y any) bool { return c.Equal(x, y) })
		if i < 0 {
			return false
		}
		rest = slices.Delete(rest, i, i+1)
	}
	return true
}

// equalSets matches members structurally, so a set holding 1 equals one
// holding 1.0.
func (c *Comparer) equalSets(a, b *value.Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	return c.matchAll(a.Values(), b.Values())
}

func equalScalars(kind value.Kind, a, b any) bool {
	switch kind {
	case value.KindNull, value.KindUndefined:
		return true
	case value.KindNumber:
		x, y := toNumber(a), toNumber(b)
		return !x.isNaN() && !y.isNaN() && compareNumbers(x, y) == 0
	case value.KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case value.KindBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case value.KindBigInt:
		x, _ := value.BigInt(a)
		y, _ := value.BigInt(b)
		return x.Cmp(y) == 0
	case value.KindDate:
		return dateOf(a).Equal(dateOf(b))
	case value.KindFunction:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return value.Comparable(a) && value.Comparable(b) && a == b
}
