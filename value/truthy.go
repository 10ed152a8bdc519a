package value

import (
	"math"
	"math/big"
	"reflect"
)

// Truthy reports whether v counts as true in a boolean context. nil,
// [Undefined], false, numeric zero, NaN, a zero big integer and the empty
// string are falsy; everything else, including empty containers, is truthy.
func Truthy(v any) bool {
	v = Indirect(v)
	switch Of(v) {
	case KindNull, KindUndefined:
		return false
	case KindBoolean:
		return reflect.ValueOf(v).Bool()
	case KindString:
		return reflect.ValueOf(v).Len() > 0
	case KindNumber:
		f, _ := Float(v)
		return f != 0 && !math.IsNaN(f)
	case KindBigInt:
		b, _ := BigInt(v)
		return b.Sign() != 0
	}
	return true
}

// IsEmpty reports whether v is structurally empty for its kind: a container
// with no members, the empty string or a NaN number. Values of other kinds
// are never empty.
func IsEmpty(v any) bool {
	v = Indirect(v)
	switch Of(v) {
	case KindObject, KindArray, KindMap, KindSet:
		return Size(v) == 0
	case KindString:
		return reflect.ValueOf(v).Len() == 0
	case KindNumber:
		f, _ := Float(v)
		return math.IsNaN(f)
	}
	return false
}

// Float converts a number-kind value to float64. The boolean is false for
// other kinds.
func Float(v any) (float64, bool) {
	v = Indirect(v)
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	if Of(v) != KindNumber {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// BigInt returns a bigint-kind value as *big.Int. The boolean is false for
// other kinds.
func BigInt(v any) (*big.Int, bool) {
	switch x := Indirect(v).(type) {
	case *big.Int:
		if x != nil {
			return x, true
		}
	case big.Int:
		return &x, true
	}
	return nil, false
}
