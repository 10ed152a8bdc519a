package value

import (
	"math/big"
	"reflect"
	"time"
)

// Kind is the semantic classification of a value.
type Kind string

// Kinds returned by [Of].
const (
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindMap       Kind = "map"
	KindSet       Kind = "set"
	KindWeakMap   Kind = "weakmap"
	KindWeakSet   Kind = "weakset"
	KindFunction  Kind = "function"
	KindNull      Kind = "null"
	KindError     Kind = "error"
	KindDate      Kind = "date"
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindUndefined Kind = "undefined"
	KindSymbol    Kind = "symbol"
	KindBigInt    Kind = "bigint"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// IsPrimitive reports whether k is one of the scalar kinds
// (string, number, boolean, undefined, symbol, bigint).
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindString, KindNumber, KindBoolean, KindUndefined, KindSymbol, KindBigInt:
		return true
	}
	return false
}

// IsComposite reports whether k holds other values (object, array, map, set).
func (k Kind) IsComposite() bool {
	switch k {
	case KindObject, KindArray, KindMap, KindSet:
		return true
	}
	return false
}

// IsKeyed reports whether values of kind k are addressed by key
// (object or map). Keyed values need an explicit comparison key when they
// are deduplicated or combined.
func (k Kind) IsKeyed() bool { return k == KindObject || k == KindMap }

type weakMapper interface{ weakMap() }

type weakSetter interface{ weakSet() }

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Of returns the kind of v. It is total: values that match no other kind
// classify as [KindObject].
//
// Pointers are followed, so *T classifies like T; a nil pointer is
// [KindNull]. Nil slices and maps keep their container kind.
func Of(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case UndefinedType:
		return KindUndefined
	case Symbol:
		return KindSymbol
	case string:
		return KindString
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	case *Object:
		return nilOr(x == nil, KindObject)
	case *Map:
		return nilOr(x == nil, KindMap)
	case *Set:
		return nilOr(x == nil, KindSet)
	case *big.Int:
		return nilOr(x == nil, KindBigInt)
	case big.Int:
		return KindBigInt
	case time.Time:
		return KindDate
	case *time.Time:
		return nilOr(x == nil, KindDate)
	case weakMapper:
		return KindWeakMap
	case weakSetter:
		return KindWeakSet
	}
	return ofReflect(reflect.ValueOf(v))
}

func nilOr(isNil bool, k Kind) Kind {
	if isNil {
		return KindNull
	}
	return k
}

func ofReflect(rv reflect.Value) Kind {
	if rv.Type().Implements(errorType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return KindNull
		}
		return KindError
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return Of(rv.Elem().Interface())
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindMap
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunction
	}
	return KindObject
}

// Indirect follows pointers until it reaches a non-pointer value. Pointers
// whose pointer form is their canonical form are returned as-is: the
// module's own container types, *big.Int, *time.Time, anything
// implementing error and pointers to [Sealed] structs. A nil pointer
// yields nil.
func Indirect(v any) any {
	for {
		switch v.(type) {
		case nil, *Object, *Map, *Set, *big.Int, *time.Time, weakMapper, weakSetter, error:
			return v
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		if sealed(rv.Type().Elem()) {
			return v
		}
		v = rv.Elem().Interface()
	}
}

// Sealed reports whether v is a struct, or a pointer to one, without
// exported fields. Such values have nothing to compare field by field, so
// they compare with == and pointers to them by address.
func Sealed(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return sealed(t)
}

func sealed(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return false
		}
	}
	return true
}
