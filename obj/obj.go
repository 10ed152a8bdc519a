package obj

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hasbyte1/go-datakit/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of v in order. Non-objects yield an empty slice.
func Keys(v any) []string {
	fields, _ := value.Fields(v)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

// Values returns the values of v in key order. Non-objects yield an empty
// slice.
func Values(v any) []any {
	fields, _ := value.Fields(v)
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f.Value
	}
	return out
}

// HasOwn reports whether object v has key.
func HasOwn(v any, key string) bool {
	_, ok := value.Field(v, key)
	return ok
}

// Length returns the size of v: the key count of an object, 0 for a boolean,
// the digit estimate ceil(log10(n+1)) for a number and [value.Size] for
// anything else. The number rule gives 0 for 0 and for negatives.
func Length(v any) int {
	switch value.Of(v) {
	case value.KindObject:
		return value.Size(v)
	case value.KindBoolean:
		return 0
	case value.KindNumber:
		f, _ := value.Float(v)
		d := math.Ceil(math.Log10(f + 1))
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return 0
		}
		return int(d)
	}
	return value.Size(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Building
// ─────────────────────────────────────────────────────────────────────────────

// Invert returns a new object mapping every value of v to its key. Every
// value must be a string and no two keys may share one.
//
//	Invert(map[string]any{"a": "x", "b": "y"}) // → {x:a y:b}
func Invert(v any) (*value.Object, error) {
	fields, ok := value.Fields(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotObject, v)
	}
	out := value.NewObject()
	for _, f := range fields {
		s, ok := stringOf(f.Value)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrValueNotString, f.Key)
		}
		if out.Has(s) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValue, s)
		}
		out.Set(s, f.Key)
	}
	return out, nil
}

// Concat copies every field of y into x, replacing existing keys. x must be a
// *value.Object or a map[string]any; y may be any object.
func Concat(x, y any) error {
	dst, fields, err := operands(x, y)
	if err != nil {
		return err
	}
	for _, f := range fields {
		dst.set(f.Key, f.Value)
	}
	return nil
}

// Merge combines y into x in place. For each key of y:
//
//   - when both sides hold objects, y's fields are copied into x's object
//     (one level only);
//   - when x holds an array, y's value is appended to it (element-wise if
//     y's value is an array itself);
//   - otherwise, or when x lacks the key, x takes y's value.
//
// Nested objects of x that cannot be changed in place are replaced by a
// *value.Object holding the merged fields. x must be a *value.Object or a
// map[string]any.
func Merge(x, y any) error {
	dst, fields, err := operands(x, y)
	if err != nil {
		return err
	}
	for _, f := range fields {
		cur, ok := dst.get(f.Key)
		if !ok {
			dst.set(f.Key, f.Value)
			continue
		}
		switch value.Of(cur) {
		case value.KindObject:
			if inner, ok := value.Fields(f.Value); ok {
				dst.set(f.Key, mergeInto(cur, inner))
				continue
			}
		case value.KindArray:
			dst.set(f.Key, appendValue(cur, f.Value))
			continue
		}
		dst.set(f.Key, f.Value)
	}
	return nil
}

// mergeInto copies fields into cur, in place when cur is writable. The
// returned value replaces cur in its parent.
func mergeInto(cur any, fields []value.Entry) any {
	t, ok := writable(cur)
	if !ok {
		own, _ := value.Fields(cur)
		o := value.NewObject(own...)
		t, cur = objectTarget{o}, o
	}
	for _, f := range fields {
		t.set(f.Key, f.Value)
	}
	return cur
}

func appendValue(cur, v any) []any {
	items, _ := value.Elements(cur)
	out := make([]any, 0, len(items)+1)
	out = append(out, items...)
	if more, ok := value.Elements(v); ok {
		return append(out, more...)
	}
	return append(out, v)
}

func operands(x, y any) (target, []value.Entry, error) {
	dst, ok := writable(x)
	if !ok {
		return nil, nil, fmt.Errorf("%w: cannot write to %T", ErrNotObject, x)
	}
	fields, ok := value.Fields(y)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %T", ErrNotObject, y)
	}
	return dst, fields, nil
}

func stringOf(v any) (string, bool) {
	v = value.Indirect(v)
	if value.Of(v) != value.KindString {
		return "", false
	}
	return reflect.ValueOf(v).String(), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Writable targets
// ─────────────────────────────────────────────────────────────────────────────

type target interface {
	get(key string) (any, bool)
	set(key string, v any)
}

type objectTarget struct{ o *value.Object }

func (t objectTarget) get(key string) (any, bool) { return t.o.Get(key) }
func (t objectTarget) set(key string, v any)      { t.o.Set(key, v) }

type mapTarget map[string]any

func (t mapTarget) get(key string) (any, bool) {
	v, ok := t[key]
	return v, ok
}
func (t mapTarget) set(key string, v any) { t[key] = v }

func writable(v any) (target, bool) {
	switch x := v.(type) {
	case *value.Object:
		if x != nil {
			return objectTarget{x}, true
		}
	case map[string]any:
		if x != nil {
			return mapTarget(x), true
		}
	}
	return nil, false
}
