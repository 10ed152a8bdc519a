package value

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Arrays
// ─────────────────────────────────────────────────────────────────────────────

// Elements returns the elements of an array-kind value. A []any is returned
// as-is and must not be modified by the caller; other slice and array types
// are copied into a new []any. The boolean is false for other kinds.
func Elements(v any) ([]any, bool) {
	v = Indirect(v)
	if items, ok := v.([]any); ok {
		return items, true
	}
	if Of(v) != KindArray {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Objects
// ─────────────────────────────────────────────────────────────────────────────

// Fields returns the entries of an object-kind value in key order:
// insertion order for [Object], sorted order for Go maps and declaration
// order for struct fields. Object-kind values with no fields (such as
// channels) yield an empty slice. The boolean is false for other kinds.
func Fields(v any) ([]Entry, bool) {
	v = Indirect(v)
	if Of(v) != KindObject {
		return nil, false
	}
	switch x := v.(type) {
	case *Object:
		return x.Entries(), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]Entry, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: k, Value: x[k]}
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		sortKeys(keys)
		out := make([]Entry, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: k.String(), Value: rv.MapIndex(k).Interface()}
		}
		return out, true
	case reflect.Struct:
		return structFields(rv), true
	}
	return []Entry{}, true
}

// Field returns the value stored under key in an object-kind value.
func Field(v any, key string) (any, bool) {
	v = Indirect(v)
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil, false
		}
		return x.Get(key)
	case map[string]any:
		val, ok := x[key]
		return val, ok
	}
	if Of(v) != KindObject {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		k := reflect.ValueOf(key).Convert(rv.Type().Key())
		val := rv.MapIndex(k)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		t := rv.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if name, ok := fieldName(f); ok && name == key {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func structFields(rv reflect.Value) []Entry {
	t := rv.Type()
	out := make([]Entry, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		out = append(out, Entry{Key: name, Value: rv.Field(i).Interface()})
	}
	return out
}

// fieldName honours the json tag so that records keyed as {"id": ...} and
// structs tagged `json:"id"` are addressed the same way.
func fieldName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return f.Name, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Maps
// ─────────────────────────────────────────────────────────────────────────────

// MapEntries returns the entries of a map-kind value: insertion order for
// [Map], sorted key order for Go maps. The boolean is false for other kinds.
func MapEntries(v any) ([]MapEntry, bool) {
	v = Indirect(v)
	if Of(v) != KindMap {
		return nil, false
	}
	if m, ok := v.(*Map); ok {
		return m.Entries(), true
	}
	rv := reflect.ValueOf(v)
	keys := rv.MapKeys()
	sortKeys(keys)
	out := make([]MapEntry, len(keys))
	for i, k := range keys {
		out[i] = MapEntry{Key: k.Interface(), Value: rv.MapIndex(k).Interface()}
	}
	return out, true
}

// Lookup returns the value stored under key in an object or map. Object
// keys must be strings.
func Lookup(v any, key any) (any, bool) {
	v = Indirect(v)
	switch Of(v) {
	case KindObject:
		s, ok := key.(string)
		if !ok {
			return nil, false
		}
		return Field(v, s)
	case KindMap:
		if m, ok := v.(*Map); ok {
			return m.Get(key)
		}
		rv := reflect.ValueOf(v)
		kt := rv.Type().Key()
		k := reflect.ValueOf(key)
		if !k.IsValid() || !Comparable(key) || !k.Type().ConvertibleTo(kt) {
			return nil, false
		}
		val := rv.MapIndex(k.Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Size
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of members of a container, the rune count of a
// string, or 0 for anything else.
func Size(v any) int {
	v = Indirect(v)
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x)
	case *Object:
		return x.Len()
	case *Map:
		return x.Len()
	case *Set:
		return x.Len()
	}
	switch Of(v) {
	case KindArray:
		return reflect.ValueOf(v).Len()
	case KindMap:
		return reflect.ValueOf(v).Len()
	case KindObject:
		f, _ := Fields(v)
		return len(f)
	case KindString:
		return utf8.RuneCountInString(reflect.ValueOf(v).String())
	}
	return 0
}

func sortKeys(keys []reflect.Value) {
	slices.SortFunc(keys, compareKeys)
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		}
	}
	return cmp.Compare(keyString(a), keyString(b))
}

func keyString(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return fmt.Sprint(v.Interface())
}
