package obj

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-datakit/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths
//
// A path names a value inside nested objects, maps and arrays by joining
// keys with dots. Array elements are addressed by their decimal index.
//
//	v := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Get(v, "user.name")   → "Alice", true
//	Get(v, "user.tags.1") → "ops", true
//	Set(v, "user.address.city", "London")
//	Dot(v)                → {user.name:Alice user.tags:[admin ops] ...}
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at path inside v.
func Get(v any, path string) (any, bool) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Has reports whether path resolves inside v.
func Has(v any, path string) bool {
	_, ok := Get(v, path)
	return ok
}

func step(v any, seg string) (any, bool) {
	switch value.Of(v) {
	case value.KindObject:
		return value.Field(v, seg)
	case value.KindMap:
		if got, ok := value.Lookup(v, seg); ok {
			return got, true
		}
		if n, err := strconv.Atoi(seg); err == nil {
			return value.Lookup(v, n)
		}
	case value.KindArray:
		items, _ := value.Elements(v)
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n >= len(items) {
			return nil, false
		}
		return items[n], true
	}
	return nil, false
}

// Set writes v into target at path, creating intermediate objects as
// needed. target and every existing object along the path must be a
// *value.Object or a map[string]any.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(target any, path string, v any) error {
	dst, ok := writable(target)
	if !ok {
		return fmt.Errorf("%w: cannot write to %T", ErrNotObject, target)
	}
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		dst.set(path, v)
		return nil
	}
	next, ok := dst.get(seg)
	if !ok {
		next = value.NewObject()
		dst.set(seg, next)
	}
	if err := Set(next, rest, v); err != nil {
		return fmt.Errorf("%w at %q", err, seg)
	}
	return nil
}

// Dot flattens nested objects of v into one object whose keys are the dot
// paths of the leaves. Arrays and maps are leaves. Non-objects yield an
// empty object.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // → {a.b:1}
func Dot(v any) *value.Object {
	out := value.NewObject()
	dotFlatten("", v, out)
	return out
}

func dotFlatten(prefix string, v any, out *value.Object) {
	fields, _ := value.Fields(v)
	for _, f := range fields {
		key := f.Key
		if prefix != "" {
			key = prefix + "." + f.Key
		}
		if value.Of(f.Value) == value.KindObject {
			dotFlatten(key, f.Value, out)
			continue
		}
		out.Set(key, f.Value)
	}
}

// Undot expands a flat object with dot-path keys into nested objects.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2}) // → {a:{b:1 c:2}}
func Undot(v any) (*value.Object, error) {
	fields, ok := value.Fields(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotObject, v)
	}
	out := value.NewObject()
	for _, f := range fields {
		if err := Set(out, f.Key, f.Value); err != nil {
			return nil, err
		}
	}
	return out, nil
}
