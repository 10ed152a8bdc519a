// Package deep implements structural operations over nested values: deep
// equality, ordering, deduplication, flattening, set algebra and content
// fingerprints. It works on any value understood by package value, so plain
// Go slices, maps and structs mix freely with [value.Object] and [value.Map].
//
// # Equality
//
// Equality is structural and kind-sensitive. Values of different kinds are
// never equal, and scalars compare without coercion:
//
//	deep.Equal([]any{1, map[string]any{"a": 2}}, []int{1}) // false (length)
//	deep.Equal(map[string]any{}, []any{})                   // false (kind)
//	deep.Equal(1, 1.0)                                      // true (both numbers)
//	deep.Equal(1, "1")                                      // false
//
// # Keyed records
//
// Objects and maps inside a sequence are compared by a named field rather
// than as a whole. The field is configured explicitly:
//
//	users := []any{
//	    map[string]any{"id": 2, "name": "Bob"},
//	    map[string]any{"id": 1, "name": "Ada"},
//	}
//	c := deep.New(deep.Key("id"))
//	unique, err := c.Unique(users)
//
// Operations that meet keyed records without a key fail with [ErrMissingKey].
//
// # Configuration
//
// A [Comparer] is immutable once built and safe for concurrent use. The
// package-level functions use a comparer with no options.
package deep
