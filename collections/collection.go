package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-datakit/arr"
	"github.com/hasbyte1/go-datakit/deep"
	"github.com/hasbyte1/go-datakit/value"
)

// Collection is an immutable wrapper around a []any.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From([]string{"a", "b"})
//
// # Comparison
//
// Set algebra, deduplication and search compare elements structurally with
// the collection's [deep.Comparer]. Configure it with [Collection.By]:
//
//	c.By(deep.Key("id")).Unique()
//
// # Callbacks
//
// Callbacks receive the item, its index and the collection being walked.
type Collection struct {
	items []any
	cmp   *deep.Comparer
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New(items ...any) *Collection {
	dst := make([]any, len(items))
	copy(dst, items)
	return &Collection{items: dst, cmp: deep.New()}
}

// From creates a Collection from any slice or array (copied). Anything else
// yields an empty collection carrying [ErrNotArray].
func From(items any) *Collection {
	elems, ok := value.Elements(items)
	if !ok {
		return &Collection{items: []any{}, cmp: deep.New(), err: fmt.Errorf("%w: %T", ErrNotArray, items)}
	}
	return New(elems...)
}

// derive returns a collection holding items that shares c's comparer.
func (c *Collection) derive(items []any, err error) *Collection {
	if err != nil {
		return &Collection{items: c.items, cmp: c.cmp, err: err}
	}
	return &Collection{items: items, cmp: c.cmp}
}

// By returns a copy of c whose comparer has opts applied.
func (c *Collection) By(opts ...deep.Option) *Collection {
	return &Collection{items: c.items, cmp: c.cmp.With(opts...), err: c.err}
}

// Err returns the first error recorded in the chain that built c.
func (c *Collection) Err() error { return c.err }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection) All() []any {
	out := make([]any, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

// String returns a JSON representation of the collection.
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Last returns the last item, or false when the collection is empty.
func (c *Collection) Last() (any, bool) { return arr.Last(c.items) }

// LastOrFail returns the last item or [ErrEmptyCollection].
func (c *Collection) LastOrFail() (any, error) {
	if v, ok := c.Last(); ok {
		return v, nil
	}
	return nil, ErrEmptyCollection
}

// IndexOf returns the index of the first item structurally equal to v, or -1.
func (c *Collection) IndexOf(v any) int { return arr.IndexOf(c.items, v) }

// Contains reports whether some item is structurally equal to v.
func (c *Collection) Contains(v any) bool { return c.IndexOf(v) >= 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every item.
func (c *Collection) Each(fn func(any, int, *Collection)) {
	arr.ForEach(c.items, func(item any, i int, _ []any, ctx *Collection) { fn(item, i, ctx) }, c)
}

// Every reports whether fn holds for every item.
func (c *Collection) Every(fn func(any, int, *Collection) bool) bool {
	return arr.Every(c.items, func(item any, i int, _ []any, ctx *Collection) bool { return fn(item, i, ctx) }, c)
}

// Filter returns a new collection containing the items for which fn is true.
func (c *Collection) Filter(fn func(any, int, *Collection) bool) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.Filter(c.items, func(item any, i int, _ []any, ctx *Collection) bool { return fn(item, i, ctx) }, c), nil)
}

// Map returns a new collection of fn's results.
func (c *Collection) Map(fn func(any, int, *Collection) any) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.Map(c.items, func(item any, i int, _ []any, ctx *Collection) any { return fn(item, i, ctx) }, c), nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Rest returns the items from index from onwards. See [arr.Rest].
func (c *Collection) Rest(from int) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.Rest(c.items, from), nil)
}

// Until returns the items up to and including index to. See [arr.Until].
func (c *Collection) Until(to int) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.Until(c.items, to), nil)
}

// Compact drops the items mode rejects. See [arr.Compact].
func (c *Collection) Compact(mode arr.CompactMode) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.Compact(c.items, mode), nil)
}

// Concat appends others' items. With unique set, items already present
// (by Go equality) are skipped.
func (c *Collection) Concat(other []any, unique bool) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(arr.ConcatArrays(c.items, other, unique), nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural operations
// ─────────────────────────────────────────────────────────────────────────────

// Flatten inlines nested arrays, honouring the comparer's depth limit.
func (c *Collection) Flatten() *Collection {
	if c.err != nil {
		return c
	}
	flat, _ := c.cmp.Flatten(c.items).([]any)
	return c.derive(flat, nil)
}

// Unique removes structural duplicates. See [deep.Comparer.Unique].
func (c *Collection) Unique() *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(c.cmp.Unique(c.items))
}

// Union merges c with others, deduplicated and sorted.
func (c *Collection) Union(others ...[]any) *Collection {
	if c.err != nil {
		return c
	}
	seqs := append([][]any{c.items}, others...)
	return c.derive(c.cmp.Union(seqs...))
}

// Difference drops the items matching any element of others.
func (c *Collection) Difference(others ...[]any) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(c.cmp.Difference(c.items, others...))
}

// Without drops the items whose comparison value equals one of values.
func (c *Collection) Without(values ...any) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(c.cmp.Without(c.items, values))
}

// Intersect keeps the items matching some element of other.
func (c *Collection) Intersect(other []any) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(c.cmp.Intersection(c.items, other))
}
