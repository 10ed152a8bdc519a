package deep

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-datakit/value"
)

// Unique removes structural duplicates from items and returns the survivors
// in sorted order. See [Comparer.Unique].
func Unique(items []any, opts ...Option) ([]any, error) {
	return New(opts...).Unique(items)
}

// Unique sorts a copy of items by comparison value and keeps each element
// whose comparison value differs from that of the element after it; the
// final element is always kept. The comparison value of an object or map
// is its [Key] field, and of anything else the element itself.
//
// With [Sorted] the input order is trusted and no sort happens, so only
// adjacent duplicates are removed. items is never modified.
//
// It returns [ErrMissingKey] if items holds objects or maps and no key is
// configured.
func (c *Comparer) Unique(items []any) ([]any, error) {
	return c.dedupe("unique", items, c.sorted)
}

func (c *Comparer) dedupe(op string, items []any, sorted bool) ([]any, error) {
	if len(items) == 0 {
		return []any{}, nil
	}
	keys, err := c.project(op, items)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	same := func(i, j int) bool { return c.Compare(keys[i], keys[j]) == 0 }
	if sorted {
		c.log.Debug().Str("op", op).Int("items", len(items)).Msg("input declared sorted, skipping sort")
		same = func(i, j int) bool { return c.Equal(keys[i], keys[j]) }
	} else {
		slices.SortStableFunc(order, func(i, j int) int { return c.Compare(keys[i], keys[j]) })
	}

	// A run of tied elements can still hold several equality classes, such
	// as distinct errors sharing a message. Keep the last of each class.
	out := make([]any, 0, len(items))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && same(order[end-1], order[end]) {
			end++
		}
		run := order[start:end]
		for n, i := range run {
			if !slices.ContainsFunc(run[n+1:], func(j int) bool { return c.Equal(keys[i], keys[j]) }) {
				out = append(out, items[i])
			}
		}
		start = end
	}
	return out, nil
}

// project maps every element to its comparison value. Objects and maps are
// replaced by their key field, or [value.Undefined] when they lack it.
// Opaque objects have no fields and stand for themselves.
func (c *Comparer) project(op string, items []any) ([]any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		kind := value.Of(item)
		if !kind.IsKeyed() || kind == value.KindObject && isOpaque(value.Indirect(item)) {
			out[i] = item
			continue
		}
		if c.key == "" {
			c.log.Debug().Str("op", op).Int("index", i).Str("kind", value.Of(item).String()).Msg("keyed element without a comparison key")
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, op)
		}
		v, ok := value.Lookup(item, c.key)
		if !ok {
			c.log.Debug().Str("op", op).Str("key", c.key).Int("index", i).Msg("element has no key field, comparing as undefined")
			v = value.Undefined
		}
		out[i] = v
	}
	return out, nil
}
