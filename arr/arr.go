package arr

import (
	"slices"

	"github.com/hasbyte1/go-datakit/deep"
	"github.com/hasbyte1/go-datakit/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positions
// ─────────────────────────────────────────────────────────────────────────────

// Last returns the last element, optionally the last one matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Rest returns a copy of items starting at from. A negative from counts back
// from the end.
//
//	Rest([]int{1, 2, 3, 4}, 2)  // → [3 4]
//	Rest([]int{1, 2, 3, 4}, -1) // → [4]
func Rest[T any](items []T, from int) []T {
	return slices.Clone(items[clamp(from, len(items)):])
}

// Until returns a copy of items up to and including index to. A negative to
// counts back from the end, so -1 yields an empty slice.
//
//	Until([]int{1, 2, 3, 4}, 1)  // → [1 2]
//	Until([]int{1, 2, 3, 4}, -2) // → [1 2 3]
func Until[T any](items []T, to int) []T {
	return slices.Clone(items[:clamp(to+1, len(items))])
}

// clamp resolves a slice bound against length n. Negative bounds count back
// from n; the result always lies in [0, n].
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural search
// ─────────────────────────────────────────────────────────────────────────────

// Occurrence selects which matches [Index] reports.
type Occurrence string

// Occurrences accepted by [Index]. Anything else behaves like
// OccurrenceFirst.
const (
	OccurrenceFirst Occurrence = "first"
	OccurrenceLast  Occurrence = "last"
	OccurrenceAll   Occurrence = "all"
)

// IndexOf returns the index of the first element structurally equal to v,
// or -1.
func IndexOf[T any](items []T, v any) int {
	for i, item := range items {
		if deep.Equal(item, v) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element structurally equal to
// v, or -1.
func LastIndexOf[T any](items []T, v any) int {
	for i := len(items) - 1; i >= 0; i-- {
		if deep.Equal(items[i], v) {
			return i
		}
	}
	return -1
}

// IndicesOf returns the index of every element structurally equal to v in
// ascending order. The result is empty, never nil, when nothing matches.
func IndicesOf[T any](items []T, v any) []int {
	out := make([]int, 0)
	for i, item := range items {
		if deep.Equal(item, v) {
			out = append(out, i)
		}
	}
	return out
}

// Index searches items for v according to occ. OccurrenceFirst and
// OccurrenceLast yield at most one index; OccurrenceAll yields every match.
//
//	Index([]int{1, 2, 3, 2}, 2, OccurrenceAll)   // → [1 3]
//	Index([]int{1, 2, 3, 2}, 2, OccurrenceLast)  // → [3]
//	Index([]int{1, 2, 3, 2}, 9, OccurrenceFirst) // → []
func Index[T any](items []T, v any, occ Occurrence) []int {
	var i int
	switch occ {
	case OccurrenceAll:
		return IndicesOf(items, v)
	case OccurrenceLast:
		i = LastIndexOf(items, v)
	default:
		i = IndexOf(items, v)
	}
	if i < 0 {
		return []int{}
	}
	return []int{i}
}

// Contains reports whether items holds v itself. Unlike [IndexOf] the test
// is Go equality: pointers match by address and values that cannot be
// compared with == never match.
func Contains[T any](items []T, v any) bool {
	if !value.Comparable(v) {
		return false
	}
	for _, item := range items {
		if value.Comparable(item) && any(item) == v {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Compaction & concatenation
// ─────────────────────────────────────────────────────────────────────────────

// CompactMode selects what [Compact] drops.
type CompactMode string

// Compact modes. Anything else behaves like CompactFalsy.
const (
	// CompactFalsy drops elements that are not [value.Truthy].
	CompactFalsy CompactMode = "false"
	// CompactEmpty drops elements that are [value.IsEmpty]: empty containers,
	// empty strings and NaN. Zero and false survive.
	CompactEmpty CompactMode = "empty"
)

// Compact returns a new slice without the elements mode rejects.
//
//	Compact([]any{0, 1, "", nil, []any{}}, CompactFalsy) // → [1 []]
//	Compact([]any{0, 1, "", nil, []any{}}, CompactEmpty) // → [0 1 <nil>]
func Compact[T any](items []T, mode CompactMode) []T {
	keep := value.Truthy
	if mode == CompactEmpty {
		keep = func(v any) bool { return !value.IsEmpty(v) }
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ConcatArrays returns the elements of x followed by those of y. With unique
// set, elements of y already present in the result (by [Contains]) are
// skipped. If x or y is not an array the result is the pair [x y].
// Neither input is modified.
func ConcatArrays(x, y any, unique bool) []any {
	xs, okX := value.Elements(x)
	ys, okY := value.Elements(y)
	if !okX || !okY {
		return []any{x, y}
	}
	out := make([]any, 0, len(xs)+len(ys))
	out = append(out, xs...)
	for _, item := range ys {
		if unique && Contains(out, item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
