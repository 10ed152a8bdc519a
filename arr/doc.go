// Package arr provides standalone helpers for Go slices: positional views,
// structural search, compaction and iteration with a bound context value.
//
// # Positions
//
// Views never alias the input; out-of-range indexes are clamped and negative
// ones count back from the end:
//
//	arr.Rest([]int{1, 2, 3, 4}, 2)  // → [3 4]
//	arr.Until([]int{1, 2, 3, 4}, 1) // → [1 2]
//	arr.Last([]int{1, 2, 3})        // → 3, true
//
// # Structural search
//
// Search compares with [deep.Equal], so nested slices, maps and structs are
// found by content:
//
//	arr.IndexOf([]any{1, []int{2}, 3}, []any{2})          // → 1
//	arr.Index([]int{1, 2, 3, 2}, 2, arr.OccurrenceAll) // → [1 3]
//
// # Iteration
//
// [Map], [Filter], [ForEach] and [Every] hand every callback the element,
// its index, the whole slice and a caller-supplied context value:
//
//	limit := 3
//	small := arr.Filter(xs, func(n, _ int, _ []int, max int) bool { return n < max }, limit)
package arr
