package arr

// ─────────────────────────────────────────────────────────────────────────────
// Iteration with a bound context
//
// Every callback receives the element, its index, the slice being walked and
// the ctx value passed to the helper. Callbacks run once per index, from 0
// to len(items)-1, in order.
// ─────────────────────────────────────────────────────────────────────────────

// Map collects fn's results in index order.
//
//	Map([]int{1, 2, 3}, func(n, _ int, _ []int, k int) int { return n * k }, 10)
//	// → [10 20 30]
func Map[T, U, C any](items []T, fn func(T, int, []T, C) U, ctx C) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i, items, ctx)
	}
	return out
}

// Filter returns the elements for which fn returns true.
func Filter[T, C any](items []T, fn func(T, int, []T, C) bool, ctx C) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i, items, ctx) {
			out = append(out, item)
		}
	}
	return out
}

// ForEach calls fn for every element.
func ForEach[T, C any](items []T, fn func(T, int, []T, C), ctx C) {
	for i, item := range items {
		fn(item, i, items, ctx)
	}
}

// Every reports whether fn returns true for every element. It stops at the
// first false. An empty slice yields true.
func Every[T, C any](items []T, fn func(T, int, []T, C) bool, ctx C) bool {
	for i, item := range items {
		if !fn(item, i, items, ctx) {
			return false
		}
	}
	return true
}
