package deep

// ─────────────────────────────────────────────────────────────────────────────
// Package-level set algebra (no comparison key)
// ─────────────────────────────────────────────────────────────────────────────

// Union returns the distinct elements of all seqs in sorted order.
// See [Comparer.Union].
func Union(seqs ...[]any) ([]any, error) { return std.Union(seqs...) }

// Difference returns the elements of base that appear in none of others.
// See [Comparer.Difference].
func Difference(base []any, others ...[]any) ([]any, error) {
	return std.Difference(base, others...)
}

// Without returns the elements of base that equal none of the values in
// others. See [Comparer.Without].
func Without(base []any, others ...[]any) ([]any, error) {
	return std.Without(base, others...)
}

// Intersection returns the elements of a that also appear in b.
// See [Comparer.Intersection].
func Intersection(a, b []any) ([]any, error) { return std.Intersection(a, b) }

// ─────────────────────────────────────────────────────────────────────────────
// Configured set algebra
// ─────────────────────────────────────────────────────────────────────────────

// Union flattens every sequence in seqs (nested arrays included) into one
// and removes duplicates by comparison value, always sorting. Objects and
// maps are compared by their [Key] field.
//
//	deep.Union([]any{1, 2}, []any{2, 3}) // → [1 2 3]
func (c *Comparer) Union(seqs ...[]any) ([]any, error) {
	return c.dedupe("union", flattenDeep(seqs), false)
}

// Difference keeps the elements of base whose comparison value matches no
// element of the flattened others. Objects and maps on both sides are
// compared by their [Key] field. Order of base is preserved.
//
//	deep.Difference([]any{1, 2, 3}, []any{2}) // → [1 3]
func (c *Comparer) Difference(base []any, others ...[]any) ([]any, error) {
	return c.exclude("difference", base, others, true)
}

// Without keeps the elements of base whose comparison value equals none of
// the values in the flattened others. Unlike [Comparer.Difference], the
// values in others are used as given, so records can be removed by listing
// their keys:
//
//	c := deep.New(deep.Key("id"))
//	c.Without(users, []any{1, 2}) // drops the users with id 1 and 2
func (c *Comparer) Without(base []any, others ...[]any) ([]any, error) {
	return c.exclude("without", base, others, false)
}

func (c *Comparer) exclude(op string, base []any, others [][]any, projectOthers bool) ([]any, error) {
	if len(base) == 0 {
		return []any{}, nil
	}
	keys, err := c.project(op, base)
	if err != nil {
		return nil, err
	}
	candidates := flattenDeep(others)
	if projectOthers {
		if candidates, err = c.project(op, candidates); err != nil {
			return nil, err
		}
	}
	ix := c.newIndex(candidates)
	out := make([]any, 0, len(base))
	for i, item := range base {
		if !ix.contains(keys[i]) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Intersection keeps the elements of a whose comparison value matches some
// element of b. b is not flattened. Order of a is preserved.
//
//	deep.Intersection([]any{1, 2, 3}, []any{2, 3, 4}) // → [2 3]
func (c *Comparer) Intersection(a, b []any) ([]any, error) {
	if len(a) == 0 {
		return []any{}, nil
	}
	keys, err := c.project("intersection", a)
	if err != nil {
		return nil, err
	}
	candidates, err := c.project("intersection", b)
	if err != nil {
		return nil, err
	}
	ix := c.newIndex(candidates)
	out := make([]any, 0, len(a))
	for i, item := range a {
		if ix.contains(keys[i]) {
			out = append(out, item)
		}
	}
	return out, nil
}
