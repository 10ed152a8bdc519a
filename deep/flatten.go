package deep

import "github.com/hasbyte1/go-datakit/value"

// Flatten collapses nested containers into a single level. See
// [Comparer.Flatten].
func Flatten(v any, opts ...Option) any {
	return New(opts...).Flatten(v)
}

// Flatten collapses v into a single-level container of the same kind:
//
//   - arrays: nested arrays are inlined in place, giving a []any;
//   - objects: the fields of nested objects are merged into the result in
//     place of the field that held them, giving a *value.Object; a later
//     write to a key wins but the key keeps its first position;
//   - maps: nested maps are merged the same way, giving a *value.Map.
//
// [Shallow] and [Depth] bound how many levels below each top-level member
// are expanded. Any other input yields nil.
func (c *Comparer) Flatten(v any) any {
	v = value.Indirect(v)
	switch value.Of(v) {
	case value.KindArray:
		items, _ := value.Elements(v)
		return c.flattenArray(items, 0)
	case value.KindObject:
		if isOpaque(v) {
			return nil
		}
		return c.flattenObject(v, 0)
	case value.KindMap:
		return c.flattenMap(v, 0)
	}
	return nil
}

// expand reports whether a member found at level may be opened.
func (c *Comparer) expand(level int) bool { return c.depth <= 0 || level < c.depth }

func (c *Comparer) flattenArray(items []any, level int) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if value.Of(item) == value.KindArray && c.expand(level) {
			nested, _ := value.Elements(item)
			out = append(out, c.flattenArray(nested, level+1)...)
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Comparer) flattenObject(v any, level int) *value.Object {
	out := value.NewObject()
	fields, _ := value.Fields(v)
	for _, f := range fields {
		if value.Of(f.Value) == value.KindObject && !isOpaque(value.Indirect(f.Value)) && c.expand(level) {
			for k, nested := range c.flattenObject(f.Value, level+1).All() {
				out.Set(k, nested)
			}
			continue
		}
		out.Set(f.Key, f.Value)
	}
	return out
}

func (c *Comparer) flattenMap(v any, level int) *value.Map {
	out := value.NewMap()
	entries, _ := value.MapEntries(v)
	for _, e := range entries {
		if value.Of(e.Value) == value.KindMap && c.expand(level) {
			for k, nested := range c.flattenMap(e.Value, level+1).All() {
				out.Set(k, nested)
			}
			continue
		}
		out.Set(e.Key, e.Value)
	}
	return out
}

// flattenDeep inlines every nested array of seqs into one sequence,
// ignoring any depth limit.
func flattenDeep(seqs [][]any) []any {
	unlimited := &Comparer{}
	out := make([]any, 0)
	for _, seq := range seqs {
		out = append(out, unlimited.flattenArray(seq, 0)...)
	}
	return out
}
