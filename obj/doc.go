// Package obj provides helpers for object-kind values: [value.Object], Go
// maps with string keys and structs.
//
// Read helpers ([Keys], [Values], [HasOwn], [Length], [Get]) accept any of
// those shapes and treat everything else as empty. Helpers that write
// ([Merge], [Concat], [Set]) need a target they can change in place, which
// means a *value.Object or a map[string]any.
//
//	o := value.NewObject(value.Entry{Key: "a", Value: "x"})
//	inv, _ := obj.Invert(o)       // → {x:a}
//	_ = obj.Merge(o, map[string]any{"b": 1})
//	obj.Keys(o)                   // → [a b]
package obj
