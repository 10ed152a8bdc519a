// Package value defines the dynamic value model shared by every other package
// in this module: the [Kind] taxonomy, the ordered container types [Object],
// [Map] and [Set], and reflection-based accessors that let plain Go values
// (slices, maps, structs) take part in the same operations.
//
// # Kinds
//
// Every value maps to exactly one [Kind]:
//
//	value.Of([]int{1, 2})                    // array
//	value.Of(map[string]any{"a": 1})         // object
//	value.Of(value.NewMap())                 // map
//	value.Of(struct{ Name string }{"Ada"})   // object
//	value.Of(time.Now())                     // date
//	value.Of(nil)                            // null
//	value.Of(value.Undefined)                // undefined
//
// Unrecognised structured values classify as [KindObject].
//
// # Ordered containers
//
// [Object] keeps string keys in insertion order and [Map] does the same for
// arbitrary comparable keys. Go maps have no order, so plain map values are
// visited in sorted key order instead:
//
//	o := value.NewObject(value.Entry{Key: "b", Value: 1}, value.Entry{Key: "a", Value: 2})
//	o.Keys() // → [b a]
//
//	value.Fields(map[string]any{"b": 1, "a": 2}) // → [{a 2} {b 1}]
//
// # Accessors
//
// [Elements], [Fields], [MapEntries], [Field] and [Lookup] read any value of
// the matching kind without the caller having to know its concrete Go type.
package value
