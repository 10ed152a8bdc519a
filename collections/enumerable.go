package collections

// Enumerable is the read surface of [Collection].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on *Collection.
type Enumerable interface {
	// All returns a copy of every item.
	All() []any

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index, c) for every item.
	Each(fn func(any, int, *Collection))

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Last returns the last item, or false when there is none.
	Last() (any, bool)

	// IndexOf returns the index of the first item structurally equal to v,
	// or -1.
	IndexOf(v any) int

	// Err returns the first error recorded while building the collection.
	Err() error
}

var _ Enumerable = (*Collection)(nil)
