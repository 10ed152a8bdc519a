package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNotArray is returned by From when its argument is not a slice or
	// array.
	ErrNotArray = errors.New("collections: value is not an array")

	// ErrEmptyCollection is returned by LastOrFail when the collection has
	// no items.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")
)
