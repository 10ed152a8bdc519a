package obj

import "errors"

// Sentinel errors returned by obj operations. They are wrapped with the
// offending key or type, so compare with [errors.Is].
var (
	// ErrNotObject is returned when an argument is not an object, or a write
	// target cannot be changed in place.
	ErrNotObject = errors.New("obj: value is not an object")

	// ErrValueNotString is returned by Invert when a value cannot become a
	// key.
	ErrValueNotString = errors.New("obj: value must be a string")

	// ErrDuplicateValue is returned by Invert when two keys share a value.
	ErrDuplicateValue = errors.New("obj: value must be unique")
)
