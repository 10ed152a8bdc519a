package deep

import "errors"

// Sentinel errors returned by deep operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := deep.Union(records)
//	if errors.Is(err, deep.ErrMissingKey) {
//	    // configure a key with deep.New(deep.Key("id"))
//	}
var (
	// ErrMissingKey is returned when a sequence contains objects or maps but
	// no comparison key was configured.
	ErrMissingKey = errors.New("deep: keyed elements require a comparison key")
)
