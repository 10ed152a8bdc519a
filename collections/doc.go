// Package collections provides a fluent Collection type over heterogeneous
// values, chaining the structural operations of the deep and arr packages.
//
// # Overview
//
// A [Collection] wraps a []any together with a [deep.Comparer] that decides
// how elements are compared:
//
//	users := collections.From(rows).
//	    By(deep.Key("id")).
//	    Union(moreRows).
//	    Without(banned...).
//	    Rest(1)
//	if err := users.Err(); err != nil {
//	    return err
//	}
//
// # Immutability
//
// Every transformation returns a new Collection and leaves the receiver
// untouched, so collections may be shared between goroutines for reading.
//
// # Errors
//
// Operations that can fail (keyed set algebra without a key, for example)
// record the error on the returned Collection. Later steps pass the failed
// collection through untouched, and [Collection.Err] reports the first
// error once the chain is done.
package collections
