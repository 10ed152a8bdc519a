package deep

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest is a BLAKE2b-256 content fingerprint.
type Digest [blake2b.Size256]byte

// String returns the digest in lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Fingerprint hashes the canonical encoding of v. Values that are [Equal]
// share a fingerprint; distinct fingerprints imply distinct values.
//
//	deep.Fingerprint(map[string]any{"a": 1, "b": 2}) ==
//	    deep.Fingerprint(value.NewObject(value.Entry{Key: "b", Value: 2}, value.Entry{Key: "a", Value: 1}))
func Fingerprint(v any) Digest { return std.Fingerprint(v) }

// Fingerprint is the configured form of the package-level [Fingerprint].
// With [IgnoreOrder], arrays that differ only in element order share a
// fingerprint.
func (c *Comparer) Fingerprint(v any) Digest {
	return blake2b.Sum256(canonical(v, c.ignoreOrder))
}

// index buckets values by fingerprint so membership tests only run [Equal]
// against candidates that can match.
type index struct {
	c       *Comparer
	buckets map[Digest][]any
}

func (c *Comparer) newIndex(items []any) *index {
	ix := &index{c: c, buckets: make(map[Digest][]any, len(items))}
	for _, item := range items {
		d := c.Fingerprint(item)
		ix.buckets[d] = append(ix.buckets[d], item)
	}
	return ix
}

func (ix *index) contains(v any) bool {
	for _, candidate := range ix.buckets[ix.c.Fingerprint(v)] {
		if ix.c.Equal(candidate, v) {
			return true
		}
	}
	return false
}
