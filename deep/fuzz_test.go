package deep_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-datakit/deep"
	"github.com/hasbyte1/go-datakit/internal/testutil"
)

// FuzzEqualYAML decodes arbitrary YAML documents and checks that equality is
// reflexive and agrees with Compare and Fingerprint.
//
// Run with: go test -fuzz=FuzzEqualYAML ./deep/
func FuzzEqualYAML(f *testing.F) {
	f.Add("[1, [2, 3]]", "[1.0, [2, 3]]")
	f.Add("{a: 1, b: [x]}", "{b: [x], a: 1}")
	f.Add("!set [1, 2]", "!set [2, 1]")
	f.Add("!map {1: a}", "{1: a}")

	f.Fuzz(func(t *testing.T, x, y string) {
		if strings.Contains(x+y, "*") {
			return // aliases may refer to themselves
		}
		a, err := testutil.Decode([]byte(x))
		if err != nil {
			return
		}
		b, err := testutil.Decode([]byte(y))
		if err != nil {
			return
		}
		if !deep.Equal(a, a) && !hasNaN(x) {
			t.Fatalf("Equal(a, a) is false for %q", x)
		}
		if deep.Equal(a, b) != deep.Equal(b, a) {
			t.Fatalf("Equal is not symmetric for %q and %q", x, y)
		}
		if deep.Equal(a, b) {
			if deep.Compare(a, b) != 0 {
				t.Fatalf("Compare(%q, %q) != 0 for equal values", x, y)
			}
			if deep.Fingerprint(a) != deep.Fingerprint(b) {
				t.Fatalf("fingerprints differ for equal values %q and %q", x, y)
			}
		}
	})
}

// hasNaN reports whether a document may contain a NaN, which is never equal
// to itself.
func hasNaN(doc string) bool {
	return strings.Contains(strings.ToLower(doc), ".nan")
}
