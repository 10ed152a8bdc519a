package str_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hasbyte1/go-datakit/str"
)

// FuzzSplit checks that joining the pieces with sep gives back the input.
//
// Run with: go test -fuzz=FuzzSplit ./str/
func FuzzSplit(f *testing.F) {
	f.Add("a,b,,c", ",")
	f.Add("", ",")
	f.Add("abc", "")
	f.Add("a::b", "::")

	f.Fuzz(func(t *testing.T, s, sep string) {
		parts := str.Split(s, sep)
		if len(parts) == 0 {
			t.Fatalf("Split(%q, %q) returned no pieces", s, sep)
		}
		if utf8.RuneCountInString(sep) != 1 {
			if len(parts) != 1 || parts[0] != s {
				t.Fatalf("Split(%q, %q) = %q; want the whole string", s, sep, parts)
			}
			return
		}
		if got := strings.Join(parts, sep); got != s {
			t.Fatalf("Join(Split(%q, %q)) = %q", s, sep, got)
		}
	})
}
