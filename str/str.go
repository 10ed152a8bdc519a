// Package str holds string helpers.
package str

import (
	"strings"
	"unicode/utf8"
)

// Split cuts s at every occurrence of the single-character separator sep and
// returns the pieces, including empty ones and the trailing segment.
// An empty or multi-character sep never matches, so the result is [s].
//
//	Split("a,b,,c", ",") // → ["a" "b" "" "c"]
//	Split("abc", "")     // → ["abc"]
func Split(s, sep string) []string {
	if utf8.RuneCountInString(sep) != 1 {
		return []string{s}
	}
	return strings.Split(s, sep)
}
