package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-datakit/str"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		s, sep string
		want   []string
	}{
		{"a,b,,c", ",", []string{"a", "b", "", "c"}},
		{"a,b,", ",", []string{"a", "b", ""}},
		{",", ",", []string{"", ""}},
		{"", ",", []string{""}},
		{"abc", "", []string{"abc"}},
		{"a::b", "::", []string{"a::b"}},
		{"α→β→γ", "→", []string{"α", "β", "γ"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, str.Split(tc.s, tc.sep), "Split(%q, %q)", tc.s, tc.sep)
	}
}
