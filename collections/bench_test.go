package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-datakit/collections"
	"github.com/hasbyte1/go-datakit/deep"
)

// makeInts creates a Collection of size n for benchmarks.
func makeInts(n int) *collections.Collection {
	items := make([]any, n)
	for i := range items {
		items[i] = (i * 7919) % n
	}
	return collections.New(items...)
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(v any, _ int, _ *collections.Collection) bool { return v.(int)%2 == 0 })
	}
}

func BenchmarkUnique(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Unique()
	}
}

func BenchmarkUnionKeyed(b *testing.B) {
	rows := make([]any, 5_000)
	for i := range rows {
		rows[i] = map[string]any{"id": i % 1_000}
	}
	c := collections.New(rows...).By(deep.Key("id"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Union(rows)
	}
}

func BenchmarkIndexOf(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.IndexOf(-1)
	}
}
