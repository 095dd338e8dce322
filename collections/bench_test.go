package collections_test

import (
	"testing"

	"github.com/hasbyte1/ds-transformer/collections"
)

// makeInts creates a wrapper around the integers 1 … n for benchmarks.
func makeInts(n int) *collections.ArrayWrapper {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.FromSlice(items)
}

func BenchmarkFilter(b *testing.B) {
	w := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Clone().Filter(func(v any) bool { return v.(int)%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	w := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Clone().Map(func(v any) any { return v.(int) * 2 })
	}
}

func BenchmarkReduce(b *testing.B) {
	w := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reduce(func(carry, item any) any { return carry.(int) + item.(int) }, 0)
	}
}

func BenchmarkFlat(b *testing.B) {
	w := collections.New()
	for i := 0; i < 1_000; i++ {
		w.Push([]any{i, []any{i, i}})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Clone().Flat()
	}
}

func BenchmarkSortAsc(b *testing.B) {
	w := makeInts(10_000).Reverse()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Clone().SortAsc()
	}
}

func BenchmarkUnique(b *testing.B) {
	w := makeInts(10_000).Map(func(v any) any { return v.(int) % 100 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Clone().Unique()
	}
}

func BenchmarkFilterExpr(b *testing.B) {
	w := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Clone().FilterExpr("value % 2 == 0"); err != nil {
			b.Fatal(err)
		}
	}
}
