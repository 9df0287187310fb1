package reorder_test

import (
	"testing"

	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/reorder"
)

// BenchmarkHungarian measures the per-type assignment on a medium
// structure (O(k³) in the largest type partition).
func BenchmarkHungarian(b *testing.B) {
	labels, p := testStructure(60, 42)
	perm := shuffle(60, 43)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reorder.Hungarian(labels, qLabels, p, q); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistance measures the O(N²) greedy heuristic on the same
// input for comparison.
func BenchmarkDistance(b *testing.B) {
	labels, p := testStructure(60, 42)
	perm := shuffle(60, 43)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reorder.Distance(labels, qLabels, p, q); err != nil {
			b.Fatal(err)
		}
	}
}
