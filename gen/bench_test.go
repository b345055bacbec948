// File: gen/bench_test.go
package gen_test

import (
	"testing"

	"github.com/sakshi2912/graphgen/gen"
)

// BenchmarkScaleFree measures preferential attachment over the Fenwick
// degree table. Complexity: O((n−m)·m·log n).
func BenchmarkScaleFree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gen.Build(gen.ScaleFree(10000, 3), gen.WithSeed(42)); err != nil {
			b.Fatalf("ScaleFree failed: %v", err)
		}
	}
}

// BenchmarkSmallWorld measures lattice construction plus full rewiring.
func BenchmarkSmallWorld(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gen.Build(gen.SmallWorld(10000, 6, 0.3), gen.WithSeed(42)); err != nil {
			b.Fatalf("SmallWorld failed: %v", err)
		}
	}
}

// BenchmarkRandomTarget measures direct edge-count sampling, the intended
// path for large sparse fixtures.
func BenchmarkRandomTarget(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gen.Build(gen.RandomTarget(50000, 200000), gen.WithSeed(42)); err != nil {
			b.Fatalf("RandomTarget failed: %v", err)
		}
	}
}

// BenchmarkGrid measures the deterministic lattice path.
func BenchmarkGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gen.Build(gen.Grid(300, 300)); err != nil {
			b.Fatalf("Grid failed: %v", err)
		}
	}
}
