// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_bipartite.go — implementation of Bipartite(left, right, p) factory.
//
// Canonical model:
//   • Vertex ids [0,left) form the left partition and [left,left+right) the
//     right partition; only cross-partition pairs are candidates, each an
//     independent Bernoulli trial. No intra-partition edge is ever produced
//     — the defining invariant.
//
// Contract:
//   • left ≥ 1 and right ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//   • p=1 yields the complete bipartite graph K_{left,right}
//     (left·right edges); p=0 yields no edges.
//
// Complexity:
//   • Time: O(left·right) trials. Space: O(|E|).
//
// Determinism:
//   • Stable trial order: u asc over the left side, v asc over the right.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// Bipartite returns a Generator that samples cross-partition edges between
// a left partition of size left and a right partition of size right.
func Bipartite(left, right int, p float64) Generator {
	// The returned closure captures (left, right, p); Build supplies cfg.
	return func(cfg genConfig) (Graph, error) {
		// Early validation: both partitions must be non-empty.
		if left < MinPartitionSize || right < MinPartitionSize {
			return Graph{}, fmt.Errorf("%s: left=%d, right=%d (each must be >= %d): %w",
				MethodBipartite, left, right, MinPartitionSize, ErrTooFewVertices)
		}
		if !validProbability(p) {
			return Graph{}, fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				MethodBipartite, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return Graph{}, fmt.Errorf("%s: rand source is required for p=%g: %w",
				MethodBipartite, p, ErrNeedRandSource)
		}

		n := left + right
		es := edgeset.New()

		// One trial per cross pair; p∈{0,1} degenerates without an RNG.
		for u := 0; u < left; u++ {
			for v := left; v < n; v++ {
				if p == MaxProbability || (p > MinProbability && cfg.rng.Float64() < p) {
					es.Add(u, v)
				}
			}
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
