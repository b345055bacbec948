// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_random.go - implementation of Random(n, p) factory.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Expected edge count: p·n·(n−1)/2; p=0 yields no edges, p=1 the
//     complete graph.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials — an explicit performance boundary.
//     Callers wanting very large sparse graphs should use RandomTarget,
//     which samples the edge count directly.
//   - Space: O(|E|).
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j>i; one rng draw per pair.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// Random returns a Generator that samples an Erdős–Rényi graph over n
// vertices with independent edge probability p.
func Random(n int, p float64) Generator {
	// The returned closure captures (n, p); Build supplies cfg.
	return func(cfg genConfig) (Graph, error) {
		// 1) Validate parameters early (fail fast, zero side effects on invalid input).
		if n < MinVertices {
			return Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandom, n, MinVertices, ErrTooFewVertices)
		}
		if !validProbability(p) {
			return Graph{}, fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				MethodRandom, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling (0 < p < 1).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return Graph{}, fmt.Errorf("%s: rand source is required for p=%g: %w",
				MethodRandom, p, ErrNeedRandSource)
		}

		// 2) Deterministic extremes skip the trial loop entirely.
		switch p {
		case MinProbability:
			return Graph{NumVertices: n, Edges: edgeset.New()}, nil
		case MaxProbability:
			return Graph{NumVertices: n, Edges: newCompleteSet(n)}, nil
		}

		// 3) One Bernoulli trial per unordered pair, in stable (i,j) order.
		es := edgeset.New()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					es.Add(i, j)
				}
			}
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
