// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_random_target.go - implementation of RandomTarget(n, m) factory.
//
// Canonical model:
//   - Draw uniformly random vertex pairs and keep distinct non-loop edges
//     until exactly m unique edges exist. This is the fixture-suite variant
//     of Random for graphs where n² Bernoulli trials are prohibitive; unlike
//     its ad-hoc ancestor it never emits duplicate edge lines.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n·(n−1)/2 (else ErrEdgeCountOutOfRange).
//   - cfg.rng must be non-nil for m > 0 (else ErrNeedRandSource).
//   - The attempt budget converts a near-saturated request (m close to the
//     pair count, where rejections dominate) into ErrSamplingExhausted.
//     For such densities use Random(n, p≈1) or Complete instead.
//
// Complexity:
//   - Expected time O(m) for sparse densities; degrades as m approaches the
//     number of distinct pairs (coupon-collector rejections).
//
// Determinism:
//   - Two rng draws per attempt (u then v), accepted or not, so the stream
//     position is a pure function of the draw history.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// RandomTarget returns a Generator that samples exactly m distinct
// uniformly random edges over n vertices.
func RandomTarget(n, m int) Generator {
	// The returned closure captures (n, m); Build supplies cfg.
	return func(cfg genConfig) (Graph, error) {
		// Validate vertex domain first, then the edge budget against it.
		if n < MinVertices {
			return Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomTarget, n, MinVertices, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m < 0 || m > maxEdges {
			return Graph{}, fmt.Errorf("%s: m=%d not in [0,%d]: %w",
				MethodRandomTarget, m, maxEdges, ErrEdgeCountOutOfRange)
		}
		if cfg.rng == nil && m > 0 {
			return Graph{}, fmt.Errorf("%s: rand source is required: %w",
				MethodRandomTarget, ErrNeedRandSource)
		}

		es := edgeset.NewWithCapacity(m)
		if m == 0 {
			return Graph{NumVertices: n, Edges: es}, nil
		}

		// Rejection-sample distinct pairs; Add filters loops and duplicates.
		budget := m * samplingAttemptsPerEdge
		for attempts := 0; es.Len() < m; attempts++ {
			if attempts >= budget {
				return Graph{}, fmt.Errorf("%s: placed %d of %d edges within %d attempts: %w",
					MethodRandomTarget, es.Len(), m, budget, ErrSamplingExhausted)
			}
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			es.Add(u, v)
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
