// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_scalefree.go — implementation of ScaleFree(n, minEdges) factory.
//
// Canonical model (Barabási–Albert preferential attachment):
//  1. Seed with the complete graph on the first minEdges+1 vertices; each
//     seed vertex starts at degree minEdges.
//  2. For each arriving vertex t in [minEdges+1, n): repeatedly sample a
//     target from the existing pool with probability proportional to its
//     CURRENT degree until minEdges distinct targets not already connected
//     to t are found; every accepted edge increments the target's degree
//     immediately, so later draws within the same step see the update.
//  3. Enter t into the pool with degree minEdges.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 1 ≤ minEdges < n (else ErrDegreeOutOfRange).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Invariant: every post-seed vertex receives exactly minEdges edges at
//     creation; total edge count is
//     minEdges·(minEdges+1)/2 + minEdges·(n−minEdges−1).
//   • Rejection of duplicate targets is bounded: when minEdges approaches n
//     the few remaining admissible targets make the loop degenerate, and an
//     exhausted attempt budget reports ErrSamplingExhausted rather than
//     spinning. minEdges < n is necessary but not sufficient for fast
//     termination; the budget is the backstop.
//
// Complexity:
//   • Time: O(minEdges² ) seed + O((n−minEdges)·minEdges·log n) attachment
//     via the Fenwick degree table. Space: O(n + |E|).
//
// Determinism:
//   • One rng draw per attachment attempt, accepted or rejected, in a fixed
//     vertex order; the whole construction is a pure function of the seed.

package gen

import "fmt"

// ScaleFree returns a Generator that grows a Barabási–Albert graph by
// degree-weighted preferential attachment.
func ScaleFree(n, minEdges int) Generator {
	// The returned closure captures (n, minEdges); Build supplies cfg.
	return func(cfg genConfig) (Graph, error) {
		// 1) Validate parameters early, in sentinel priority order.
		if n < MinVertices {
			return Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodScaleFree, n, MinVertices, ErrTooFewVertices)
		}
		if minEdges < MinAttachEdges || minEdges >= n {
			return Graph{}, fmt.Errorf("%s: minEdges=%d must satisfy %d <= minEdges < n=%d: %w",
				MethodScaleFree, minEdges, MinAttachEdges, n, ErrDegreeOutOfRange)
		}
		if cfg.rng == nil {
			return Graph{}, fmt.Errorf("%s: rand source is required: %w",
				MethodScaleFree, ErrNeedRandSource)
		}

		// 2) Seed: complete graph over the first minEdges+1 vertices.
		seed := minEdges + 1
		es := newCompleteSet(seed)

		// Live degree table; the sampling weight of every draw.
		deg := newDegreeTable(n)
		for i := 0; i < seed; i++ {
			deg.add(i, int64(minEdges))
		}

		// 3) Attach the remaining vertices one at a time.
		budget := minEdges * samplingAttemptsPerEdge
		for t := seed; t < n; t++ {
			added := 0
			for attempts := 0; added < minEdges; attempts++ {
				if attempts >= budget {
					return Graph{}, fmt.Errorf("%s: vertex %d placed %d of %d edges within %d attempts: %w",
						MethodScaleFree, t, added, minEdges, budget, ErrSamplingExhausted)
				}

				// Degree-weighted draw over the current pool; t itself has
				// zero weight until after its attachment step.
				target := deg.sample(cfg.rng)

				// Add filters duplicates; only a fresh edge counts and
				// bumps the target's weight for the NEXT draw.
				if es.Add(t, target) {
					deg.add(target, 1)
					added++
				}
			}

			// Enter t into the pool at its creation degree.
			deg.add(t, int64(minEdges))
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
