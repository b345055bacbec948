// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_complete.go — implementation of Complete(n) factory.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once; edge count is
//     exactly n·(n−1)/2.
//   • No randomness: this is the degenerate Random(n, 1.0) case, built
//     directly for determinism and to skip n² Bernoulli draws.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(n²) for the edge set.
//
// Determinism:
//   • Stable pair order: lexicographic by (i,j), i<j.

package gen

import "fmt"

// Complete returns a Generator that builds the complete simple graph K_n.
func Complete(n int) Generator {
	// The returned closure captures n; Build supplies cfg.
	return func(_ genConfig) (Graph, error) {
		// Early parameter validation: K_n is defined for n≥1.
		if n < MinVertices {
			return Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodComplete, n, MinVertices, ErrTooFewVertices)
		}

		es := newCompleteSet(n)

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
