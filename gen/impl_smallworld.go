// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_smallworld.go — implementation of SmallWorld(n, meanDegree, rewireProb).
//
// Canonical model (Watts–Strogatz):
//
//	Phase 1 — ring lattice: for each vertex i and offset j in [1, k/2], add
//	edge {i, (i+j) mod n}. Every vertex starts at degree k.
//	Phase 2 — rewiring: iterate the SAME (i,j) pairs computed from the ring
//	structure (phase-separated iteration, not the live edge set); with
//	probability rewireProb remove the ring edge {i, (i+j) mod n} if present,
//	then add an edge from i to a uniformly random target ≠ i not already
//	adjacent to i, retrying the draw until one is found.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 1 ≤ meanDegree < n before coercion (else ErrDegreeOutOfRange); an odd
//     meanDegree is coerced to even by incrementing, which may introduce
//     duplicate ring pairs near k≈n — the edge set silently folds them.
//   • 0 ≤ rewireProb ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil for rewireProb > 0 (else ErrNeedRandSource).
//   • rewireProb=0 leaves the lattice unchanged (n·k/2 edges, all degree k);
//     rewireProb=1 rewires every lattice edge, preserving the edge count.
//   • The replacement-target retry is bounded; a vertex already adjacent to
//     nearly everything reports ErrSamplingExhausted instead of spinning.
//
// Complexity:
//   • Time: O(n·k) lattice + O(n·k) rewiring decisions (expected O(1)
//     retries per rewire at sane densities). Space: O(n·k).
//
// Determinism:
//   • Phase order and (i,j) pair order are fixed; each rewiring decision
//     consumes one coin draw plus one draw per target retry.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// SmallWorld returns a Generator that builds a Watts–Strogatz graph:
// a ring lattice of mean degree meanDegree rewired with probability
// rewireProb per lattice edge.
func SmallWorld(n, meanDegree int, rewireProb float64) Generator {
	// The returned closure captures the parameters; Build supplies cfg.
	return func(cfg genConfig) (Graph, error) {
		// 1) Validate raw parameters before the even-coercion step.
		if n < MinVertices {
			return Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodSmallWorld, n, MinVertices, ErrTooFewVertices)
		}
		if meanDegree < MinMeanDegree || meanDegree >= n {
			return Graph{}, fmt.Errorf("%s: meanDegree=%d must satisfy %d <= meanDegree < n=%d: %w",
				MethodSmallWorld, meanDegree, MinMeanDegree, n, ErrDegreeOutOfRange)
		}
		if !validProbability(rewireProb) {
			return Graph{}, fmt.Errorf("%s: rewireProb=%g not in [%g,%g]: %w",
				MethodSmallWorld, rewireProb, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && rewireProb > MinProbability {
			return Graph{}, fmt.Errorf("%s: rand source is required for rewireProb=%g: %w",
				MethodSmallWorld, rewireProb, ErrNeedRandSource)
		}

		// Coerce the mean degree to even; each vertex gets k/2 neighbors
		// per side.
		k := meanDegree
		if k%2 != 0 {
			k++
		}
		half := k / 2

		// 2) Phase 1 — ring lattice in fixed (i,j) order.
		es := edgeset.NewWithCapacity(n * half)
		for i := 0; i < n; i++ {
			for j := 1; j <= half; j++ {
				es.Add(i, (i+j)%n)
			}
		}

		// 3) Phase 2 — rewiring over the same (i,j) pairs. Skipped entirely
		// for rewireProb=0 so the deterministic lattice needs no RNG.
		if rewireProb == MinProbability {
			return Graph{NumVertices: n, Edges: es}, nil
		}

		for i := 0; i < n; i++ {
			for j := 1; j <= half; j++ {
				// Fresh coin per lattice slot.
				if cfg.rng.Float64() >= rewireProb {
					continue
				}

				// Remove the original ring edge if still present (a prior
				// rewire may have already claimed the canonical pair).
				es.Remove(i, (i+j)%n)

				// Draw replacement targets until a free one is found; Add
				// rejects self-loops and existing adjacencies.
				placed := false
				for attempts := 0; attempts < samplingAttemptsPerEdge; attempts++ {
					if es.Add(i, cfg.rng.Intn(n)) {
						placed = true
						break
					}
				}
				if !placed {
					return Graph{}, fmt.Errorf("%s: no free rewiring target for vertex %d within %d attempts: %w",
						MethodSmallWorld, i, samplingAttemptsPerEdge, ErrSamplingExhausted)
				}
			}
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
