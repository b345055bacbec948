// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// api.go - thin public entry-point for the gen package.
//
// Design contract (strict):
//   - One orchestrator: Build(generator, opts...). Resolves cfg, runs the
//     generator, wraps errors once at the API boundary.
//   - All public factories are declared here, implemented in impl_*.go
//     (single place to read docs).
//   - Functional options (Option) resolve into an immutable genConfig
//     (no global state).
//   - Determinism: same parameters, options, and seed ⇒ identical graphs,
//     including edge insertion order.
//   - Safety: never panic; return sentinel errors from generators.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// Graph is the product of a generator: a vertex count and the edge set over
// ids [0, NumVertices). The generator owns Edges exclusively during
// construction; once returned, the pair is treated as immutable by the
// serializer and every other consumer.
type Graph struct {
	NumVertices int
	Edges       *edgeset.Set
}

// Generator builds a Graph using the resolved genConfig. Generators MUST:
//   - Validate parameters early and return sentinel errors (no panics,
//     no partial edge sets on invalid input).
//   - Keep the produced set free of self-loops and duplicates, with every
//     endpoint in [0, NumVertices).
//   - Preserve determinism for the same config: a fixed trial order and a
//     sequentially consumed RNG.
type Generator func(cfg genConfig) (Graph, error)

// Build resolves the configuration from opts and runs the generator. Any
// generator error is wrapped with the context "Build: %w" and returned; no
// partial result is exposed.
//
// Complexity: O(len(opts)) to resolve options plus the generator's own cost.
// Errors: callers should branch with errors.Is against the gen sentinels
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ...).
func Build(generator Generator, opts ...Option) (Graph, error) {
	// Defensive: reject a nil generator to avoid a panic later (programmer error).
	if generator == nil {
		return Graph{}, fmt.Errorf("Build: nil generator: %w", ErrGenerateFailed)
	}

	// Resolve deterministic configuration from functional options.
	cfg := newGenConfig(opts...)

	g, err := generator(cfg)
	if err != nil {
		// Wrap once at the API boundary; inner layers already added the
		// factory method tag.
		return Graph{}, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Generator closure. The closure MUST:
//   - Emit edges in a stable, documented order.
//   - Use cfg.rng for every random draw; never seed or read global state.
//   - Return only sentinel errors; NEVER panic at runtime.

// Random builds an Erdős–Rényi graph G(n, p): every unordered pair is an
// independent Bernoulli trial. Quadratic in n.
//func Random(n int, p float64) Generator

// RandomTarget samples exactly m distinct uniformly random edges over n
// vertices. Preferred over Random for very large sparse graphs.
//func RandomTarget(n, m int) Generator

// Grid builds a width×height 4-connected lattice, ids row-major.
//func Grid(width, height int) Generator

// Complete builds K_n: every pair (i,j), i<j.
//func Complete(n int) Generator

// Bipartite samples cross-partition edges with probability p; partitions
// are [0,left) and [left,left+right).
//func Bipartite(left, right int, p float64) Generator

// ScaleFree builds a Barabási–Albert graph by preferential attachment.
//func ScaleFree(n, minEdges int) Generator

// SmallWorld builds a Watts–Strogatz graph: ring lattice plus rewiring.
//func SmallWorld(n, meanDegree int, rewireProb float64) Generator
