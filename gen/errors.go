// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and a method tag, e.g.
//     "ScaleFree: minEdges=9 must be < n=4: <sentinel>".
//   • Factories never panic at runtime; validation panics are confined to
//     option constructors (WithRand(nil)).

package gen

import "errors"

// ErrTooFewVertices indicates a vertex-count parameter (n, width, height,
// or a partition size) is below the minimum for the requested topology.
// Typical origins: every factory; size checks run first.
var ErrTooFewVertices = errors.New("gen: vertex count too small")

// ErrInvalidProbability indicates a probability parameter lies outside the
// closed interval [0,1]. Origins: Random, Bipartite, SmallWorld.
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic factory was built without a
// random source (neither WithSeed nor WithRand was supplied).
var ErrNeedRandSource = errors.New("gen: rand source is required")

// ErrDegreeOutOfRange indicates a degree-like parameter is incompatible
// with the vertex count: ScaleFree requires minEdges < n and SmallWorld
// requires meanDegree < n.
var ErrDegreeOutOfRange = errors.New("gen: degree parameter out of range")

// ErrEdgeCountOutOfRange indicates RandomTarget was asked for a negative
// edge count or more edges than n·(n−1)/2 distinct pairs allow.
var ErrEdgeCountOutOfRange = errors.New("gen: target edge count out of range")

// ErrSamplingExhausted indicates a rejection-sampling loop (preferential
// attachment targets, rewiring replacements, uniform edge draws) hit its
// attempt budget without finding an admissible edge. It converts the
// documented non-termination risk of near-saturated parameter choices into
// a reported failure instead of an infinite loop.
var ErrSamplingExhausted = errors.New("gen: sampling attempt budget exhausted")

// ErrGenerateFailed indicates a malformed Build invocation, e.g. a nil
// Generator.
var ErrGenerateFailed = errors.New("gen: generation failed")
