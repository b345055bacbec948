// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// constants.go — shared constants used by the topology factories, ensuring
// consistent defaults and validation across all generators.

package gen

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the factory name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random factory.
	MethodRandom = "Random"
	// MethodRandomTarget is the canonical name for the RandomTarget factory.
	MethodRandomTarget = "RandomTarget"
	// MethodGrid is the canonical name for the Grid factory.
	MethodGrid = "Grid"
	// MethodComplete is the canonical name for the Complete factory.
	MethodComplete = "Complete"
	// MethodBipartite is the canonical name for the Bipartite factory.
	MethodBipartite = "Bipartite"
	// MethodScaleFree is the canonical name for the ScaleFree factory.
	MethodScaleFree = "ScaleFree"
	// MethodSmallWorld is the canonical name for the SmallWorld factory.
	MethodSmallWorld = "SmallWorld"
)

//-----------------------------------------------------------------------------
// Parameter Minima and Probability Bounds
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count accepted by every factory whose
// size is a single n; a one-vertex graph is valid and has no edges.
const MinVertices = 1

// MinGridDim is the smallest allowed grid dimension (width or height).
// A 1×1 grid has no edges but is considered valid.
const MinGridDim = 1

// MinPartitionSize is the smallest allowed bipartite partition size.
const MinPartitionSize = 1

// MinAttachEdges is the smallest allowed ScaleFree minEdges parameter: each
// arriving vertex must attach at least one edge.
const MinAttachEdges = 1

// MinMeanDegree is the smallest allowed SmallWorld mean degree before the
// even-coercion step.
const MinMeanDegree = 1

// MinProbability is the inclusive lower bound for probability parameters.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for probability parameters.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Sampling Budgets
//-----------------------------------------------------------------------------

// samplingAttemptsPerEdge bounds rejection sampling: a loop that must place
// E edges may draw at most E·samplingAttemptsPerEdge candidates before it
// reports ErrSamplingExhausted. Large enough to be unreachable for sane
// parameters, small enough to terminate promptly when the admissible edge
// space is nearly saturated (minEdges close to n, rewiring a near-clique).
const samplingAttemptsPerEdge = 4096
