// Package gen synthesizes undirected simple graphs of controllable size and
// topology for graph-coloring benchmarks. It lives alongside edgeset and
// edgelist to centralize parameter validation, seeded randomness, and the
// construction order guarantees that make fixtures reproducible.
//
// The package offers the following key components:
//
//   - Generator: a closure that builds (NumVertices, *edgeset.Set) against a
//     resolved configuration; all topology factories return one.
//   - Build: the single orchestrator. It resolves functional options into an
//     immutable config and runs the generator, wrapping any error once.
//   - Topology factories:
//     – Complete(n):            K_n, every unordered pair.
//     – Grid(width, height):    4-connected lattice, row-major ids.
//     – Random(n, p):           Erdős–Rényi, Bernoulli trial per pair.
//     – RandomTarget(n, m):     exactly m distinct uniformly sampled edges.
//     – Bipartite(l, r, p):     cross-partition Bernoulli trials only.
//     – ScaleFree(n, m):        Barabási–Albert preferential attachment.
//     – SmallWorld(n, k, beta): Watts–Strogatz ring lattice plus rewiring.
//   - Options: WithSeed / WithRand thread a caller-owned *rand.Rand through
//     every stochastic factory; there is no global seeding.
//
// Guarantees:
//
//   - Determinism: identical parameters, options, and seed produce an
//     identical edge sequence (insertion order included).
//   - Validation-first: every factory validates its parameters before
//     touching the edge set; a failed Build performs no partial work.
//   - Simple graphs only: no self-loops, no duplicate edges, every endpoint
//     in [0, NumVertices).
//   - Structured sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ...) for errors.Is branching; factories never panic
//     at runtime.
//
// Performance boundaries are documented per factory: Random and Complete are
// quadratic in the vertex count by construction; callers wanting very large
// sparse graphs should prefer RandomTarget, which is linear in the requested
// edge count for sparse densities.
package gen
