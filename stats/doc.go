// Package stats computes degree-distribution summaries over generated
// graphs (vertex/edge counts, degree extrema, mean, standard deviation,
// and tail quantiles), backed by gonum's stat primitives. The CLI logs a
// Summary next to every fixture it writes, and the generator tests use it
// to assert topology-level invariants (lattice regularity, scale-free
// tails) without reimplementing the bookkeeping per test.
package stats
