// Package edgeset provides a deduplicating, order-preserving collection of
// undirected edges over integer vertex ids.
//
// Every topology generator in graphgen accumulates its output in a Set, and
// the edgelist writer consumes edges in the exact order they were inserted,
// so serialized fixtures are reproducible for a fixed random seed.
//
// The package offers the following guarantees:
//
//   - No self-loops: Add(u, u) is rejected (returns false), never an error,
//     so generators may use the Set as a filter.
//   - No duplicates: {u,v} and {v,u} denote the same edge; membership is
//     canonical, so a Set never holds both orientations.
//   - Stable iteration: Edges yields surviving edges in insertion order,
//     even after removals.
//   - Near-constant membership and insertion: edges are kept in a hash map
//     keyed by the canonical pair, not scanned linearly.
//
// A Set is not safe for concurrent mutation; each generator owns its Set
// exclusively during the single construction pass.
package edgeset
