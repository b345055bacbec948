// Package graphgen synthesizes undirected graphs of controllable size and
// topology and serializes them as flat edge-list fixtures for
// graph-coloring benchmarks.
//
// Everything is organized under focused subpackages:
//
//	edgeset/  — deduplicating, order-preserving undirected edge collection
//	gen/      — topology generators: random (Erdős–Rényi), grid, complete,
//	            bipartite, scale-free (Barabási–Albert), small-world
//	            (Watts–Strogatz), plus direct edge-count sampling
//	edgelist/ — the edge-list text format: writer (both header variants)
//	            and parser
//	stats/    — degree-distribution summaries (gonum-backed)
//	preview/  — HTML force-graph rendering of small fixtures (go-echarts)
//	suite/    — YAML-manifest batch generation of whole fixture sets
//	cmd/      — the graphgen CLI: one subcommand per topology plus suite
//
// Guarantees across the module:
//
//   - Simple graphs only: no self-loops, no duplicate edges, every
//     endpoint inside [0, numVertices).
//   - Determinism: a seeded, caller-owned random source threads through
//     every stochastic generator; same seed, same bytes on disk.
//   - Validation-first: parameters are rejected with sentinel errors
//     before any edge is placed or file created.
package graphgen
