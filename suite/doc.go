// Package suite generates whole benchmark fixture sets from a declarative
// YAML manifest: one seed, one output directory, and a list of named graph
// specs, one per fixture file. It replaces the ad-hoc "write six graphs with
// hardcoded sizes" scripts that tend to accrete next to coloring harnesses
// with something validated and reproducible.
//
// A manifest looks like:
//
//	seed: 42
//	outputDir: fixtures
//	graphs:
//	  - name: complete-5000
//	    type: complete
//	    vertices: 5000
//	    omitEdgeCount: true
//	  - name: sparse-50000
//	    type: random-target
//	    vertices: 50000
//	    edges: 1000000
//	  - name: web-10000
//	    type: scale-free
//	    vertices: 10000
//	    minEdges: 3
//
// The whole manifest is validated before any file is written; the single
// seeded random source is consumed sequentially across specs in manifest
// order, so a manifest is a pure function from seed to bytes on disk.
package suite
