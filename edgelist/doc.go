// Package edgelist reads and writes graphs in the flat edge-list text
// format consumed by the graph-coloring benchmark harnesses:
//
//	<numVertices> <numEdges>
//	<u1> <v1>
//	<u2> <v2>
//	...
//
// Lines are newline-terminated and whitespace-separated; vertices are
// 0-indexed integers below numVertices; edges are unordered and unique.
//
// Two header variants exist in the wild. The default header carries both
// counts; some fixture producers write only <numVertices> and stream edges
// without an upfront total. Write supports both via the
// WithEdgeCountInHeader option, and Read accepts either form.
//
// The writer emits edges in the edge set's insertion order, so a serialized
// fixture is byte-for-byte reproducible for a fixed generator seed. It is a
// pure writer: no semantic validation is performed on the way out, and I/O
// failures surface immediately without retries.
package edgelist
