package edgelist

import "errors"

var (
	// ErrBadHeader indicates the first line is not one or two integers.
	ErrBadHeader = errors.New("edgelist: malformed header line")
	// ErrBadEdge indicates an edge line is not exactly two integers.
	ErrBadEdge = errors.New("edgelist: malformed edge line")
	// ErrVertexRange indicates an edge endpoint outside [0, numVertices).
	ErrVertexRange = errors.New("edgelist: vertex id out of range")
	// ErrSelfLoop indicates an edge line with identical endpoints.
	ErrSelfLoop = errors.New("edgelist: self-loop edge")
)
