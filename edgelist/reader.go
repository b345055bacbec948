// SPDX-License-Identifier: MIT
// Package: graphgen/edgelist
//
// reader.go — edge-list parsing, the consumer-side contract.
//
// Contract:
//   • The first non-blank line is the header: either "<numVertices>
//     <numEdges>" or the bare "<numVertices>" streamed variant. A declared
//     edge count is treated as a hint, not enforced: legacy fixture
//     producers wrote duplicate and reversed edge lines, and folding them
//     through the edge set's canonical-pair invariant is the point of
//     re-reading.
//   • Every edge line must be exactly two integers in [0, numVertices),
//     with distinct endpoints. Violations surface as sentinel errors with
//     the offending line number.
//   • Blank lines are skipped anywhere in the file.
//
// Complexity: O(|lines|) time, O(|E|) space.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sakshi2912/graphgen/edgeset"
	"github.com/sakshi2912/graphgen/gen"
)

// maxLineBytes sizes the scanner buffer; edge lines are tiny but a generous
// cap costs nothing and tolerates odd producers.
const maxLineBytes = 1 << 16

// Read parses an edge-list document from r into a Graph. Duplicate and
// reversed edge lines are folded into a single undirected edge.
func Read(r io.Reader) (gen.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	lineNo := 0
	numVertices := -1
	es := edgeset.New()

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		// First populated line is the header.
		if numVertices < 0 {
			n, err := parseHeader(fields)
			if err != nil {
				return gen.Graph{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			numVertices = n

			continue
		}

		u, v, err := parseEdge(fields, numVertices)
		if err != nil {
			return gen.Graph{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		es.Add(u, v)
	}
	if err := sc.Err(); err != nil {
		return gen.Graph{}, fmt.Errorf("edgelist: read: %w", err)
	}
	if numVertices < 0 {
		return gen.Graph{}, fmt.Errorf("edgelist: empty document: %w", ErrBadHeader)
	}

	return gen.Graph{NumVertices: numVertices, Edges: es}, nil
}

// ReadFile parses the edge-list file at path.
func ReadFile(path string) (gen.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return gen.Graph{}, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseHeader accepts "<numVertices>" or "<numVertices> <numEdges>".
func parseHeader(fields []string) (int, error) {
	if len(fields) > 2 {
		return 0, fmt.Errorf("%w: %d fields", ErrBadHeader, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: vertex count %q", ErrBadHeader, fields[0])
	}
	if len(fields) == 2 {
		// Declared edge count: syntax-checked only (see package contract).
		if _, err = strconv.Atoi(fields[1]); err != nil {
			return 0, fmt.Errorf("%w: edge count %q", ErrBadHeader, fields[1])
		}
	}

	return n, nil
}

// parseEdge accepts exactly two distinct in-range vertex ids.
func parseEdge(fields []string, numVertices int) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %d fields", ErrBadEdge, len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: endpoint %q", ErrBadEdge, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: endpoint %q", ErrBadEdge, fields[1])
	}
	if u < 0 || u >= numVertices || v < 0 || v >= numVertices {
		return 0, 0, fmt.Errorf("%w: (%d,%d) with numVertices=%d", ErrVertexRange, u, v, numVertices)
	}
	if u == v {
		return 0, 0, fmt.Errorf("%w: (%d,%d)", ErrSelfLoop, u, v)
	}

	return u, v, nil
}
