// SPDX-License-Identifier: MIT
// Package: graphgen/edgelist
//
// writer.go — edge-list serialization.
//
// Contract:
//   • Write emits the header, then one "<u> <v>" line per edge in the edge
//     set's insertion order. No trailing semantic validation.
//   • The header is "<numVertices> <numEdges>" by default; with
//     WithEdgeCountInHeader(false) it degrades to "<numVertices>" for
//     consumers that count edges while streaming.
//   • WriteFile creates missing parent directories, truncates an existing
//     file, and surfaces the first I/O error without retrying.
//
// Complexity: O(|E|) time, O(1) extra space (buffered, integers appended
// without fmt allocations — fixtures run to millions of edges).

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sakshi2912/graphgen/gen"
)

// dirPerm is the mode for directories created under WriteFile.
const dirPerm = 0o755

// WriteOption customizes serialization; resolved once per Write call.
type WriteOption func(*writeConfig)

type writeConfig struct {
	includeEdgeCount bool
}

// WithEdgeCountInHeader selects between the two recognized header layouts:
// true (default) writes "<numVertices> <numEdges>", false writes only
// "<numVertices>".
func WithEdgeCountInHeader(include bool) WriteOption {
	return func(c *writeConfig) {
		c.includeEdgeCount = include
	}
}

// Write serializes g to w in edge-list format.
func Write(w io.Writer, g gen.Graph, opts ...WriteOption) error {
	cfg := writeConfig{includeEdgeCount: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)

	// Header: one or two counts per the resolved layout.
	if cfg.includeEdgeCount {
		if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumVertices, g.Edges.Len()); err != nil {
			return fmt.Errorf("edgelist: write header: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(bw, "%d\n", g.NumVertices); err != nil {
			return fmt.Errorf("edgelist: write header: %w", err)
		}
	}

	// Edge lines in insertion order; strconv.AppendInt into a scratch
	// buffer keeps the hot loop allocation-free.
	scratch := make([]byte, 0, 32)
	for _, e := range g.Edges.Edges() {
		scratch = scratch[:0]
		scratch = strconv.AppendInt(scratch, int64(e.U), 10)
		scratch = append(scratch, ' ')
		scratch = strconv.AppendInt(scratch, int64(e.V), 10)
		scratch = append(scratch, '\n')
		if _, err := bw.Write(scratch); err != nil {
			return fmt.Errorf("edgelist: write edge: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: flush: %w", err)
	}

	return nil
}

// WriteFile serializes g to the file at path, creating parent directories
// as needed. On any error the partially written file is removed so a failed
// run never leaves a truncated fixture behind.
func WriteFile(path string, g gen.Graph, opts ...WriteOption) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("edgelist: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create %s: %w", path, err)
	}

	if err = Write(f, g, opts...); err != nil {
		f.Close()
		os.Remove(path)

		return err
	}

	if err = f.Close(); err != nil {
		os.Remove(path)

		return fmt.Errorf("edgelist: close %s: %w", path, err)
	}

	return nil
}
