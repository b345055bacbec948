// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// impl_grid.go — implementation of Grid(width, height) factory.
//
// Canonical model:
//   • 2D orthogonal lattice with 4-neighborhood, no wraparound.
//   • Vertex ids are row-major: id = y·width + x.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrTooFewVertices).
//   • For each cell, connect the right neighbor (x+1) and the bottom
//     neighbor (y+1) where they exist; edge count is exactly
//     width·(height−1) + (width−1)·height.
//   • No randomness.
//
// Complexity:
//   • Time: O(width·height) edges emission. Space: O(width·height).
//
// Determinism:
//   • Stable emission order: row-major over cells, Right then Bottom.

package gen

import (
	"fmt"

	"github.com/sakshi2912/graphgen/edgeset"
)

// Grid returns a Generator that builds a width×height orthogonal lattice.
func Grid(width, height int) Generator {
	// The returned closure captures (width, height); Build supplies cfg.
	return func(_ genConfig) (Graph, error) {
		// Validate parameters early (fail fast; no partial work).
		if width < MinGridDim || height < MinGridDim {
			return Graph{}, fmt.Errorf("%s: width=%d, height=%d (each must be >= %d): %w",
				MethodGrid, width, height, MinGridDim, ErrTooFewVertices)
		}

		n := width * height
		es := edgeset.NewWithCapacity(width*(height-1) + (width-1)*height)

		// Emit edges row-major; for each cell connect Right then Bottom.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := y*width + x

				// Right neighbor (x+1) within the same row.
				if x+1 < width {
					es.Add(v, v+1)
				}
				// Bottom neighbor (y+1) in the next row.
				if y+1 < height {
					es.Add(v, v+width)
				}
			}
		}

		return Graph{NumVertices: n, Edges: es}, nil
	}
}
