// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// helpers.go — internal helpers shared by the topology factories.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: factories wrap errors with their method tag; helpers
//     stay infallible.
//   - Performance: preallocate edge sets when the final size is known.

package gen

import "github.com/sakshi2912/graphgen/edgeset"

// newCompleteSet returns the edge set of K_n over ids [0,n): every unordered
// pair {i,j}, i<j, in lexicographic order. Shared by Complete and the
// ScaleFree seed clique.
// Complexity: O(n²) time and space.
func newCompleteSet(n int) *edgeset.Set {
	es := edgeset.NewWithCapacity(n * (n - 1) / 2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			es.Add(i, j)
		}
	}

	return es
}

// validProbability reports whether p lies in [MinProbability, MaxProbability].
func validProbability(p float64) bool {
	return p >= MinProbability && p <= MaxProbability
}
