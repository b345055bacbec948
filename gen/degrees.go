// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// degrees.go — incremental degree table with degree-weighted sampling.
//
// Canonical model:
//   • A Fenwick (binary indexed) tree over per-vertex degrees, so that a
//     preferential-attachment draw re-reads the CURRENT weights on every
//     sample — not a snapshot — while updates and draws stay O(log n).
//
// Contract:
//   • add(i, delta) adjusts vertex i's weight; negative deltas are not used
//     by the generators and are unsupported.
//   • sample(rng) returns a vertex with probability weight_i / total.
//     Vertices with zero weight (not yet attached) are never returned.
//   • sample MUST NOT be called while total == 0.
//
// Complexity:
//   • add: O(log n). sample: O(log n) via a top-down prefix descent.
//   • Space: O(n).

package gen

import "math/rand"

// degreeTable is the live sampling weight structure for ScaleFree. It is
// created per generation pass and discarded afterwards.
type degreeTable struct {
	// tree is a 1-based Fenwick array over vertex weights.
	tree []int64
	// n is the fixed capacity (vertex id domain [0,n)).
	n int
	// total is the sum of all weights (2·|E| once all degrees are counted).
	total int64
	// top is the highest power of two ≤ n, precomputed for the descent.
	top int
}

// newDegreeTable returns a zero-weight table over vertex ids [0, n).
func newDegreeTable(n int) *degreeTable {
	top := 1
	for top<<1 <= n {
		top <<= 1
	}

	return &degreeTable{
		tree: make([]int64, n+1),
		n:    n,
		top:  top,
	}
}

// add increases vertex i's weight by delta and updates the running total.
func (d *degreeTable) add(i int, delta int64) {
	d.total += delta
	for pos := i + 1; pos <= d.n; pos += pos & -pos {
		d.tree[pos] += delta
	}
}

// sample draws a vertex id with probability proportional to its current
// weight. The draw consumes exactly one rng value, keeping the overall
// generation stream reproducible.
func (d *degreeTable) sample(rng *rand.Rand) int {
	// x is a uniform point in [0, total); the descent finds the first
	// vertex whose cumulative weight exceeds it.
	x := rng.Int63n(d.total)

	idx := 0
	for bit := d.top; bit > 0; bit >>= 1 {
		next := idx + bit
		if next <= d.n && d.tree[next] <= x {
			idx = next
			x -= d.tree[next]
		}
	}

	return idx
}
