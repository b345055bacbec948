// SPDX-License-Identifier: MIT
// Package: graphgen/edgeset
//
// edgeset.go — canonical undirected edge and the deduplicating Set.
//
// Contract:
//   • An Edge always satisfies U < V (canonical orientation).
//   • Add(u,v) inserts {u,v} iff u≠v and the edge is absent; reports insertion.
//   • Contains(u,v) tests membership in either orientation.
//   • Remove(u,v) deletes the canonical pair; surviving insertion order is kept.
//   • Len() counts live edges; Edges() materializes them in insertion order.
//
// Complexity:
//   • Add/Contains/Remove: O(1) expected (hash map on the canonical pair).
//   • Edges: O(inserted) to skip removal tombstones; amortized by compaction.

package edgeset

// Edge is an unordered pair of distinct vertex ids stored canonically
// with U < V. Two edges are equal iff they connect the same vertices.
type Edge struct {
	U, V int
}

// tombstone marks a removed slot in the insertion-order log. Real edges
// never carry negative ids, so the sentinel cannot collide.
var tombstone = Edge{U: -1, V: -1}

// compactionSlack is the removed-slot fraction (denominator) above which
// the order log is rewritten. Keeps Edges() linear in live edges for
// removal-heavy workloads such as small-world rewiring.
const compactionSlack = 2

// Canonical returns the canonical form of {u,v}: smaller id first.
// Canonical(u,u) returns a degenerate pair; callers reject loops upstream.
func Canonical(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Set is a deduplicating collection of undirected edges that remembers
// insertion order. The zero value is not usable; construct with New.
type Set struct {
	// index maps a canonical edge to its position in order.
	index map[Edge]int
	// order is the append-only insertion log; removed slots hold tombstone.
	order []Edge
	// removed counts tombstoned slots in order.
	removed int
}

// New returns an empty Set.
func New() *Set {
	return &Set{index: make(map[Edge]int)}
}

// NewWithCapacity returns an empty Set sized for about n edges, avoiding
// rehashing during bulk construction (grids, cliques, dense samples).
func NewWithCapacity(n int) *Set {
	if n < 0 {
		n = 0
	}

	return &Set{
		index: make(map[Edge]int, n),
		order: make([]Edge, 0, n),
	}
}

// Add inserts the undirected edge {u,v}. It returns true iff the edge was
// newly inserted. Self-loops (u==v) and duplicates (in either orientation)
// are rejected by returning false; rejection is not an error condition, so
// generators can lean on Add as a filter inside sampling loops.
func (s *Set) Add(u, v int) bool {
	if u == v {
		return false
	}

	e := Canonical(u, v)
	if _, dup := s.index[e]; dup {
		return false
	}

	s.index[e] = len(s.order)
	s.order = append(s.order, e)

	return true
}

// Contains reports whether {u,v} is present, in either orientation.
func (s *Set) Contains(u, v int) bool {
	if u == v {
		return false
	}
	_, ok := s.index[Canonical(u, v)]

	return ok
}

// Remove deletes the undirected edge {u,v} if present and reports whether a
// deletion happened. The insertion order of the surviving edges is unchanged.
func (s *Set) Remove(u, v int) bool {
	if u == v {
		return false
	}

	e := Canonical(u, v)
	pos, ok := s.index[e]
	if !ok {
		return false
	}

	delete(s.index, e)
	s.order[pos] = tombstone
	s.removed++

	// Rewrite the log once tombstones dominate, so iteration stays linear
	// in live edges.
	if s.removed > len(s.order)/compactionSlack {
		s.compact()
	}

	return true
}

// Len returns the number of live edges.
func (s *Set) Len() int {
	return len(s.index)
}

// Edges returns the live edges in insertion order. The returned slice is
// owned by the caller; mutating it does not affect the Set.
func (s *Set) Edges() []Edge {
	out := make([]Edge, 0, len(s.index))
	for _, e := range s.order {
		if e != tombstone {
			out = append(out, e)
		}
	}

	return out
}

// compact rewrites the insertion log without tombstones and refreshes the
// position index. O(len(order)) time, O(live) space.
func (s *Set) compact() {
	dense := make([]Edge, 0, len(s.index))
	for _, e := range s.order {
		if e != tombstone {
			s.index[e] = len(dense)
			dense = append(dense, e)
		}
	}
	s.order = dense
	s.removed = 0
}
