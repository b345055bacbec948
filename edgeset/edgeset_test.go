// File: edgeset/edgeset_test.go
// Package edgeset_test verifies the canonical-pair invariants of Set:
// no self-loops, no duplicates in either orientation, stable insertion
// order across removals, and compaction transparency.
package edgeset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshi2912/graphgen/edgeset"
)

func TestCanonical_OrdersEndpoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, edgeset.Edge{U: 2, V: 7}, edgeset.Canonical(7, 2))
	assert.Equal(t, edgeset.Edge{U: 2, V: 7}, edgeset.Canonical(2, 7))
}

func TestSet_AddRejectsSelfLoop(t *testing.T) {
	t.Parallel()

	s := edgeset.New()
	assert.False(t, s.Add(3, 3), "self-loop must be rejected")
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(3, 3))
}

func TestSet_AddDeduplicatesBothOrientations(t *testing.T) {
	t.Parallel()

	s := edgeset.New()
	require.True(t, s.Add(1, 4))
	assert.False(t, s.Add(1, 4), "exact duplicate must be rejected")
	assert.False(t, s.Add(4, 1), "reversed duplicate must be rejected")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(1, 4))
	assert.True(t, s.Contains(4, 1))
}

func TestSet_EdgesPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	s := edgeset.New()
	// Insert deliberately out of canonical order to verify the log ordering
	// is by insertion, not by endpoint value.
	require.True(t, s.Add(5, 0))
	require.True(t, s.Add(2, 3))
	require.True(t, s.Add(1, 0))

	want := []edgeset.Edge{{U: 0, V: 5}, {U: 2, V: 3}, {U: 0, V: 1}}
	assert.Equal(t, want, s.Edges())
}

func TestSet_RemoveKeepsSurvivorOrder(t *testing.T) {
	t.Parallel()

	s := edgeset.New()
	require.True(t, s.Add(0, 1))
	require.True(t, s.Add(1, 2))
	require.True(t, s.Add(2, 3))

	// Removal matches either orientation.
	assert.True(t, s.Remove(2, 1))
	assert.False(t, s.Remove(1, 2), "second removal must report absence")

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(1, 2))
	assert.Equal(t, []edgeset.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, s.Edges())

	// Re-adding a removed edge appends it at the tail of the order.
	require.True(t, s.Add(1, 2))
	assert.Equal(t, []edgeset.Edge{{U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 2}}, s.Edges())
}

func TestSet_CompactionIsTransparent(t *testing.T) {
	t.Parallel()

	const n = 64
	s := edgeset.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		require.True(t, s.Add(i, i+1))
	}
	// Remove every even edge; this crosses the compaction threshold.
	for i := 0; i < n; i += 2 {
		require.True(t, s.Remove(i, i+1))
	}

	require.Equal(t, n/2, s.Len())
	want := make([]edgeset.Edge, 0, n/2)
	for i := 1; i < n; i += 2 {
		want = append(want, edgeset.Edge{U: i, V: i + 1})
	}
	assert.Equal(t, want, s.Edges())

	// Membership still behaves after compaction.
	assert.True(t, s.Contains(1, 2))
	assert.False(t, s.Contains(0, 1))
	assert.True(t, s.Add(0, 1))
}
