// File: gen/degrees_test.go
// White-box tests for the Fenwick-backed degree table: weight bookkeeping,
// zero-weight exclusion, incremental updates, and rough proportionality of
// weighted draws.
package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeTable_ZeroWeightNeverSampled(t *testing.T) {
	t.Parallel()

	d := newDegreeTable(8)
	d.add(2, 5)
	d.add(6, 3)
	require.EqualValues(t, 8, d.total)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := d.sample(rng)
		assert.Contains(t, []int{2, 6}, v, "only weighted vertices may be drawn")
	}
}

func TestDegreeTable_ProportionalSampling(t *testing.T) {
	t.Parallel()

	// Vertex 1 carries 9× the weight of vertex 4.
	d := newDegreeTable(5)
	d.add(1, 9)
	d.add(4, 1)

	rng := rand.New(rand.NewSource(7))
	const draws = 20000
	counts := make(map[int]int, 2)
	for i := 0; i < draws; i++ {
		counts[d.sample(rng)]++
	}

	require.Equal(t, draws, counts[1]+counts[4])
	// Expected split 90/10; allow a generous band around the mean.
	assert.InDelta(t, 0.9, float64(counts[1])/draws, 0.03)
}

func TestDegreeTable_LiveUpdatesShiftTheDistribution(t *testing.T) {
	t.Parallel()

	d := newDegreeTable(4)
	d.add(0, 1)
	d.add(3, 1)

	// Pile weight onto vertex 3 and verify the draws follow the CURRENT
	// table, not a snapshot.
	d.add(3, 98)
	require.EqualValues(t, 100, d.total)

	rng := rand.New(rand.NewSource(11))
	hits := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		if d.sample(rng) == 3 {
			hits++
		}
	}
	assert.InDelta(t, 0.99, float64(hits)/draws, 0.01)
}

func TestDegreeTable_BoundaryVertices(t *testing.T) {
	t.Parallel()

	// First and last ids of a non-power-of-two domain.
	d := newDegreeTable(7)
	d.add(0, 1)
	d.add(6, 1)

	rng := rand.New(rand.NewSource(3))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[d.sample(rng)] = true
	}
	assert.True(t, seen[0], "first vertex must be reachable")
	assert.True(t, seen[6], "last vertex must be reachable")
	assert.Len(t, seen, 2)
}
