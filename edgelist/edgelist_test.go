// File: edgelist/edgelist_test.go
// Package edgelist_test verifies both header layouts, the exact serialized
// byte layout, round-tripping through Read, duplicate folding, and the
// reader's sentinel errors.
package edgelist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshi2912/graphgen/edgelist"
	"github.com/sakshi2912/graphgen/edgeset"
	"github.com/sakshi2912/graphgen/gen"
)

func TestWrite_DefaultHeader(t *testing.T) {
	t.Parallel()

	g, err := gen.Build(gen.Complete(4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))

	want := "4 6\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_VertexOnlyHeader(t *testing.T) {
	t.Parallel()

	g, err := gen.Build(gen.Grid(2, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g, edgelist.WithEdgeCountInHeader(false)))

	want := "4\n0 1\n0 2\n1 3\n2 3\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip_PreservesGraph(t *testing.T) {
	t.Parallel()

	// A stochastic topology exercises non-trivial edge orders.
	g, err := gen.Build(gen.SmallWorld(20, 4, 0.5), gen.WithSeed(42))
	require.NoError(t, err)

	for _, includeCount := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(t, edgelist.Write(&buf, g, edgelist.WithEdgeCountInHeader(includeCount)))

		back, err := edgelist.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.NumVertices, back.NumVertices)
		// The writer emits insertion order and the reader re-inserts in
		// file order, so the full sequence survives, not just the set.
		assert.Equal(t, g.Edges.Edges(), back.Edges.Edges())
	}
}

func TestRead_FoldsDuplicatesAndBlankLines(t *testing.T) {
	t.Parallel()

	// Legacy fixture producers emit duplicates and reversed orientations.
	doc := "5\n0 1\n\n1 0\n0 1\n3 2\n"
	g, err := edgelist.Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumVertices)
	assert.Equal(t, []edgeset.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, g.Edges.Edges())
}

func TestRead_DeclaredCountIsAHint(t *testing.T) {
	t.Parallel()

	// Header claims 10 edges; the document carries one. The count is not
	// enforced (see package contract).
	g, err := edgelist.Read(strings.NewReader("4 10\n0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Edges.Len())
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", edgelist.ErrBadHeader},
		{"blank-only document", "\n\n", edgelist.ErrBadHeader},
		{"three-field header", "4 6 1\n", edgelist.ErrBadHeader},
		{"non-integer header", "four\n", edgelist.ErrBadHeader},
		{"negative vertex count", "-1\n", edgelist.ErrBadHeader},
		{"non-integer edge count", "4 six\n", edgelist.ErrBadHeader},
		{"one-field edge", "4 1\n0\n", edgelist.ErrBadEdge},
		{"three-field edge", "4 1\n0 1 2\n", edgelist.ErrBadEdge},
		{"non-integer endpoint", "4 1\n0 x\n", edgelist.ErrBadEdge},
		{"endpoint above range", "4 1\n0 4\n", edgelist.ErrVertexRange},
		{"negative endpoint", "4 1\n-1 2\n", edgelist.ErrVertexRange},
		{"self-loop", "4 1\n2 2\n", edgelist.ErrSelfLoop},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := edgelist.Read(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want sentinel %v", err, tc.want)
		})
	}
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	g, err := gen.Build(gen.Complete(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "dir", "k3.txt")
	require.NoError(t, edgelist.WriteFile(path, g))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3 3\n0 1\n0 2\n1 2\n", string(raw))

	back, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, back.NumVertices)
	assert.Equal(t, 3, back.Edges.Len())
}
