// File: suite/suite_test.go
// Package suite_test drives a full manifest through Load and Run against a
// temp directory, then parses the written fixtures back to verify counts.
package suite_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sakshi2912/graphgen/edgelist"
	"github.com/sakshi2912/graphgen/gen"
	"github.com/sakshi2912/graphgen/suite"
)

const manifestYAML = `
seed: 7
graphs:
  - name: k4
    type: complete
    vertices: 4
  - name: lattice
    type: grid
    width: 3
    height: 3
  - name: sparse
    type: random-target
    vertices: 100
    edges: 250
    omitEdgeCount: true
  - name: web
    type: scale-free
    vertices: 50
    minEdges: 2
`

func writeManifest(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	m, err := suite.Load(strings.NewReader("graphs:\n  - name: k3\n    type: complete\n    vertices: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, suite.DefaultSeed, m.Seed)
	assert.Equal(t, "fixtures", m.OutputDir)
}

func TestRun_WritesEveryFixture(t *testing.T) {
	t.Parallel()

	m, err := suite.LoadFile(writeManifest(t, manifestYAML))
	require.NoError(t, err)
	m.OutputDir = t.TempDir()

	require.NoError(t, suite.Run(m, zap.NewNop()))

	// k4: full header with both counts.
	g, err := edgelist.ReadFile(filepath.Join(m.OutputDir, "k4.txt"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices)
	assert.Equal(t, 6, g.Edges.Len())

	// lattice: deterministic edge count.
	g, err = edgelist.ReadFile(filepath.Join(m.OutputDir, "lattice.txt"))
	require.NoError(t, err)
	assert.Equal(t, 12, g.Edges.Len())

	// sparse: vertex-only header variant, exact edge target.
	raw, err := os.ReadFile(filepath.Join(m.OutputDir, "sparse.txt"))
	require.NoError(t, err)
	firstLine := strings.SplitN(string(raw), "\n", 2)[0]
	assert.Equal(t, "100", firstLine, "omitEdgeCount must drop the edge count")
	g, err = edgelist.ReadFile(filepath.Join(m.OutputDir, "sparse.txt"))
	require.NoError(t, err)
	assert.Equal(t, 250, g.Edges.Len())

	// web: Barabási–Albert edge-count invariant.
	g, err = edgelist.ReadFile(filepath.Join(m.OutputDir, "web.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2*3/2+2*(50-2-1), g.Edges.Len())
}

func TestRun_IsReproducible(t *testing.T) {
	t.Parallel()

	run := func() []byte {
		m, err := suite.LoadFile(writeManifest(t, manifestYAML))
		require.NoError(t, err)
		m.OutputDir = t.TempDir()
		require.NoError(t, suite.Run(m, zap.NewNop()))

		raw, err := os.ReadFile(filepath.Join(m.OutputDir, "web.txt"))
		require.NoError(t, err)

		return raw
	}

	assert.Equal(t, run(), run(), "same manifest, same bytes")
}

func TestLoad_RejectsBadManifests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"no graphs",
			"seed: 1\n",
			suite.ErrNoGraphs,
		},
		{
			"missing name",
			"graphs:\n  - type: complete\n    vertices: 3\n",
			suite.ErrMissingName,
		},
		{
			"duplicate name",
			"graphs:\n  - name: a\n    type: complete\n    vertices: 3\n  - name: a\n    type: complete\n    vertices: 4\n",
			suite.ErrDuplicateName,
		},
		{
			"unknown type",
			"graphs:\n  - name: a\n    type: torus\n    vertices: 3\n",
			suite.ErrUnknownType,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := suite.Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want sentinel %v", err, tc.want)
		})
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	// A typoed parameter must fail loudly, not silently default.
	doc := "graphs:\n  - name: a\n    type: complete\n    vertexes: 3\n"
	_, err := suite.Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestRun_SurfacesGenerationErrors(t *testing.T) {
	t.Parallel()

	// Valid manifest shape, invalid generator parameters: scale-free
	// requires minEdges < vertices.
	doc := "graphs:\n  - name: bad\n    type: scale-free\n    vertices: 3\n    minEdges: 5\n"
	m, err := suite.Load(strings.NewReader(doc))
	require.NoError(t, err, "parameter bounds are the generator's contract, not the loader's")
	m.OutputDir = t.TempDir()

	err = suite.Run(m, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gen.ErrDegreeOutOfRange))
	assert.NoFileExists(t, filepath.Join(m.OutputDir, "bad.txt"))
}
