// SPDX-License-Identifier: MIT
// Package: graphgen/suite
//
// manifest.go — manifest schema, loading, and validation.
//
// Contract:
//   • Load parses YAML strictly (unknown keys are errors) so a typoed
//     parameter never silently degrades a fixture.
//   • Validate resolves every spec to a generator closure upfront;
//     generation starts only after the whole manifest is known-good.
//   • Names must be unique and non-empty: each becomes "<name>.txt" under
//     the output directory.

package suite

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sakshi2912/graphgen/gen"
)

// Recognized values for GraphSpec.Type; these match the CLI subcommands.
const (
	TypeRandom       = "random"
	TypeRandomTarget = "random-target"
	TypeGrid         = "grid"
	TypeComplete     = "complete"
	TypeBipartite    = "bipartite"
	TypeScaleFree    = "scale-free"
	TypeSmallWorld   = "small-world"
)

// DefaultSeed is used when the manifest omits (or zeroes) the seed.
const DefaultSeed int64 = 42

// defaultOutputDir receives fixtures when the manifest omits outputDir.
const defaultOutputDir = "fixtures"

var (
	// ErrUnknownType indicates a spec's type is not a recognized topology.
	ErrUnknownType = errors.New("suite: unknown graph type")
	// ErrMissingName indicates a spec without a name.
	ErrMissingName = errors.New("suite: graph spec missing name")
	// ErrDuplicateName indicates two specs sharing an output file name.
	ErrDuplicateName = errors.New("suite: duplicate graph name")
	// ErrNoGraphs indicates a manifest with an empty graphs list.
	ErrNoGraphs = errors.New("suite: manifest has no graphs")
)

// GraphSpec describes one fixture. Only the fields relevant to its Type are
// consulted; the rest stay at their zero values.
type GraphSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Shared sizing.
	Vertices int `yaml:"vertices"`

	// random / bipartite / small-world probability knobs.
	Probability       float64 `yaml:"probability"`
	RewireProbability float64 `yaml:"rewireProbability"`

	// random-target.
	Edges int `yaml:"edges"`

	// grid.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// bipartite.
	Left  int `yaml:"left"`
	Right int `yaml:"right"`

	// scale-free / small-world degree knobs.
	MinEdges   int `yaml:"minEdges"`
	MeanDegree int `yaml:"meanDegree"`

	// OmitEdgeCount selects the "<numVertices>"-only header variant.
	OmitEdgeCount bool `yaml:"omitEdgeCount"`
}

// Manifest is the root document of a fixture suite.
type Manifest struct {
	Seed      int64       `yaml:"seed"`
	OutputDir string      `yaml:"outputDir"`
	Graphs    []GraphSpec `yaml:"graphs"`
}

// Load parses a manifest from r, applies defaults, and validates it.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("suite: decode manifest: %w", err)
	}

	if m.Seed == 0 {
		m.Seed = DefaultSeed
	}
	if m.OutputDir == "" {
		m.OutputDir = defaultOutputDir
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFile parses the manifest file at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks manifest-level invariants and resolves every spec to a
// generator. Parameter-level validation (counts, probabilities, degree
// bounds) is the generators' own contract and surfaces at Run time.
func (m *Manifest) Validate() error {
	if len(m.Graphs) == 0 {
		return ErrNoGraphs
	}

	seen := make(map[string]struct{}, len(m.Graphs))
	for i, g := range m.Graphs {
		if g.Name == "" {
			return fmt.Errorf("graphs[%d]: %w", i, ErrMissingName)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("graphs[%d]: %q: %w", i, g.Name, ErrDuplicateName)
		}
		seen[g.Name] = struct{}{}

		if _, err := g.generator(); err != nil {
			return fmt.Errorf("graphs[%d] (%s): %w", i, g.Name, err)
		}
	}

	return nil
}

// generator maps the spec's type to a topology factory.
func (g GraphSpec) generator() (gen.Generator, error) {
	switch g.Type {
	case TypeRandom:
		return gen.Random(g.Vertices, g.Probability), nil
	case TypeRandomTarget:
		return gen.RandomTarget(g.Vertices, g.Edges), nil
	case TypeGrid:
		return gen.Grid(g.Width, g.Height), nil
	case TypeComplete:
		return gen.Complete(g.Vertices), nil
	case TypeBipartite:
		return gen.Bipartite(g.Left, g.Right, g.Probability), nil
	case TypeScaleFree:
		return gen.ScaleFree(g.Vertices, g.MinEdges), nil
	case TypeSmallWorld:
		return gen.SmallWorld(g.Vertices, g.MeanDegree, g.RewireProbability), nil
	default:
		return nil, fmt.Errorf("%q: %w", g.Type, ErrUnknownType)
	}
}
