// Command graphgen synthesizes undirected graphs for coloring benchmarks
// and writes them in the flat edge-list format.
//
// Usage:
//
//	graphgen <topology> [flags] <params...> <output-file>
//	graphgen suite <manifest.yaml>
//
// Topologies and their positional parameters:
//
//	random        <vertices> <probability>
//	random-target <vertices> <edges>
//	grid          <width> <height>
//	complete      <vertices>
//	bipartite     <left> <right> <probability>
//	scale-free    <vertices> <min-edges>
//	small-world   <vertices> <mean-degree> <rewire-probability>
//
// Flags (per topology subcommand):
//
//	-seed N          random seed (default 42)
//	-no-edge-count   write only <numVertices> in the header
//	-stats           log a degree-distribution summary
//	-preview         also write an HTML force-graph next to the output
//
// Invalid parameters are rejected before generation starts, with a
// descriptive message and exit status 2; generation or I/O failures exit
// with status 1 and never leave a partial output file behind.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sakshi2912/graphgen/edgelist"
	"github.com/sakshi2912/graphgen/gen"
	"github.com/sakshi2912/graphgen/preview"
	"github.com/sakshi2912/graphgen/stats"
	"github.com/sakshi2912/graphgen/suite"
)

// defaultSeed keeps bare invocations reproducible across runs.
const defaultSeed int64 = 42

const usageText = `graphgen - benchmark graph synthesis

Usage:
  graphgen <topology> [flags] <params...> <output-file>
  graphgen suite <manifest.yaml>

Topologies:
  random        <vertices> <probability>          Erdős–Rényi G(n,p)
  random-target <vertices> <edges>                exactly m uniform edges
  grid          <width> <height>                  4-connected lattice
  complete      <vertices>                        K_n
  bipartite     <left> <right> <probability>      cross-partition edges only
  scale-free    <vertices> <min-edges>            Barabási–Albert
  small-world   <vertices> <mean-degree> <rewire-probability>  Watts–Strogatz

Flags:
  -seed N          random seed (default 42)
  -no-edge-count   write only <numVertices> in the header
  -stats           log a degree-distribution summary
  -preview         also write an HTML force-graph next to the output
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return
	case "suite":
		runSuite(os.Args[2:])
		return
	}

	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	seed := fs.Int64("seed", defaultSeed, "random seed")
	noCount := fs.Bool("no-edge-count", false, "omit the edge count from the header")
	withStats := fs.Bool("stats", false, "log a degree-distribution summary")
	withPreview := fs.Bool("preview", false, "write an HTML preview next to the output")
	_ = fs.Parse(os.Args[2:]) // ExitOnError: Parse never returns an error

	generator, out, err := buildGenerator(sub, fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphgen %s: %v\n\n%s", sub, err, usageText)
		os.Exit(2)
	}

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	// Generation runs to completion before any file is touched, so a
	// validation or sampling failure cannot leave a partial fixture.
	g, err := gen.Build(generator, gen.WithSeed(*seed))
	if err != nil {
		logger.Error("generation failed", zap.String("topology", sub), zap.Error(err))
		os.Exit(1)
	}

	if err = edgelist.WriteFile(out, g, edgelist.WithEdgeCountInHeader(!*noCount)); err != nil {
		logger.Error("write failed", zap.String("path", out), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("graph generated",
		zap.String("topology", sub),
		zap.Int64("seed", *seed),
		zap.Int("vertices", g.NumVertices),
		zap.Int("edges", g.Edges.Len()),
		zap.String("path", out),
	)

	if *withStats {
		logDegreeStats(logger, g)
	}

	if *withPreview {
		base := strings.TrimSuffix(out, ".txt")
		if err = preview.RenderFile(base, g, sub); err != nil {
			logger.Warn("preview skipped", zap.Error(err))
		} else {
			logger.Info("preview written", zap.String("path", base+".html"))
		}
	}
}

// buildGenerator parses the subcommand's positional parameters and returns
// the topology factory plus the output path (always the final argument).
func buildGenerator(sub string, args []string) (gen.Generator, string, error) {
	want, ok := arity[sub]
	if !ok {
		return nil, "", fmt.Errorf("unknown topology %q", sub)
	}
	if len(args) != want+1 {
		return nil, "", fmt.Errorf("expected %d parameters and an output file, got %d arguments", want, len(args))
	}
	out := args[want]

	switch sub {
	case "random":
		n, err := parseCount("vertices", args[0])
		if err != nil {
			return nil, "", err
		}
		p, err := parseProb("probability", args[1])
		if err != nil {
			return nil, "", err
		}

		return gen.Random(n, p), out, nil

	case "random-target":
		n, err := parseCount("vertices", args[0])
		if err != nil {
			return nil, "", err
		}
		m, err := parseCount("edges", args[1])
		if err != nil {
			return nil, "", err
		}

		return gen.RandomTarget(n, m), out, nil

	case "grid":
		w, err := parseCount("width", args[0])
		if err != nil {
			return nil, "", err
		}
		h, err := parseCount("height", args[1])
		if err != nil {
			return nil, "", err
		}

		return gen.Grid(w, h), out, nil

	case "complete":
		n, err := parseCount("vertices", args[0])
		if err != nil {
			return nil, "", err
		}

		return gen.Complete(n), out, nil

	case "bipartite":
		l, err := parseCount("left", args[0])
		if err != nil {
			return nil, "", err
		}
		r, err := parseCount("right", args[1])
		if err != nil {
			return nil, "", err
		}
		p, err := parseProb("probability", args[2])
		if err != nil {
			return nil, "", err
		}

		return gen.Bipartite(l, r, p), out, nil

	case "scale-free":
		n, err := parseCount("vertices", args[0])
		if err != nil {
			return nil, "", err
		}
		m, err := parseCount("min-edges", args[1])
		if err != nil {
			return nil, "", err
		}

		return gen.ScaleFree(n, m), out, nil

	case "small-world":
		n, err := parseCount("vertices", args[0])
		if err != nil {
			return nil, "", err
		}
		k, err := parseCount("mean-degree", args[1])
		if err != nil {
			return nil, "", err
		}
		r, err := parseProb("rewire-probability", args[2])
		if err != nil {
			return nil, "", err
		}

		return gen.SmallWorld(n, k, r), out, nil
	}

	// Unreachable: arity gates the subcommand set.
	return nil, "", fmt.Errorf("unknown topology %q", sub)
}

// arity maps each topology subcommand to its positional parameter count
// (excluding the trailing output path).
var arity = map[string]int{
	"random":        2,
	"random-target": 2,
	"grid":          2,
	"complete":      1,
	"bipartite":     3,
	"scale-free":    2,
	"small-world":   3,
}

// runSuite executes the manifest-driven batch mode.
func runSuite(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "graphgen suite: expected exactly one manifest path\n\n%s", usageText)
		os.Exit(2)
	}

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	m, err := suite.LoadFile(args[0])
	if err != nil {
		logger.Error("manifest rejected", zap.String("path", args[0]), zap.Error(err))
		os.Exit(2)
	}

	if err = suite.Run(m, logger); err != nil {
		logger.Error("suite failed", zap.Error(err))
		os.Exit(1)
	}
}

func logDegreeStats(logger *zap.Logger, g gen.Graph) {
	summary, err := stats.Summarize(g)
	if err != nil {
		logger.Warn("stats skipped", zap.Error(err))
		return
	}

	logger.Info("degree distribution",
		zap.Int("minDegree", summary.MinDegree),
		zap.Int("maxDegree", summary.MaxDegree),
		zap.Float64("meanDegree", summary.MeanDegree),
		zap.Float64("stdDev", summary.StdDev),
		zap.Float64("median", summary.Median),
		zap.Float64("p90", summary.P90),
		zap.Float64("p99", summary.P99),
	)
}

// parseCount parses an integer positional parameter; range validation is
// the generator's contract.
func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}

	return v, nil
}

// parseProb parses a probability positional parameter; the [0,1] check is
// the generator's contract.
func parseProb(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}

	return v, nil
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphgen: logger init: %v\n", err)
		os.Exit(1)
	}

	return logger
}
