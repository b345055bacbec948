// SPDX-License-Identifier: MIT
// Package: graphgen/preview
//
// preview.go — HTML force-graph rendering of generated topologies.
//
// Contract:
//   • Render writes a self-contained go-echarts page with one node per
//     vertex and one link per edge, force-layouted and draggable.
//   • Graphs beyond MaxRenderVertices are refused with ErrTooLarge: the
//     preview exists for eyeballing small fixtures, not for plotting a
//     million-edge benchmark input into a frozen browser tab.
//   • RenderFile appends the ".html" extension to the given base path.
//
// Complexity: O(V + E) to assemble the series; rendering is echarts-side.

package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sakshi2912/graphgen/gen"
)

// MaxRenderVertices bounds the renderable graph size.
const MaxRenderVertices = 2000

// forceRepulsion tunes the force layout spread; the value nomad-scale
// host graphs render legibly with.
const forceRepulsion = 400

// ErrTooLarge indicates the graph exceeds MaxRenderVertices.
var ErrTooLarge = errors.New("preview: graph too large to render")

// Render writes an HTML force-graph page for g to w.
func Render(w io.Writer, g gen.Graph, title string) error {
	if g.NumVertices > MaxRenderVertices {
		return fmt.Errorf("preview: %d vertices exceed the %d limit: %w",
			g.NumVertices, MaxRenderVertices, ErrTooLarge)
	}

	nodes := make([]opts.GraphNode, g.NumVertices)
	for i := range nodes {
		nodes[i] = opts.GraphNode{Name: strconv.Itoa(i)}
	}

	edges := g.Edges.Edges()
	links := make([]opts.GraphLink, len(edges))
	for i, e := range edges {
		links[i] = opts.GraphLink{
			Source: strconv.Itoa(e.U),
			Target: strconv.Itoa(e.V),
		}
	}

	page := components.NewPage()
	page.AddCharts(graphBase(title, nodes, links))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("preview: render: %w", err)
	}

	return nil
}

// RenderFile writes the preview to basePath + ".html".
func RenderFile(basePath string, g gen.Graph, title string) error {
	f, err := os.Create(basePath + ".html")
	if err != nil {
		return fmt.Errorf("preview: create %s.html: %w", basePath, err)
	}
	defer f.Close()

	return Render(f, g, title)
}

// graphBase assembles the echarts graph series with the shared layout and
// label options.
func graphBase(title string, nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		title,
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: forceRepulsion},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)

	return graph
}
