// Package preview renders generated graphs as self-contained HTML pages
// with a force-directed layout, via go-echarts. It is a debugging aid for
// small fixtures (does the small-world rewiring look right? is the
// bipartite structure visible?), deliberately capped in size — benchmark
// inputs are consumed from the edge-list files, never from here.
package preview
