// Package nodelink renders reference graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// items appear as boxes connected by arrows from each item to the items it
// requires. Nodes and edges tagged as part of a reference cycle (see
// [dag.DAG.MarkCycles]) are drawn in red so the loop stands out.
//
// # Usage
//
// Convert a DAG to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// Nodes are emitted in manifest order, which Graphviz uses to break ties
// between items of the same rank.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
