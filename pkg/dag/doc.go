// Package dag provides the reference graph between release items.
//
// # Overview
//
// Ordering happens in [github.com/matzehuels/releaseorder/pkg/order], which
// works on caller items directly. This package holds the same references as
// an explicit graph so they can be inspected, validated and rendered: an edge
// From -> To means From references To, so To goes out first.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge], or build it in one step from caller items with [FromItems]:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "app"})
//	g.AddNode(dag.Node{ID: "lib"})
//	g.AddEdge(dag.Edge{From: "app", To: "lib"})
//
// Query the graph structure with [DAG.Children], [DAG.Parents],
// [DAG.Sources] and [DAG.Sinks]. Nodes and edges are returned in insertion
// order, so everything derived from a graph is deterministic.
//
// # Cycles
//
// Unlike a strict DAG, the graph accepts cycles (including self-loops) because
// a cyclic reference set is exactly what needs to be shown to a release
// manager. [DAG.Validate] returns [ErrGraphHasCycle] for such graphs and
// [DAG.MarkCycles] tags the members of reported cycles for rendering.
//
// # Metadata
//
// Nodes, edges and the graph itself carry [Metadata] maps, used for item
// summaries and render hints such as [MetaCycle]. Metadata maps are never nil
// after creation - empty maps are automatically initialized.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize access
// if multiple goroutines read or modify the same graph.
//
// # Related Packages
//
// The [transform] subpackage provides transitive reduction, used to draw only
// the references that are not implied by others.
//
// [transform]: github.com/matzehuels/releaseorder/pkg/dag/transform
package dag
