package dag

import "fmt"

// FromItems builds a reference graph from caller items. Nodes are added in
// item order and edges in declaration order; a reference to a name that is
// not among the items fails with ErrUnknownTargetNode.
func FromItems[T any](items []T, name func(T) string, refs func(T) []string) (*DAG, error) {
	g := New(nil)
	for _, it := range items {
		id := name(it)
		if err := g.AddNode(Node{ID: id}); err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
	}
	for _, it := range items {
		from := name(it)
		for _, to := range refs(it) {
			if err := g.AddEdge(Edge{From: from, To: to}); err != nil {
				return nil, fmt.Errorf("edge %s->%s: %w", from, to, err)
			}
		}
	}
	return g, nil
}

// MarkCycles tags every node and edge of the given cycles with [MetaCycle].
// Each cycle is a path whose last element references the first. Names that
// are not in the graph are ignored.
func (d *DAG) MarkCycles(cycles [][]string) {
	inCycle := make(map[[2]string]bool)
	for _, path := range cycles {
		for i, id := range path {
			if n, ok := d.nodes[id]; ok {
				n.Meta[MetaCycle] = true
			}
			next := path[(i+1)%len(path)]
			inCycle[[2]string{id, next}] = true
		}
	}
	for _, e := range d.edges {
		if inCycle[[2]string{e.From, e.To}] {
			e.Meta[MetaCycle] = true
		}
	}
}
