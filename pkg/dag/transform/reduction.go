package transform

import "github.com/matzehuels/releaseorder/pkg/dag"

// TransitiveReduction removes redundant edges from the graph and returns how
// many it removed.
//
// An edge (u, v) is redundant when u reaches v through at least one
// intermediate node. For example, if edges A→B, B→C, and A→C all exist, then
// A→C is removed because A reaches C via B.
//
// The reduction of a cyclic graph is not unique, so TransitiveReduction leaves
// graphs with cycles untouched and returns 0.
//
// # Performance
//
// Time complexity is O(V²·E) in the worst case. Space complexity is O(V²) for
// the reachability matrix, which is fine for release-sized graphs.
func TransitiveReduction(g *dag.DAG) int {
	nodes := g.Nodes()
	if len(nodes) == 0 || g.HasCycle() {
		return 0
	}

	nodeIndex := make(map[string]int, len(nodes))
	for i, n := range nodes {
		nodeIndex[n.ID] = i
	}
	adjacency := make([][]int, len(nodes))
	for _, e := range g.Edges() {
		adjacency[nodeIndex[e.From]] = append(adjacency[nodeIndex[e.From]], nodeIndex[e.To])
	}

	reachability := computeReachability(adjacency)

	removed := 0
	for _, e := range g.Edges() {
		src, dst := nodeIndex[e.From], nodeIndex[e.To]
		for _, intermediate := range adjacency[src] {
			if intermediate != dst && reachability[intermediate][dst] {
				g.RemoveEdge(e.From, e.To)
				removed++
				break
			}
		}
	}
	return removed
}

func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	for source := range reachable {
		stack := []int{source}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reachable[source][cur] {
				continue
			}
			reachable[source][cur] = true
			stack = append(stack, adjacency[cur]...)
		}
	}
	return reachable
}
