package order

// frame is one level of an iterative depth-first walk: the node being
// expanded and the position of its next unexplored reference.
type frame struct {
	node int
	next int
}

// closeOver fills in the closure of every node. It returns false as soon as
// any node reaches itself, leaving the remaining closures unset.
func (g *graph[T]) closeOver() bool {
	visited := make([]bool, len(g.nodes))
	for start := 1; start < len(g.nodes); start++ {
		clear(visited)
		closure, ok := g.reach(start, visited)
		if !ok {
			return false
		}
		g.nodes[start].closure = closure
	}
	return true
}

// reach walks everything reachable from start, following references in
// declaration order, and returns the reached nodes in first-visit order.
// It reports false if start is reachable from itself.
func (g *graph[T]) reach(start int, visited []bool) ([]int, bool) {
	var closure []int
	stack := []frame{{node: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		refs := g.nodes[top.node].refs
		if top.next == len(refs) {
			stack = stack[:len(stack)-1]
			continue
		}
		ref := refs[top.next]
		top.next++

		if ref == start {
			return nil, false
		}
		if visited[ref] {
			continue
		}
		visited[ref] = true
		closure = append(closure, ref)
		stack = append(stack, frame{node: ref})
	}
	return closure, true
}
