package order

// link seeds the circular list through the sentinel in input order.
func (g *graph[T]) link() {
	last := len(g.nodes) - 1
	for i := range g.nodes {
		g.nodes[i].prev = i - 1
		g.nodes[i].next = i + 1
	}
	g.nodes[root].prev = last
	g.nodes[last].next = root
}

// follows reports whether a appears somewhere after b before the list wraps
// around to the sentinel.
func (g *graph[T]) follows(a, b int) bool {
	for cur := g.nodes[b].next; cur != root; cur = g.nodes[cur].next {
		if cur == a {
			return true
		}
	}
	return false
}

// unlink detaches n, joining its neighbours.
func (g *graph[T]) unlink(n int) {
	prev, next := g.nodes[n].prev, g.nodes[n].next
	g.nodes[prev].next = next
	g.nodes[next].prev = prev
}

// insertAfter links n directly after at.
func (g *graph[T]) insertAfter(n, at int) {
	next := g.nodes[at].next
	g.nodes[n].prev = at
	g.nodes[n].next = next
	g.nodes[at].next = n
	g.nodes[next].prev = n
}

// place moves dependent directly after dependency unless it already follows
// it. All other nodes keep their relative order.
func (g *graph[T]) place(dependent, dependency int) {
	if g.follows(dependent, dependency) {
		return
	}
	g.unlink(dependent)
	g.insertAfter(dependent, dependency)
}

// order applies every closure constraint and returns the items in list order.
// closeOver must have succeeded first.
func (g *graph[T]) order() []T {
	g.link()
	for n := 1; n < len(g.nodes); n++ {
		for _, dep := range g.nodes[n].closure {
			g.place(n, dep)
		}
	}

	out := make([]T, 0, g.size())
	for cur := g.nodes[root].next; cur != root; cur = g.nodes[cur].next {
		out = append(out, g.nodes[cur].item)
	}
	return out
}
