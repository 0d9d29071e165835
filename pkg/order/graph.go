package order

// root is the arena index of the sentinel that closes the output list.
const root = 0

// node is one item in the arena. Links are arena indexes, never pointers.
type node[T any] struct {
	name    string
	item    T
	refs    []int // direct references, in declaration order
	closure []int // direct and transitive references, in discovery order

	next, prev int
}

// graph is the arena for a single Sort call. nodes[root] is the sentinel and
// nodes[i+1] holds items[i].
type graph[T any] struct {
	nodes []node[T]
	index map[string]int
}

// build creates one node per item and resolves every declared reference.
func build[T any](items []T, name NameFunc[T], refs RefsFunc[T]) (*graph[T], error) {
	g := &graph[T]{
		nodes: make([]node[T], 1, len(items)+1),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		n := name(it)
		if _, dup := g.index[n]; dup {
			return nil, &DuplicateNameError{Name: n}
		}
		g.index[n] = len(g.nodes)
		g.nodes = append(g.nodes, node[T]{name: n, item: it})
	}

	for i := 1; i < len(g.nodes); i++ {
		n := &g.nodes[i]
		for _, ref := range refs(n.item) {
			j, ok := g.index[ref]
			if !ok {
				return nil, &UnknownReferenceError{Item: n.name, Reference: ref}
			}
			n.refs = append(n.refs, j)
		}
	}
	return g, nil
}

// size returns the number of item nodes, excluding the sentinel.
func (g *graph[T]) size() int { return len(g.nodes) - 1 }
