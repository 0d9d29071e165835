package order

import (
	"context"
	"slices"
	"strings"
)

// Cycle is a closed chain of references: Path[0] references Path[1], and so
// on, with the last element referencing Path[0] again.
type Cycle struct {
	// Path lists the members in the order the chain was discovered, without
	// repeating the first member at the end.
	Path []string

	members []string
}

func newCycle(path []string) Cycle {
	members := slices.Clone(path)
	slices.Sort(members)
	return Cycle{Path: path, members: members}
}

// Members returns the canonical form of the cycle: its member names sorted.
// Two cycles with equal members are the same cycle regardless of rotation.
func (c Cycle) Members() []string {
	if c.members == nil && c.Path != nil {
		m := slices.Clone(c.Path)
		slices.Sort(m)
		return m
	}
	return slices.Clone(c.members)
}

// Len returns the number of distinct members.
func (c Cycle) Len() int { return len(c.Path) }

// String renders the chain closed back to its start, e.g. "A -> B -> A".
func (c Cycle) String() string {
	if len(c.Path) == 0 {
		return ""
	}
	return strings.Join(c.Path, " -> ") + " -> " + c.Path[0]
}

func (c Cycle) key() string { return strings.Join(c.Members(), "\x00") }

// compareCycles orders cycles by size, then by their sorted member names.
func compareCycles(a, b Cycle) int {
	if n := a.Len() - b.Len(); n != 0 {
		return n
	}
	return slices.Compare(a.Members(), b.Members())
}

// checkEvery is how many search steps pass between context checks.
const checkEvery = 1 << 10

// findCycles enumerates every elementary cycle. Each cycle is first found
// from its member that comes earliest in the input, and rotations or
// reorderings of one member set collapse to the first path discovered.
// It stops early with ctx's error once ctx is done.
func (g *graph[T]) findCycles(ctx context.Context) ([]Cycle, error) {
	s := &cycleSearch[T]{
		g:         g,
		ctx:       ctx,
		blocked:   make([]bool, len(g.nodes)),
		blockedBy: make([][]int, len(g.nodes)),
		seen:      make(map[string]bool),
	}
	for start := 1; start < len(g.nodes); start++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := start; i < len(g.nodes); i++ {
			s.blocked[i] = false
			s.blockedBy[i] = s.blockedBy[i][:0]
		}
		s.start = start
		s.circuit(start)
		if s.err != nil {
			return nil, s.err
		}
	}

	slices.SortStableFunc(s.cycles, compareCycles)
	return s.cycles, nil
}

// cycleSearch is Johnson's circuit search. From each start node it only
// visits nodes with a higher arena index, so every cycle is reported from
// its lowest-index member. A node stays blocked until a cycle is found
// through one of its successors, which bounds the work per cycle found.
type cycleSearch[T any] struct {
	g     *graph[T]
	ctx   context.Context
	start int
	path  []int

	blocked   []bool
	blockedBy [][]int // blockedBy[w] lists nodes to unblock when w unblocks

	seen   map[string]bool
	cycles []Cycle
	steps  int
	err    error
}

// circuit extends the current path with v and reports whether any cycle
// back to the start was found below it.
func (s *cycleSearch[T]) circuit(v int) bool {
	s.steps++
	if s.steps%checkEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return false
		}
	}

	found := false
	s.path = append(s.path, v)
	s.blocked[v] = true
	refs := s.g.nodes[v].refs
	for _, w := range refs {
		if s.err != nil {
			break
		}
		switch {
		case w < s.start:
		case w == s.start:
			s.record()
			found = true
		case !s.blocked[w]:
			if s.circuit(w) {
				found = true
			}
		}
	}

	if found {
		s.unblock(v)
	} else {
		for _, w := range refs {
			if w > s.start && !slices.Contains(s.blockedBy[w], v) {
				s.blockedBy[w] = append(s.blockedBy[w], v)
			}
		}
	}
	s.path = s.path[:len(s.path)-1]
	return found
}

func (s *cycleSearch[T]) unblock(u int) {
	s.blocked[u] = false
	for len(s.blockedBy[u]) > 0 {
		last := len(s.blockedBy[u]) - 1
		w := s.blockedBy[u][last]
		s.blockedBy[u] = s.blockedBy[u][:last]
		if s.blocked[w] {
			s.unblock(w)
		}
	}
}

// record adds the current path as a cycle unless its member set was
// already reported.
func (s *cycleSearch[T]) record() {
	path := make([]string, len(s.path))
	for i, n := range s.path {
		path[i] = s.g.nodes[n].name
	}
	c := newCycle(path)
	k := c.key()
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.cycles = append(s.cycles, c)
}
