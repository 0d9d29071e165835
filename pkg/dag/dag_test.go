package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New(nil)

	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(a) again = %v, want %v", err, ErrDuplicateNodeID)
	}

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(x->b) = %v, want %v", err, ErrUnknownSourceNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(a->x) = %v, want %v", err, ErrUnknownTargetNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a->b) = %v", err)
	}

	if g.OutDegree("a") != 1 || g.InDegree("b") != 1 {
		t.Errorf("degrees = out %d in %d, want 1 1", g.OutDegree("a"), g.InDegree("b"))
	}

	g.RemoveEdge("a", "b")
	if g.EdgeCount() != 0 || len(g.Children("a")) != 0 || len(g.Parents("b")) != 0 {
		t.Error("RemoveEdge() left edge behind")
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New(nil)
	want := []string{"zeta", "alpha", "mid"}
	for _, id := range want {
		_ = g.AddNode(Node{ID: id})
	}
	if got := NodeIDs(g.Nodes()); !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		want  error
	}{
		{"empty", nil, nil},
		{"chain", [][2]string{{"a", "b"}, {"b", "c"}}, nil},
		{"diamond", [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}, nil},
		{"self loop", [][2]string{{"a", "a"}}, ErrGraphHasCycle},
		{"triangle", [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, ErrGraphHasCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			for _, id := range []string{"a", "b", "c", "d"} {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				if err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
					t.Fatalf("AddEdge() = %v", err)
				}
			}
			if err := g.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSourcesAndSinks(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"app", "cli", "shared", "core"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "app", To: "shared"})
	_ = g.AddEdge(Edge{From: "cli", To: "shared"})
	_ = g.AddEdge(Edge{From: "shared", To: "core"})

	if got := NodeIDs(g.Sources()); !slices.Equal(got, []string{"app", "cli"}) {
		t.Errorf("Sources() = %v, want [app cli]", got)
	}
	if got := NodeIDs(g.Sinks()); !slices.Equal(got, []string{"core"}) {
		t.Errorf("Sinks() = %v, want [core]", got)
	}
}

type testItem struct {
	name string
	refs []string
}

func TestFromItems(t *testing.T) {
	items := []testItem{{"a", []string{"b"}}, {"b", nil}}
	g, err := FromItems(items,
		func(i testItem) string { return i.name },
		func(i testItem) []string { return i.refs },
	)
	if err != nil {
		t.Fatalf("FromItems() = %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}

	_, err = FromItems([]testItem{{"a", []string{"zzz"}}},
		func(i testItem) string { return i.name },
		func(i testItem) []string { return i.refs },
	)
	if !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("FromItems(dangling) = %v, want %v", err, ErrUnknownTargetNode)
	}
}

func TestMarkCycles(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "a"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})
	_ = g.AddEdge(Edge{From: "d", To: "d"})

	g.MarkCycles([][]string{{"a", "b"}, {"d"}, {"ghost"}})

	for id, want := range map[string]bool{"a": true, "b": true, "c": false, "d": true} {
		n, _ := g.Node(id)
		if n.InCycle() != want {
			t.Errorf("Node(%s).InCycle() = %v, want %v", id, n.InCycle(), want)
		}
	}
	for _, e := range g.Edges() {
		want := e.To != "c"
		if e.InCycle() != want {
			t.Errorf("Edge(%s->%s).InCycle() = %v, want %v", e.From, e.To, e.InCycle(), want)
		}
	}
}
