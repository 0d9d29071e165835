package transform

import (
	"testing"

	"github.com/matzehuels/releaseorder/pkg/dag"
)

func graph(t *testing.T, ids []string, edges [][2]string) *dag.DAG {
	t.Helper()
	g := dag.New(nil)
	for _, id := range ids {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%s) = %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s->%s) = %v", e[0], e[1], err)
		}
	}
	return g
}

func TestTransitiveReduction(t *testing.T) {
	tests := []struct {
		name        string
		edges       [][2]string
		wantRemoved int
		wantEdges   int
	}{
		{
			name:        "chain with shortcut",
			edges:       [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
			wantRemoved: 1,
			wantEdges:   2,
		},
		{
			name:        "diamond with shortcut",
			edges:       [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"a", "d"}},
			wantRemoved: 1,
			wantEdges:   4,
		},
		{
			name:        "long shortcut",
			edges:       [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}, {"b", "d"}},
			wantRemoved: 2,
			wantEdges:   3,
		},
		{
			name:        "already reduced",
			edges:       [][2]string{{"a", "b"}, {"c", "d"}},
			wantRemoved: 0,
			wantEdges:   2,
		},
		{
			name:        "cyclic graph untouched",
			edges:       [][2]string{{"a", "b"}, {"b", "a"}, {"a", "c"}, {"b", "c"}},
			wantRemoved: 0,
			wantEdges:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph(t, []string{"a", "b", "c", "d"}, tt.edges)
			if got := TransitiveReduction(g); got != tt.wantRemoved {
				t.Errorf("TransitiveReduction() = %d, want %d", got, tt.wantRemoved)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
		})
	}
}

func TestTransitiveReduction_Empty(t *testing.T) {
	if got := TransitiveReduction(dag.New(nil)); got != 0 {
		t.Errorf("TransitiveReduction(empty) = %d, want 0", got)
	}
}
