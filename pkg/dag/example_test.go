package dag_test

import (
	"fmt"

	"github.com/matzehuels/releaseorder/pkg/dag"
)

func ExampleDAG_basic() {
	// app references lib, lib references core
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "lib"})
	_ = g.AddNode(dag.Node{ID: "core"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "lib"})
	_ = g.AddEdge(dag.Edge{From: "lib", To: "core"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Valid: true
}

func ExampleDAG_traversal() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "auth"})
	_ = g.AddNode(dag.Node{ID: "cache"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "auth"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "cache"})

	fmt.Println("Children of app:", g.Children("app"))
	fmt.Println("Parents of auth:", g.Parents("auth"))
	fmt.Println("Sinks:", dag.NodeIDs(g.Sinks()))
	// Output:
	// Children of app: [auth cache]
	// Parents of auth: [app]
	// Sinks: [auth cache]
}

func ExampleFromItems() {
	type module struct {
		Name string
		Deps []string
	}
	modules := []module{
		{Name: "openejb-core", Deps: []string{"openejb-api"}},
		{Name: "openejb-api"},
	}

	g, err := dag.FromItems(modules,
		func(m module) string { return m.Name },
		func(m module) []string { return m.Deps },
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dag.NodeIDs(g.Nodes()))
	fmt.Println(g.Children("openejb-core"))
	// Output:
	// [openejb-core openejb-api]
	// [openejb-api]
}
