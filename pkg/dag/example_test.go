package dag_test

import (
	"fmt"

	"github.com/matzehuels/sash/pkg/dag"
)

func ExampleGraph_basic() {
	// A row of buttons: cancel is placed relative to ok, help relative to cancel.
	g := dag.New()
	_ = g.AddNode("ok")
	_ = g.AddNode("cancel")
	_ = g.AddNode("help")
	_ = g.AddEdge("cancel", "ok")
	_ = g.AddEdge("help", "cancel")

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Valid: true
}

func ExampleGraph_TopoOrder() {
	// help depends on cancel, cancel depends on ok: ok resolves first.
	g := dag.New()
	_ = g.AddNode("help")
	_ = g.AddNode("cancel")
	_ = g.AddNode("ok")
	_ = g.AddEdge("help", "cancel")
	_ = g.AddEdge("cancel", "ok")

	order, _ := g.TopoOrder()
	fmt.Println("Order:", order)
	// Output:
	// Order: [ok cancel help]
}

func ExampleGraph_Validate_cycle() {
	// Two controls attached to each other cannot be resolved.
	g := dag.New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "a")

	fmt.Println("Error:", g.Validate())
	// Output:
	// Error: graph contains a cycle
}
