package layout_test

import (
	"fmt"

	"rosgraph/pkg/graph"
	"rosgraph/pkg/layout"
)

// ExampleCompute lays out a minimal talker/listener system and prints
// the resulting row structure.
func ExampleCompute() {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "node-/talker", Type: graph.TypeNode, Data: graph.NodeData{Label: "/talker"}},
			{ID: "topic-/chatter", Type: graph.TypeTopic, Data: graph.NodeData{Label: "/chatter"}},
			{ID: "node-/listener", Type: graph.TypeNode, Data: graph.NodeData{Label: "/listener"}},
		},
		Edges: []graph.Edge{
			{ID: "pub", Source: "node-/talker", Target: "topic-/chatter"},
			{ID: "sub", Source: "topic-/chatter", Target: "node-/listener"},
		},
	}

	result := layout.Compute(g, false)

	for i, row := range result.Rows {
		fmt.Printf("row %d: %v\n", i, row)
	}
	// Output:
	// row 0: [node-/talker]
	// row 1: [topic-/chatter]
	// row 2: [node-/listener]
}
