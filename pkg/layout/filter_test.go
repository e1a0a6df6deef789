package layout

import (
	"testing"

	"rosgraph/pkg/graph"
)

func TestIsInternalLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"/rosout", true},
		{"/parameter_events", true},
		{"/rqt_gui_py_node_1234", true},
		{"/rviz2", true},
		{"/ros2cli_daemon_42", true},
		{"/transform_listener_impl_55ccf3", true},
		{"/_internal_helper", true},
		{"_hidden", true},
		{"/camera/driver_debug", true},
		{"/ns/_private/topic", true},
		{"/talker", false},
		{"/camera/image_raw", false},
		{"/clock", false},
		{"/debugger", false}, // "_debug" suffix only, not substring
	}

	for _, tt := range tests {
		if got := IsInternalLabel(tt.label); got != tt.want {
			t.Errorf("IsInternalLabel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestFilterInternalRemovesIncidentEdges(t *testing.T) {
	nodes := []graph.Node{
		{ID: "node-/talker", Type: graph.TypeNode, Data: graph.NodeData{Label: "/talker"}},
		{ID: "topic-/rosout", Type: graph.TypeTopic, Data: graph.NodeData{Label: "/rosout"}},
		{ID: "topic-/chatter", Type: graph.TypeTopic, Data: graph.NodeData{Label: "/chatter"}},
	}
	edges := []graph.Edge{
		{ID: "e1", Source: "node-/talker", Target: "topic-/rosout"},
		{ID: "e2", Source: "node-/talker", Target: "topic-/chatter"},
	}

	keptNodes, keptEdges := filterInternal(nodes, edges)

	if len(keptNodes) != 2 {
		t.Fatalf("kept %d nodes, want 2", len(keptNodes))
	}
	if len(keptEdges) != 1 || keptEdges[0].ID != "e2" {
		t.Errorf("kept edges = %v, want only e2", keptEdges)
	}
}

func TestFilterInternalMatchesByLabelNotID(t *testing.T) {
	// The ID looks internal but the label does not; the node must survive.
	nodes := []graph.Node{
		{ID: "node-/_weird_id", Type: graph.TypeNode, Data: graph.NodeData{Label: "/regular"}},
	}

	keptNodes, _ := filterInternal(nodes, nil)

	if len(keptNodes) != 1 {
		t.Errorf("kept %d nodes, want 1 (classification must use the label)", len(keptNodes))
	}
}

func TestFilterInternalKeepsUnlabeledNodes(t *testing.T) {
	// An empty label matches no pattern, even when the ID would.
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "node-/_secret", Type: graph.TypeNode},
		},
	}

	result := Compute(g, true)

	if len(result.Nodes) != 1 {
		t.Errorf("kept %d nodes, want 1 (unlabeled node must not be filtered by ID)", len(result.Nodes))
	}
}

func TestComputeWithoutFilterKeepsEverything(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "topic-/rosout", Type: graph.TypeTopic, Data: graph.NodeData{Label: "/rosout"}},
		},
	}

	result := Compute(g, false)

	if len(result.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1 (filter disabled)", len(result.Nodes))
	}
}
