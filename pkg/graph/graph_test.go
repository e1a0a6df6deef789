package graph

import (
	"bytes"
	"path/filepath"
	"testing"
)

func testGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: "node-/talker", Type: TypeNode, Data: NodeData{Label: "/talker", Namespace: ""}},
			{ID: "topic-/chatter", Type: TypeTopic, Data: NodeData{
				Label:           "/chatter",
				MessageType:     "std_msgs/msg/String",
				PublisherCount:  1,
				SubscriberCount: 1,
			}},
			{ID: "node-/listener", Type: TypeNode, Data: NodeData{Label: "/listener"}},
		},
		Edges: []Edge{
			{ID: "node-/talker-topic-/chatter-pub", Source: "node-/talker", Target: "topic-/chatter", Data: EdgeData{Type: EdgePublisher}},
			{ID: "topic-/chatter-node-/listener-sub", Source: "topic-/chatter", Target: "node-/listener", Data: EdgeData{Type: EdgeSubscriber}},
		},
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	g := testGraph()

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}

	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error = %v", err)
	}

	if got.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", got.NodeCount())
	}
	if got.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got.EdgeCount())
	}
	if got.Nodes[1].Data.MessageType != "std_msgs/msg/String" {
		t.Errorf("MessageType = %q, want std_msgs/msg/String", got.Nodes[1].Data.MessageType)
	}
	if got.Edges[0].Data.Type != EdgePublisher {
		t.Errorf("edge type = %q, want %q", got.Edges[0].Data.Type, EdgePublisher)
	}
}

func TestMarshalOmitsUnsetRenderFields(t *testing.T) {
	g := testGraph()

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}

	// Raw snapshots must not carry layout or render output fields.
	for _, field := range []string{"position", "animated", "style", "renderType"} {
		if bytes.Contains(data, []byte(`"`+field+`"`)) {
			t.Errorf("raw snapshot JSON contains %q", field)
		}
	}
}

func TestReadWriteGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(testGraph(), path); err != nil {
		t.Fatalf("WriteGraphFile() error = %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error = %v", err)
	}
	if got.NodeCount() != 3 || got.EdgeCount() != 2 {
		t.Errorf("round-trip = %d nodes / %d edges, want 3 / 2", got.NodeCount(), got.EdgeCount())
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ReadGraphFile() on missing file returned nil error")
	}
}

func TestHashStableAndSensitive(t *testing.T) {
	a := testGraph()
	b := testGraph()

	if a.Hash() != b.Hash() {
		t.Error("identical graphs produced different hashes")
	}

	b.Nodes[0].Data.Label = "/talker2"
	if a.Hash() == b.Hash() {
		t.Error("modified graph produced the same hash")
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "topic-/chatter", Data: NodeData{Label: "/chatter"}}
	if got := n.DisplayLabel(); got != "/chatter" {
		t.Errorf("DisplayLabel() = %q, want /chatter", got)
	}

	n.Data.Label = ""
	if got := n.DisplayLabel(); got != "topic-/chatter" {
		t.Errorf("DisplayLabel() = %q, want topic-/chatter", got)
	}
}
