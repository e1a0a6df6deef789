package graph

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node types. These are the two kinds the layout engine alternates between:
// ros2Node occupies even levels, topicNode occupies odd levels.
const (
	TypeNode  = "ros2Node"
	TypeTopic = "topicNode"
)

// Edge semantic types. Informational only - the layout engine treats all
// edges the same way regardless of direction semantics.
const (
	EdgePublisher  = "publisher"
	EdgeSubscriber = "subscriber"
)

// NodeID returns the canonical node ID for a fully qualified node name.
func NodeID(name string) string { return "node-" + name }

// TopicID returns the canonical node ID for a topic name.
func TopicID(name string) string { return "topic-" + name }

// =============================================================================
// Graph - Snapshot Serialization
// =============================================================================

// Graph is the canonical serialization format for computation graph
// snapshots. Used for API responses, websocket pushes, file replay,
// and as the input to the layout engine.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes in the snapshot.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the snapshot.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Clone returns a deep copy of the graph. Positions and edge styles are
// copied, so mutations on the clone never reach the original.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		if n.Position != nil {
			p := *n.Position
			n.Position = &p
		}
		out.Nodes[i] = n
	}
	for i, e := range g.Edges {
		if e.Style != nil {
			s := *e.Style
			e.Style = &s
		}
		out.Edges[i] = e
	}
	return out
}

// =============================================================================
// Node
// =============================================================================

// Node is a vertex in the computation graph: either a ROS 2 node
// (TypeNode) or a topic (TypeTopic).
//
// Position is nil on raw snapshots and set by the layout engine. All
// other fields are immutable inputs.
type Node struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Position *Position `json:"position,omitempty"`
	Data     NodeData  `json:"data"`
}

// NodeData carries the kind-specific payload of a node.
// Namespace is populated for ros2Node entries; MessageType and the
// publisher/subscriber counts are populated for topicNode entries.
type NodeData struct {
	Label           string `json:"label"`
	Namespace       string `json:"namespace,omitempty"`
	MessageType     string `json:"messageType,omitempty"`
	PublisherCount  int    `json:"publisherCount,omitempty"`
	SubscriberCount int    `json:"subscriberCount,omitempty"`
}

// IsTopic reports whether the node represents a topic.
func (n *Node) IsTopic() bool { return n.Type == TypeTopic }

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Data.Label != "" {
		return n.Data.Label
	}
	return n.ID
}

// Position is a computed 2D placement. X is centered around 0 within a
// sub-row; Y grows strictly downward with row index.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a directed connection. Source and Target are node IDs; an edge
// whose endpoint is missing from the node set is tolerated and dropped
// during layout, not treated as an error.
//
// Animated, Style, and RenderType are display attributes attached by the
// layout pipeline's edge finalizer; they are absent on raw snapshots.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Data   EdgeData `json:"data,omitempty"`

	Animated   bool       `json:"animated,omitempty"`
	Style      *EdgeStyle `json:"style,omitempty"`
	RenderType string     `json:"renderType,omitempty"`
}

// EdgeData carries the semantic type of an edge ("publisher" or
// "subscriber"). Informational only.
type EdgeData struct {
	Type string `json:"type,omitempty"`
}

// EdgeStyle describes how the frontend should stroke an edge.
type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}
