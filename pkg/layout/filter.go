package layout

import (
	"strings"

	"rosgraph/pkg/graph"
)

// Label patterns that mark a node or topic as ROS-internal tooling noise.
// Classification is by label only, never by ID.
var (
	// internalPrefixes match introspection and GUI helper nodes that
	// appear in every live system but carry no application meaning.
	internalPrefixes = []string{
		"/_",
		"/rqt_",
		"/rviz",
		"/ros2cli_",
		"/transform_listener_impl",
	}

	// internalLabels are well-known infrastructure topics.
	internalLabels = map[string]bool{
		"/rosout":           true,
		"/parameter_events": true,
	}
)

// internalSuffix marks nodes that explicitly advertise themselves as
// debug-only.
const internalSuffix = "_debug"

// IsInternalLabel reports whether a display label identifies an internal
// or debug-only participant: a well-known infrastructure topic, a name
// under an internal namespace prefix, a name ending in the debug suffix,
// or any path segment starting with an underscore.
func IsInternalLabel(label string) bool {
	if internalLabels[label] {
		return true
	}
	if strings.HasPrefix(label, "_") || strings.HasSuffix(label, internalSuffix) {
		return true
	}
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	for _, segment := range strings.Split(label, "/") {
		if strings.HasPrefix(segment, "_") {
			return true
		}
	}
	return false
}

// filterInternal removes internal nodes and every edge touching one.
// Inputs are not mutated; surviving entries keep their input order.
func filterInternal(nodes []graph.Node, edges []graph.Edge) ([]graph.Node, []graph.Edge) {
	removed := make(map[string]bool)
	keptNodes := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		// Classify strictly by label. An empty label matches no pattern,
		// even when the ID looks internal.
		if IsInternalLabel(n.Data.Label) {
			removed[n.ID] = true
			continue
		}
		keptNodes = append(keptNodes, n)
	}

	keptEdges := make([]graph.Edge, 0, len(edges))
	for _, e := range edges {
		if removed[e.Source] || removed[e.Target] {
			continue
		}
		keptEdges = append(keptEdges, e)
	}

	return keptNodes, keptEdges
}
