package layout

import (
	"strconv"
	"testing"

	"rosgraph/pkg/graph"
)

func nodesOf(ids ...string) []graph.Node {
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		typ := graph.TypeNode
		if i%2 == 1 {
			typ = graph.TypeTopic
		}
		nodes[i] = graph.Node{ID: id, Type: typ, Data: graph.NodeData{Label: id}}
	}
	return nodes
}

func edgesOf(pairs ...[2]string) []graph.Edge {
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{ID: p[0] + "-" + p[1], Source: p[0], Target: p[1]}
	}
	return edges
}

func TestFindBackEdgesNoCycle(t *testing.T) {
	idx := buildIndex(nodesOf("a", "b", "c"), edgesOf([2]string{"a", "b"}, [2]string{"b", "c"}))

	back := findBackEdges(idx)

	if len(back) != 0 {
		t.Errorf("found %d back edges, want 0", len(back))
	}
}

func TestFindBackEdgesSimpleCycle(t *testing.T) {
	idx := buildIndex(nodesOf("a", "b"), edgesOf([2]string{"a", "b"}, [2]string{"b", "a"}))

	back := findBackEdges(idx)

	if len(back) != 1 {
		t.Fatalf("found %d back edges, want 1", len(back))
	}
	if !back[backEdgeKey("b", "a")] {
		t.Errorf("back edges = %v, want b||a", back)
	}
}

func TestFindBackEdgesSelfLoop(t *testing.T) {
	idx := buildIndex(nodesOf("a"), edgesOf([2]string{"a", "a"}))

	back := findBackEdges(idx)

	if !back[backEdgeKey("a", "a")] {
		t.Errorf("back edges = %v, want a||a", back)
	}
}

func TestFindBackEdgesDiamondHasNone(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ /
	//   d
	idx := buildIndex(nodesOf("a", "b", "c", "d"), edgesOf(
		[2]string{"a", "b"},
		[2]string{"a", "c"},
		[2]string{"b", "d"},
		[2]string{"c", "d"},
	))

	back := findBackEdges(idx)

	if len(back) != 0 {
		t.Errorf("found %d back edges in a diamond, want 0", len(back))
	}
}

func TestFindBackEdgesDisconnectedComponents(t *testing.T) {
	// Two components, each with its own cycle.
	idx := buildIndex(nodesOf("a", "b", "c", "d"), edgesOf(
		[2]string{"a", "b"},
		[2]string{"b", "a"},
		[2]string{"c", "d"},
		[2]string{"d", "c"},
	))

	back := findBackEdges(idx)

	if len(back) != 2 {
		t.Errorf("found %d back edges, want 2 (one per component)", len(back))
	}
}

func TestFindBackEdgesDeterministic(t *testing.T) {
	nodes := nodesOf("a", "b", "c", "d", "e")
	edges := edgesOf(
		[2]string{"a", "b"},
		[2]string{"b", "c"},
		[2]string{"c", "a"},
		[2]string{"c", "d"},
		[2]string{"d", "e"},
		[2]string{"e", "c"},
	)

	first := findBackEdges(buildIndex(nodes, edges))
	for i := 0; i < 50; i++ {
		got := findBackEdges(buildIndex(nodes, edges))
		if len(got) != len(first) {
			t.Fatalf("run %d: %d back edges, want %d", i, len(got), len(first))
		}
		for k := range first {
			if !got[k] {
				t.Fatalf("run %d: missing back edge %s", i, k)
			}
		}
	}
}

func TestFindBackEdgesDeepChainNoOverflow(t *testing.T) {
	// A chain long enough to blow a recursive traversal's call stack.
	const n = 200000
	nodes := make([]graph.Node, n)
	edges := make([]graph.Edge, 0, n)
	prev := ""
	for i := 0; i < n; i++ {
		id := "n" + strconv.Itoa(i)
		typ := graph.TypeNode
		if i%2 == 1 {
			typ = graph.TypeTopic
		}
		nodes[i] = graph.Node{ID: id, Type: typ, Data: graph.NodeData{Label: id}}
		if prev != "" {
			edges = append(edges, graph.Edge{ID: prev + "-" + id, Source: prev, Target: id})
		}
		prev = id
	}
	// Close the whole chain into one giant cycle.
	edges = append(edges, graph.Edge{ID: "loop", Source: prev, Target: "n0"})

	back := findBackEdges(buildIndex(nodes, edges))

	if len(back) != 1 {
		t.Errorf("found %d back edges, want 1", len(back))
	}
}
