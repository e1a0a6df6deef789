package layout

import "rosgraph/pkg/graph"

// index holds the per-invocation lookup structures every later stage
// works from. It is built once from the filtered node and edge slices
// and never mutated afterwards.
type index struct {
	// nodes maps node ID → node for O(1) membership and type lookup.
	nodes map[string]*graph.Node

	// order lists node IDs in input order. Stages iterate this slice
	// instead of the nodes map so results stay deterministic.
	order []string

	// adjacency maps source ID → target IDs, in edge input order,
	// built only from edges whose endpoints both exist.
	adjacency map[string][]string

	// degree counts incident edges (in + out) per node over the
	// filtered edge set. Drives the within-row ordering.
	degree map[string]int
}

// buildIndex constructs the node index and forward adjacency list.
// Edges whose source or target is absent from the node set contribute
// neither adjacency nor propagation; this is a tolerated condition since
// upstream filtering can orphan edges.
func buildIndex(nodes []graph.Node, edges []graph.Edge) *index {
	idx := &index{
		nodes:     make(map[string]*graph.Node, len(nodes)),
		order:     make([]string, 0, len(nodes)),
		adjacency: make(map[string][]string),
		degree:    make(map[string]int, len(nodes)),
	}

	for i := range nodes {
		n := &nodes[i]
		idx.nodes[n.ID] = n
		idx.order = append(idx.order, n.ID)
	}

	for _, e := range edges {
		_, srcOK := idx.nodes[e.Source]
		_, dstOK := idx.nodes[e.Target]
		if srcOK {
			idx.degree[e.Source]++
		}
		if dstOK {
			idx.degree[e.Target]++
		}
		if srcOK && dstOK {
			idx.adjacency[e.Source] = append(idx.adjacency[e.Source], e.Target)
		}
	}

	return idx
}

// valid reports whether both edge endpoints exist in the node index.
func (idx *index) valid(e graph.Edge) bool {
	_, srcOK := idx.nodes[e.Source]
	_, dstOK := idx.nodes[e.Target]
	return srcOK && dstOK
}
