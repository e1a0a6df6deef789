package layout

// Traversal colors for back-edge detection.
const (
	white = iota // unvisited
	gray         // in progress (on the traversal stack)
	black        // finished
)

// backEdgeKey builds the map key for a back edge. Back edges are recorded
// per source/target pair: duplicate edges between the same pair are all
// excluded from propagation together.
func backEdgeKey(source, target string) string {
	return source + "||" + target
}

// frame is one entry of the explicit traversal stack: a node plus a
// cursor into its adjacency list.
type frame struct {
	id   string
	next int
}

// findBackEdges classifies edges with an iterative three-color depth-first
// traversal and returns the set of cycle-closing edges keyed by
// source||target. An edge to a gray (still open) node closes a cycle.
//
// The traversal starts from every node in input order so disconnected
// components are covered, and visits each node's adjacency list in edge
// input order, making the result deterministic for fixed inputs. The
// explicit frame stack keeps arbitrarily deep graphs from overflowing
// the call stack.
func findBackEdges(idx *index) map[string]bool {
	back := make(map[string]bool)
	color := make(map[string]int, len(idx.order))

	for _, root := range idx.order {
		if color[root] != white {
			continue
		}

		stack := []frame{{id: root}}
		color[root] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			targets := idx.adjacency[top.id]

			if top.next >= len(targets) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}

			child := targets[top.next]
			top.next++

			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				back[backEdgeKey(top.id, child)] = true
			}
		}
	}

	return back
}
