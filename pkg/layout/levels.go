package layout

import "rosgraph/pkg/graph"

// minValidLevel returns the smallest level ≥ floor with the correct
// parity for the node type: even for ros2Node, odd for topicNode. This
// is the parity invariant the whole layered layout rests on - the two
// kinds never share a level.
func minValidLevel(nodeType string, floor int) int {
	wantOdd := nodeType == graph.TypeTopic
	if (floor%2 == 1) == wantOdd {
		return floor
	}
	return floor + 1
}

// assignLevels computes a level for every indexed node by fixed-point
// iteration: each node starts at its type's minimal level (0 for
// ros2Node, 1 for topicNode) and every non-back edge A→B repeatedly
// raises level(B) to minValidLevel(type(B), level(A)+1) until a full
// pass changes nothing.
//
// A node whose only predecessors were filtered out keeps its type
// minimum; nothing ever pulls a node below it. Back edges are skipped,
// so propagation runs on a DAG and converges; the pass cap
// (max(2×nodeCount, 30), overridable via Options.MaxPasses) only guards
// against pathological inputs. The second return value reports whether
// the fixed point was reached within the cap.
func assignLevels(idx *index, edges []graph.Edge, back map[string]bool, opts Options) (map[string]int, bool) {
	levels := make(map[string]int, len(idx.order))
	for _, id := range idx.order {
		levels[id] = minValidLevel(idx.nodes[id].Type, 0)
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = 2 * len(idx.order)
		if maxPasses < 30 {
			maxPasses = 30
		}
	}

	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, e := range edges {
			if !idx.valid(e) || back[backEdgeKey(e.Source, e.Target)] {
				continue
			}
			needed := minValidLevel(idx.nodes[e.Target].Type, levels[e.Source]+1)
			if levels[e.Target] < needed {
				levels[e.Target] = needed
				changed = true
			}
		}
		if !changed {
			return levels, true
		}
	}

	return levels, false
}
