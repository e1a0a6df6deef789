package layout

import "rosgraph/pkg/graph"

// Box geometry. The frontend draws ros2Node boxes slightly larger and
// with a bigger font than topic boxes, so width estimation differs per
// type; both are clamped to the same maximum box size.
const (
	nodeMinWidth  = 180.0
	topicMinWidth = 150.0
	maxBoxWidth   = 320.0

	// Approximate rendered glyph widths for the two box fonts
	// (14px for node labels, 12px for topic labels).
	nodeCharWidth  = 8.5
	topicCharWidth = 7.0
)

// estimateWidth estimates a node's rendered width from its label length,
// clamped between the type-specific minimum and the shared maximum.
func estimateWidth(n *graph.Node) float64 {
	minWidth, charWidth := nodeMinWidth, nodeCharWidth
	if n.IsTopic() {
		minWidth, charWidth = topicMinWidth, topicCharWidth
	}

	w := float64(len(n.DisplayLabel())) * charWidth
	if w < minWidth {
		w = minWidth
	}
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	return w
}

// assignPositions lays out every row in ascending row order. Rows wider
// than Options.MaxNodesPerRow wrap into sub-rows; each sub-row is laid
// out left-to-right with a fixed gap and centered as a whole around x=0,
// and y advances by the fixed vertical gap per sub-row processed -
// across rows and across chunks within a row identically.
//
// The returned slice contains copies of the input nodes in input order
// with positions attached; the inputs are never mutated.
func assignPositions(nodes []graph.Node, rows [][]string, idx *index, opts Options) []graph.Node {
	positions := make(map[string]graph.Position, len(nodes))

	y := 0.0
	for _, row := range rows {
		for start := 0; start < len(row); start += opts.MaxNodesPerRow {
			end := start + opts.MaxNodesPerRow
			if end > len(row) {
				end = len(row)
			}
			chunk := row[start:end]

			widths := make([]float64, len(chunk))
			total := opts.HorizontalGap * float64(len(chunk)-1)
			for i, id := range chunk {
				widths[i] = estimateWidth(idx.nodes[id])
				total += widths[i]
			}

			x := -total / 2
			for i, id := range chunk {
				positions[id] = graph.Position{X: x, Y: y}
				x += widths[i] + opts.HorizontalGap
			}

			y += opts.VerticalGap
		}
	}

	out := make([]graph.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		if pos, ok := positions[n.ID]; ok {
			p := pos
			out[i].Position = &p
		}
	}
	return out
}
