package layout

import "rosgraph/pkg/graph"

// Render attributes attached to every surviving edge. The frontend draws
// edges as animated smoothstep curves; the engine only tags them.
const edgeRenderType = "smoothstep"

var edgeStyle = graph.EdgeStyle{Stroke: "#888", StrokeWidth: 2}

// finalizeEdges drops edges whose endpoints are missing from the node
// index (silently - a tolerated condition, not an error), deduplicates
// the rest by ID (first occurrence wins), and attaches display
// attributes to the survivors. A duplicate ID triggers a one-time
// advisory warning through the diagnostics sink - once per offending ID
// for the sink's lifetime, not once per occurrence - and never
// interrupts the computation.
//
// Positions are unaffected: this stage runs last and only shapes the
// edge array.
func finalizeEdges(edges []graph.Edge, idx *index, diag *Diagnostics) []graph.Edge {
	seen := make(map[string]bool, len(edges))
	out := make([]graph.Edge, 0, len(edges))

	for _, e := range edges {
		if !idx.valid(e) {
			continue
		}
		if seen[e.ID] {
			diag.WarnOnce("dup-edge:"+e.ID, "duplicate edge id %q; keeping first occurrence", e.ID)
			continue
		}
		seen[e.ID] = true

		style := edgeStyle
		e.Animated = true
		e.Style = &style
		e.RenderType = edgeRenderType
		out = append(out, e)
	}

	return out
}
