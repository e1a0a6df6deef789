package layout

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"rosgraph/pkg/graph"
	"rosgraph/pkg/observability"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMaxNodesPerRow is the node cap per visual sub-row. Rows with
	// more members wrap into additional sub-rows.
	DefaultMaxNodesPerRow = 8

	// DefaultHorizontalGap is the fixed gap between neighboring nodes in
	// a sub-row, in pixels.
	DefaultHorizontalGap = 40.0

	// DefaultVerticalGap is the fixed gap between consecutive sub-rows,
	// in pixels.
	DefaultVerticalGap = 140.0
)

// =============================================================================
// Options
// =============================================================================

// Options tunes the layout engine. The zero value is usable: every field
// falls back to its default when unset.
type Options struct {
	// MaxNodesPerRow caps how many nodes share one visual sub-row.
	MaxNodesPerRow int

	// HorizontalGap is the spacing between nodes within a sub-row.
	HorizontalGap float64

	// VerticalGap is the spacing between consecutive sub-rows.
	VerticalGap float64

	// MaxPasses bounds the level-propagation fixed-point iteration.
	// When 0, the cap is max(2×nodeCount, 30). The cap exists so that
	// pathological inputs still terminate; on a correctly cycle-broken
	// graph it is never reached.
	MaxPasses int

	// Diagnostics receives advisory warnings (duplicate edge IDs,
	// propagation cap hits). When nil the process-wide default sink is
	// used, which deduplicates warnings across calls.
	Diagnostics *Diagnostics

	// Logger receives per-stage debug output. When nil, output is discarded.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.MaxNodesPerRow <= 0 {
		o.MaxNodesPerRow = DefaultMaxNodesPerRow
	}
	if o.HorizontalGap <= 0 {
		o.HorizontalGap = DefaultHorizontalGap
	}
	if o.VerticalGap <= 0 {
		o.VerticalGap = DefaultVerticalGap
	}
	if o.Diagnostics == nil {
		o.Diagnostics = defaultDiagnostics
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// =============================================================================
// Result
// =============================================================================

// Result is the output of a layout computation.
type Result struct {
	// Nodes are the surviving (post-filter) nodes in input order, each
	// with a Position attached.
	Nodes []graph.Node

	// Edges are the surviving edges in input order, deduplicated by ID,
	// each with render attributes attached.
	Edges []graph.Edge

	// Rows maps row index → node IDs in final (sorted) order. Row 0 is
	// the top of the diagram.
	Rows [][]string

	// BackEdges is the number of edges classified as cycle-closing and
	// excluded from level propagation (they remain in Edges).
	BackEdges int
}

// =============================================================================
// Entry Points
// =============================================================================

// Compute lays out a snapshot with default options. When hideInternal is
// true, nodes matching the internal/debug label patterns are removed
// together with their incident edges before layout.
//
// Compute is a pure function of its inputs: it never mutates g and is
// safe to call concurrently from independent call sites.
func Compute(g graph.Graph, hideInternal bool) Result {
	return ComputeWithOptions(g, hideInternal, Options{})
}

// ComputeWithOptions is Compute with explicit engine tuning.
func ComputeWithOptions(g graph.Graph, hideInternal bool, opts Options) Result {
	opts.setDefaults()

	start := time.Now()
	observability.Layout().OnComputeStart(context.Background(), g.NodeCount(), g.EdgeCount())

	nodes, edges := g.Nodes, g.Edges
	if hideInternal {
		nodes, edges = filterInternal(nodes, edges)
		opts.Logger.Debug("filtered internal nodes",
			"kept_nodes", len(nodes),
			"kept_edges", len(edges))
	}

	idx := buildIndex(nodes, edges)
	back := findBackEdges(idx)
	levels, converged := assignLevels(idx, edges, back, opts)
	rows := compactRows(idx, levels)
	sortRows(rows, idx)
	positioned := assignPositions(nodes, rows, idx, opts)
	finalized := finalizeEdges(edges, idx, opts.Diagnostics)

	if !converged {
		// Expected only on graphs that are still cyclic after back-edge
		// removal, which would mean the traversal missed an edge.
		opts.Diagnostics.WarnOnce("levels:cap",
			"level propagation hit the iteration cap; returning partial levels")
	}

	result := Result{
		Nodes:     positioned,
		Edges:     finalized,
		Rows:      rows,
		BackEdges: len(back),
	}

	opts.Logger.Debug("computed layout",
		"nodes", len(result.Nodes),
		"edges", len(result.Edges),
		"rows", len(result.Rows),
		"back_edges", result.BackEdges)
	observability.Layout().OnComputeComplete(context.Background(),
		len(result.Nodes), len(result.Rows), time.Since(start))

	return result
}
