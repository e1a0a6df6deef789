// Package source provides graph sources for the rosgraph server.
//
// A Source produces point-in-time snapshots of a computation graph. The
// server polls its configured source and pushes updates to connected
// clients whenever the snapshot changes.
//
// Two implementations are provided:
//   - Static: serves a fixed in-memory graph (tests, demos)
//   - File: re-reads a graph JSON file on every snapshot, so edits to
//     the file show up live in the UI
package source

import (
	"context"
	"time"

	"rosgraph/pkg/errors"
	"rosgraph/pkg/graph"
	"rosgraph/pkg/observability"
)

// Source produces graph snapshots.
type Source interface {
	// Name returns the source identifier for logging.
	Name() string

	// Snapshot returns the current graph. Implementations must return a
	// value the caller may retain; subsequent snapshots must not mutate
	// previously returned graphs.
	Snapshot(ctx context.Context) (graph.Graph, error)
}

// Static is a Source that always returns the same graph.
type Static struct {
	graph graph.Graph
}

// NewStatic creates a Static source from the given graph.
func NewStatic(g graph.Graph) *Static {
	return &Static{graph: g}
}

// Name implements Source.
func (s *Static) Name() string { return "static" }

// Snapshot implements Source.
func (s *Static) Snapshot(ctx context.Context) (graph.Graph, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		observability.Snapshot().OnSnapshot(ctx, 0, 0, time.Since(start), err)
		return graph.Graph{}, errors.Wrap(errors.ErrCodeTimeout, err, "snapshot cancelled")
	}

	g := s.graph.Clone()
	observability.Snapshot().OnSnapshot(ctx, len(g.Nodes), len(g.Edges), time.Since(start), nil)
	return g, nil
}

// File is a Source that reads a graph JSON file on every snapshot.
type File struct {
	path string
}

// NewFile creates a File source reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Name implements Source.
func (f *File) Name() string { return "file:" + f.path }

// Snapshot implements Source.
func (f *File) Snapshot(ctx context.Context) (graph.Graph, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		observability.Snapshot().OnSnapshot(ctx, 0, 0, time.Since(start), err)
		return graph.Graph{}, errors.Wrap(errors.ErrCodeTimeout, err, "snapshot cancelled")
	}

	g, err := graph.ReadGraphFile(f.path)
	if err != nil {
		observability.Snapshot().OnSnapshot(ctx, 0, 0, time.Since(start), err)
		return graph.Graph{}, errors.Wrap(errors.ErrCodeSourceUnavailable, err, "read graph file %s", f.path)
	}

	observability.Snapshot().OnSnapshot(ctx, len(g.Nodes), len(g.Edges), time.Since(start), nil)
	return g, nil
}
