// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about layout computations, snapshot
// polling, and websocket activity.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnComputeStart(ctx, nodeCount, edgeCount)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnComputeStart records the beginning of a layout computation.
	OnComputeStart(ctx context.Context, nodeCount, edgeCount int)

	// OnComputeComplete records a finished layout computation.
	OnComputeComplete(ctx context.Context, nodeCount, rowCount int, duration time.Duration)
}

// =============================================================================
// Snapshot Hooks
// =============================================================================

// SnapshotHooks receives events from graph snapshot acquisition.
type SnapshotHooks interface {
	// OnSnapshot records a snapshot fetch from a source.
	OnSnapshot(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)

	// OnChange records a detected change between consecutive snapshots.
	OnChange(ctx context.Context, hash string)
}

// =============================================================================
// Socket Hooks
// =============================================================================

// SocketHooks receives events from the websocket endpoint.
type SocketHooks interface {
	// OnConnect records a new websocket client.
	OnConnect(ctx context.Context, clientID string)

	// OnDisconnect records a departed websocket client.
	OnDisconnect(ctx context.Context, clientID string)

	// OnBroadcast records a graph update pushed to clients.
	OnBroadcast(ctx context.Context, clients int, bytes int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnComputeStart(context.Context, int, int)                    {}
func (NoopLayoutHooks) OnComputeComplete(context.Context, int, int, time.Duration) {}

// NoopSnapshotHooks is a no-op implementation of SnapshotHooks.
type NoopSnapshotHooks struct{}

func (NoopSnapshotHooks) OnSnapshot(context.Context, int, int, time.Duration, error) {}
func (NoopSnapshotHooks) OnChange(context.Context, string)                           {}

// NoopSocketHooks is a no-op implementation of SocketHooks.
type NoopSocketHooks struct{}

func (NoopSocketHooks) OnConnect(context.Context, string)      {}
func (NoopSocketHooks) OnDisconnect(context.Context, string)   {}
func (NoopSocketHooks) OnBroadcast(context.Context, int, int)  {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu            sync.RWMutex
	layoutHooks   LayoutHooks   = NoopLayoutHooks{}
	snapshotHooks SnapshotHooks = NoopSnapshotHooks{}
	socketHooks   SocketHooks   = NoopSocketHooks{}
)

// SetLayoutHooks registers layout hooks. Call at startup, before any
// computation runs.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopLayoutHooks{}
	}
	layoutHooks = h
}

// SetSnapshotHooks registers snapshot hooks.
func SetSnapshotHooks(h SnapshotHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopSnapshotHooks{}
	}
	snapshotHooks = h
}

// SetSocketHooks registers websocket hooks.
func SetSocketHooks(h SocketHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopSocketHooks{}
	}
	socketHooks = h
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Snapshot returns the registered snapshot hooks.
func Snapshot() SnapshotHooks {
	mu.RLock()
	defer mu.RUnlock()
	return snapshotHooks
}

// Socket returns the registered websocket hooks.
func Socket() SocketHooks {
	mu.RLock()
	defer mu.RUnlock()
	return socketHooks
}
