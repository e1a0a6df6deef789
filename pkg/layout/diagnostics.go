package layout

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Diagnostics is an advisory warning sink with per-key deduplication.
// The engine reports tolerated input defects (duplicate edge IDs,
// propagation cap hits) through it; each key warns at most once for the
// lifetime of the sink, so a polling caller does not repeat the same
// warning twice a second.
//
// Diagnostics output never affects the returned layout - it exists for
// operator visibility only. A Diagnostics value is safe for concurrent
// use.
type Diagnostics struct {
	mu     sync.Mutex
	logger *log.Logger
	seen   map[string]bool
}

// NewDiagnostics creates a sink writing through the given logger.
// A nil logger falls back to log.Default().
func NewDiagnostics(logger *log.Logger) *Diagnostics {
	if logger == nil {
		logger = log.Default()
	}
	return &Diagnostics{
		logger: logger,
		seen:   make(map[string]bool),
	}
}

// WarnOnce logs the formatted message the first time key is seen and
// drops every later call with the same key.
func (d *Diagnostics) WarnOnce(key, format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.logger.Warnf(format, args...)
}

// defaultDiagnostics is the process-wide sink used when Options leaves
// Diagnostics nil, preserving warn-once behavior across independent
// Compute calls.
var defaultDiagnostics = NewDiagnostics(nil)
