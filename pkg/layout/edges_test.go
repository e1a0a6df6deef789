package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"rosgraph/pkg/graph"
)

func TestFinalizeEdgesDeduplicatesByID(t *testing.T) {
	nodes := nodesOf("a", "t", "b", "t2")
	edges := []graph.Edge{
		{ID: "e1", Source: "a", Target: "t", Data: graph.EdgeData{Type: graph.EdgePublisher}},
		{ID: "e1", Source: "a", Target: "t2"},
		{ID: "e2", Source: "t", Target: "b"},
	}

	out := finalizeEdges(edges, buildIndex(nodes, edges), NewDiagnostics(nil))

	if len(out) != 2 {
		t.Fatalf("got %d edges, want 2", len(out))
	}
	if out[0].ID != "e1" || out[0].Target != "t" {
		t.Errorf("first edge = %+v, want the first e1 occurrence", out[0])
	}
}

func TestFinalizeEdgesAttachesRenderAttributes(t *testing.T) {
	edges := []graph.Edge{{ID: "e1", Source: "a", Target: "t"}}
	out := finalizeEdges(edges, buildIndex(nodesOf("a", "t"), edges), NewDiagnostics(nil))

	e := out[0]
	if !e.Animated {
		t.Error("Animated = false, want true")
	}
	if e.RenderType != edgeRenderType {
		t.Errorf("RenderType = %q, want %q", e.RenderType, edgeRenderType)
	}
	if e.Style == nil || e.Style.Stroke == "" || e.Style.StrokeWidth <= 0 {
		t.Errorf("Style = %+v, want populated stroke style", e.Style)
	}
}

func TestFinalizeEdgesWarnsOncePerID(t *testing.T) {
	var buf bytes.Buffer
	diag := NewDiagnostics(log.New(&buf))
	edges := []graph.Edge{
		{ID: "dup", Source: "a", Target: "t"},
		{ID: "dup", Source: "a", Target: "t"},
		{ID: "dup", Source: "a", Target: "t"},
	}

	idx := buildIndex(nodesOf("a", "t"), edges)

	// Two calls against the same sink: the warning must fire exactly once.
	finalizeEdges(edges, idx, diag)
	finalizeEdges(edges, idx, diag)

	if got := strings.Count(buf.String(), "keeping first occurrence"); got != 1 {
		t.Errorf("warned %d times, want 1", got)
	}
}

func TestDiagnosticsWarnOnceDistinctKeys(t *testing.T) {
	var buf bytes.Buffer
	diag := NewDiagnostics(log.New(&buf))

	diag.WarnOnce("k1", "first %s", "warning")
	diag.WarnOnce("k2", "second %s", "warning")
	diag.WarnOnce("k1", "suppressed")

	out := buf.String()
	if !strings.Contains(out, "first warning") || !strings.Contains(out, "second warning") {
		t.Errorf("output missing expected warnings: %q", out)
	}
	if strings.Contains(out, "suppressed") {
		t.Errorf("duplicate key warned twice: %q", out)
	}
}
