// Package render converts graph snapshots to Graphviz DOT and renders
// them to SVG or PNG.
//
// Node kinds get distinct shapes: ROS 2 nodes appear as rounded boxes,
// topics as ellipses. The DOT output is suitable for offline inspection
// with standard Graphviz tooling; [RenderSVG] and [RenderPNG] render it
// in-process.
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(dot)
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"rosgraph/pkg/graph"
)

// Options configures DOT conversion.
type Options struct {
	// Detailed includes message types and pub/sub counts in topic labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a graph snapshot to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := n.DisplayLabel()
	if !detailed || !n.IsTopic() {
		return label
	}

	parts := []string{label}
	if n.Data.MessageType != "" {
		parts = append(parts, n.Data.MessageType)
	}
	parts = append(parts, fmt.Sprintf("pub: %d, sub: %d", n.Data.PublisherCount, n.Data.SubscriberCount))

	return strings.Join(parts, "\n")
}

func fmtAttrs(n graph.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsTopic() {
		attrs = append(attrs, "shape=ellipse", "style=filled", "fillcolor=lightyellow")
	} else {
		attrs = append(attrs, "shape=box", "style=\"rounded,filled\"", "fillcolor=lightblue")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, true)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, false)
}

func renderFormat(dot string, format graphviz.Format, normalize bool) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if normalize {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg header so the image scales
// from origin, which keeps browser embedding predictable.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
