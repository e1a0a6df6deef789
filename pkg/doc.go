// Package pkg provides the core libraries for rosgraph computation-graph
// visualization.
//
// # Overview
//
// rosgraph turns ROS 2 computation graphs (nodes publishing and
// subscribing to topics) into deterministic layered layouts and serves
// them to a browser frontend. The pkg directory is organized into:
//
//  1. [graph] - Serialization types for graph snapshots
//  2. [layout] - The deterministic layered layout engine
//  3. [source] - Graph sources (static, file-backed)
//  4. [render] - DOT conversion and SVG/PNG rendering
//  5. [errors] - Structured error codes and validation
//  6. [observability] - Optional instrumentation hooks
//  7. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through rosgraph:
//
//	Graph source (file, static)
//	         ↓
//	    [graph] package (snapshot types)
//	         ↓
//	    [layout] package (filter → levels → rows → positions)
//	         ↓
//	    JSON API / websocket push / SVG/PNG export
//
// # Quick Start
//
// Load a snapshot and compute a layout:
//
//	import (
//	    "rosgraph/pkg/graph"
//	    "rosgraph/pkg/layout"
//	)
//
//	g, _ := graph.ReadGraphFile("graph.json")
//	result := layout.Compute(g, true)
//	positioned := graph.Graph{Nodes: result.Nodes, Edges: result.Edges}
//	_ = graph.WriteGraphFile(positioned, "graph_layout.json")
package pkg
