// Package graph defines the serialization format for ROS 2 computation
// graph snapshots.
//
// A snapshot is a flat node list plus a flat edge list, exactly as the
// introspection backend reports it and as the rendering frontend consumes
// it. Nodes come in two kinds: ros2Node (a participant that publishes or
// subscribes) and topicNode (a named channel between participants). Edges
// point node→topic for publishers and topic→node for subscribers.
//
// The package is purely structural: it knows nothing about transport or
// layout. Positions are attached to nodes by pkg/layout; render attributes
// are attached to edges by the same pipeline.
//
// # Serialization
//
// Graphs round-trip through JSON with the field names the wire protocol
// uses (id, type, data.label, ...). Use [MarshalGraph]/[UnmarshalGraph]
// for in-memory data and [ReadGraphFile]/[WriteGraphFile] for files.
//
// # Change Detection
//
// [Graph.Hash] computes a content hash over the canonical JSON encoding.
// The websocket broadcaster uses it to push updates only when the live
// graph actually changed.
package graph
