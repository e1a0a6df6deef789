// Package layout computes a deterministic layered 2D layout for ROS 2
// computation graphs.
//
// The input is a plain snapshot (node list + edge list, possibly cyclic);
// the output is the same nodes with positions attached and the same edges
// with render attributes attached. ros2Node entries are placed on even
// levels, topicNode entries on odd levels, so rows strictly alternate
// between participants and topics.
//
// # Pipeline
//
// Compute runs a single forward pass through eight stages, each depending
// only on the previous one:
//
//  1. Filter internal/debug nodes by label pattern (optional)
//  2. Build a node index and forward adjacency list
//  3. Find back edges with an iterative depth-first traversal
//  4. Propagate parity-constrained levels to a fixed point
//  5. Compact sparse levels into consecutive rows
//  6. Sort each row by descending degree, ties by label
//  7. Assign centered x/y positions, wrapping wide rows into sub-rows
//  8. Deduplicate edges by ID and attach display attributes
//
// # Determinism
//
// For a fixed node order, edge order, and filter flag the output is
// bit-identical across invocations: every stage iterates input slices,
// never map keys.
//
// # Tolerant Inputs
//
// The engine never fails. Edges referencing missing nodes are dropped
// silently, duplicate edge IDs keep their first occurrence (with a
// one-time advisory warning per ID), an empty snapshot yields an empty
// result, and cycles are broken for propagation while every edge is
// retained for rendering.
package layout
