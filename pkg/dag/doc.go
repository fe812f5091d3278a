// Package dag provides the directed dependency graph used by the
// constraint-solving layout managers.
//
// # Overview
//
// A form-style layout positions each control by attaching its edges to other
// controls or to the container. Those attachments induce a dependency graph:
// an edge A -> B records that A's geometry cannot be resolved until B's has
// been. This package provides the graph structure, cycle detection, and the
// topological resolution order the solver walks.
//
// # Basic Usage
//
// Create a graph with [New], register the participating controls with
// [Graph.AddNode], and record one edge per attachment with [Graph.AddEdge]:
//
//	g := dag.New()
//	g.AddNode("ok")
//	g.AddNode("cancel")
//	g.AddEdge("cancel", "ok") // cancel is placed relative to ok
//
// Call [Graph.Validate] to reject cyclic attachment sets before solving, and
// [Graph.TopoOrder] to obtain an order in which every control appears after
// everything it depends on.
//
// # Cycle Detection
//
// Two controls attached to each other (directly or through a chain) can never
// be resolved. [Graph.Validate] detects this with a depth-first search using
// white/gray/black coloring in O(N+E) time and returns [ErrCycle].
//
// # Determinism
//
// Node and edge insertion order is preserved, so [Graph.TopoOrder] is
// deterministic for a given construction sequence. Layout results must not
// vary between runs.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package dag
