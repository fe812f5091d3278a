package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrCycle is returned by [Graph.Validate] and [Graph.TopoOrder] when a
	// directed cycle is detected. A cyclic attachment set has no resolution
	// order. Cycles are detected using depth-first search with
	// white/gray/black coloring.
	ErrCycle = errors.New("graph contains a cycle")
)

// Edge represents a directed dependency between two nodes: From depends on
// To, meaning To must be resolved before From.
type Edge struct {
	From string // dependent node ID
	To   string // prerequisite node ID
}

// Graph is a directed graph of string-identified nodes recording dependency
// relationships between controls. It preserves insertion order so traversals
// are deterministic.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]struct{}
	order    []string // node IDs in insertion order
	edges    []Edge
	outgoing map[string][]string // nodeID -> prerequisite IDs
	incoming map[string][]string // nodeID -> dependent IDs
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode registers a node in the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge records that from depends on to.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist.
//
// AddEdge does not check for cycles - use Validate after building the graph.
// Multiple edges between the same pair are allowed (a control attached to the
// same target on two sides produces one edge per attachment).
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	return nil
}

// Nodes returns all node IDs in insertion order.
// The returned slice is a copy and can be freely modified.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Prerequisites returns the IDs this node depends on (its edge targets).
// Returns nil if the node has no dependencies or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Graph) Prerequisites(id string) []string { return g.outgoing[id] }

// Dependents returns the IDs that depend on this node.
// Returns nil if no node depends on it or it doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Graph) Dependents(id string) []string { return g.incoming[id] }

// Validate checks that the graph is acyclic and returns nil if so.
// Returns ErrCycle if any directed cycle exists. Use this before solving
// constraints that assume a resolvable dependency order.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (g *Graph) Validate() error {
	return g.detectCycles()
}

// TopoOrder returns the node IDs in dependency order: every node appears
// after all nodes it depends on, so a solver walking the slice front to back
// always sees prerequisites resolved first.
//
// Returns ErrCycle if the graph contains a cycle. The order is deterministic
// for a given construction sequence.
func (g *Graph) TopoOrder() ([]string, error) {
	if err := g.detectCycles(); err != nil {
		return nil, err
	}

	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	out := make([]string, 0, len(g.nodes))

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, prereq := range g.outgoing[id] {
			if color[prereq] == white {
				dfs(prereq)
			}
		}
		color[id] = black
		out = append(out, id)
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
		}
	}
	return out, nil
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, prereq := range g.outgoing[id] {
			switch color[prereq] {
			case white:
				dfs(prereq)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrCycle
			}
		}
	}
	return nil
}
