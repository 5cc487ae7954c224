// Package dag holds the task dependency graph. Edges are explicit: the plan
// builder links stages by construction rather than by string-matching path
// conventions, and a verification pass re-checks the path contract afterwards.
package dag

import (
	"fmt"
	"sort"

	"github.com/methylgrid/methylgrid/internal/task"
)

// Graph is a directed acyclic graph of task nodes. It is built once,
// single-threaded, and read-only afterwards.
type Graph struct {
	nodes map[string]*node
}

// node is a single vertex. Un-exported to force interaction through string
// IDs, matching how the plan file and logs refer to tasks.
type node struct {
	id         string
	spec       *task.Spec
	deps       map[string]*node
	dependents map[string]*node
}

// New creates an initialized, empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddNode adds a task node keyed by its spec ID. Adding a second spec under
// an existing ID is an error: task identities must be unique.
func (g *Graph) AddNode(spec *task.Spec) error {
	if _, ok := g.nodes[spec.ID]; ok {
		return fmt.Errorf("duplicate task node: %s", spec.ID)
	}
	g.nodes[spec.ID] = &node{
		id:         spec.ID,
		spec:       spec,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	return nil
}

// AddEdge creates a directed edge from fromID to toID, meaning toID depends
// on fromID. Both nodes must exist; self-references are rejected.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}
	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}
	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Spec returns the task spec for an ID, or nil.
func (g *Graph) Spec(id string) *task.Spec {
	if n, ok := g.nodes[id]; ok {
		return n.spec
	}
	return nil
}

// IDs returns every node ID in sorted order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Specs returns every task spec, ordered by node ID.
func (g *Graph) Specs() []*task.Spec {
	specs := make([]*task.Spec, 0, len(g.nodes))
	for _, id := range g.IDs() {
		specs = append(specs, g.nodes[id].spec)
	}
	return specs
}

// Dependencies returns the sorted IDs the given node depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.deps), nil
}

// Dependents returns the sorted IDs that depend on the given node.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.dependents), nil
}

// DetectCycles checks the graph for cycles. The external engine assumes
// acyclicity, so the check runs on every build.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search with three node states:
	// permanent: fully visited, known not to be part of a cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("cycle detected involving node '%s'", n.id)
		}
		temporary[n.id] = true
		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range g.IDs() {
		if !permanent[id] {
			if err := visit(g.nodes[id]); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
