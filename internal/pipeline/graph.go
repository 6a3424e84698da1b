package pipeline

import (
	"context"
	"fmt"

	"github.com/dominikbraun/graph"
)

// NodeFunc is one workflow step operating on the shared state.
type NodeFunc func(ctx context.Context, st *State) error

// Workflow sequences named nodes along a directed acyclic graph. Execution
// order is the graph's topological order; there is no branching and no
// concurrency between nodes.
type Workflow struct {
	g     graph.Graph[string, string]
	nodes map[string]NodeFunc
	entry string
}

// NewWorkflow creates an empty workflow.
func NewWorkflow() *Workflow {
	return &Workflow{
		g:     graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
		nodes: make(map[string]NodeFunc),
	}
}

// AddNode registers a named node. Duplicate names are an error.
func (w *Workflow) AddNode(name string, fn NodeFunc) error {
	if fn == nil {
		return fmt.Errorf("node %q has no function", name)
	}
	if err := w.g.AddVertex(name); err != nil {
		return fmt.Errorf("add node %q: %w", name, err)
	}
	w.nodes[name] = fn
	return nil
}

// AddEdge connects two registered nodes. Edges that would create a cycle
// are rejected.
func (w *Workflow) AddEdge(from, to string) error {
	if err := w.g.AddEdge(from, to); err != nil {
		return fmt.Errorf("add edge %s -> %s: %w", from, to, err)
	}
	return nil
}

// SetEntry declares the entry node. It must already be registered and must
// end up first in execution order.
func (w *Workflow) SetEntry(name string) error {
	if _, ok := w.nodes[name]; !ok {
		return fmt.Errorf("entry node %q not registered", name)
	}
	w.entry = name
	return nil
}

// Run executes every node once, in topological order, stopping at the
// first error. The state is threaded through by reference.
func (w *Workflow) Run(ctx context.Context, st *State) error {
	if len(w.nodes) == 0 {
		return fmt.Errorf("workflow has no nodes")
	}

	order, err := graph.TopologicalSort(w.g)
	if err != nil {
		return fmt.Errorf("sort workflow: %w", err)
	}
	if w.entry != "" && order[0] != w.entry {
		return fmt.Errorf("entry node %q has predecessors", w.entry)
	}

	for _, name := range order {
		if err := w.nodes[name](ctx, st); err != nil {
			return fmt.Errorf("node %s: %w", name, err)
		}
	}
	return nil
}
