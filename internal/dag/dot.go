package dag

import (
	"fmt"
	"io"
)

// WriteDOT renders the graph in Graphviz DOT form, nodes and edges in
// sorted order so the output is diff-stable.
func (g *Graph) WriteDOT(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "digraph %q {\n  rankdir=LR;\n", name); err != nil {
		return err
	}
	for _, id := range g.IDs() {
		n := g.nodes[id]
		if _, err := fmt.Fprintf(w, "  %q [label=%q];\n", id, fmt.Sprintf("%s\\n%s", n.spec.Stage, scopeLabel(n))); err != nil {
			return err
		}
	}
	for _, id := range g.IDs() {
		deps, _ := g.Dependencies(id)
		for _, dep := range deps {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", dep, id); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func scopeLabel(n *node) string {
	switch {
	case n.spec.Sample != "" && n.spec.Genome != "":
		return n.spec.Sample + "/" + n.spec.Genome
	case n.spec.Sample != "":
		return n.spec.Sample
	case n.spec.Genome != "":
		return n.spec.Genome
	default:
		return n.id
	}
}
