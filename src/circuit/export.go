package circuit

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func (k NodeKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// WriteYAML writes the node and edge lists.
func (g *Graph) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode circuit: %w", err)
	}
	return encoder.Close()
}

// DOT renders the graph in the Graphviz language, drawn left to right from
// the inputs to OUTPUT.
func (g *Graph) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph circuit {\n")
	sb.WriteString("  rankdir=LR;\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "  n%d [label=%q, shape=%s];\n", n.ID, n.Label, n.Shape)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "  n%d -> n%d;\n", e.From, e.To)
	}

	sb.WriteString("}\n")
	return sb.String()
}
