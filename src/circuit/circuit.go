package circuit

import (
	"fmt"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/samber/lo"
)

// OutputLabel is the label of the sink every graph ends in.
const OutputLabel = "OUTPUT"

// NodeKind classifies the nodes of a graph
type NodeKind int

const (
	Input  NodeKind = iota // variable or constant leaf
	Gate                   // one operator application
	Output                 // the single sink
)

func (k NodeKind) String() string {
	switch k {
	case Input:
		return "input"
	case Gate:
		return "gate"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Shape is the drawing category of a node.
type Shape string

const (
	Circle        Shape = "circle"
	Box           Shape = "box"
	Ellipse       Shape = "ellipse"
	Triangle      Shape = "triangle"
	Diamond       Shape = "diamond"
	Parallelogram Shape = "parallelogram"
)

// ShapeOf returns the shape used for gates of the given operator. Leaves and
// the output are circles.
func ShapeOf(op boolexpr.Operator) Shape {
	switch op {
	case boolexpr.AND, boolexpr.NAND:
		return Box
	case boolexpr.OR, boolexpr.NOR:
		return Ellipse
	case boolexpr.NOT:
		return Triangle
	case boolexpr.XOR:
		return Diamond
	case boolexpr.XNOR:
		return Parallelogram
	default:
		return Circle
	}
}

type Node struct {
	ID    int      `yaml:"id"`
	Label string   `yaml:"label"`
	Kind  NodeKind `yaml:"kind"`
	Shape Shape    `yaml:"shape"`

	// operator of a gate node, VARIABLE/CONSTANT for inputs and VARIABLE for
	// the output, which passes its single input through
	Operator boolexpr.Operator `yaml:"-"`
}

func (n Node) String() string {
	return fmt.Sprintf("%s#%d(%s)", n.Label, n.ID, n.Kind)
}

// Edge is a wire from one node into an input port of another. Port is 0 for
// the left (or only) operand and 1 for the right one, which keeps the two
// wires of "A nand A" distinct.
type Edge struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Port int `yaml:"port"`
}

// Graph is the gate hierarchy of an expression. Node IDs are indexes into
// Nodes.
type Graph struct {
	Nodes  []Node `yaml:"nodes"`
	Edges  []Edge `yaml:"edges"`
	Output int    `yaml:"output"`
}

// GateCount returns the number of gate nodes.
func (g *Graph) GateCount() int {
	return lo.CountBy(g.Nodes, func(n Node) bool {
		return n.Kind == Gate
	})
}

// Inputs returns the leaf nodes in creation order.
func (g *Graph) Inputs() []Node {
	return lo.Filter(g.Nodes, func(n Node, _ int) bool {
		return n.Kind == Input
	})
}

// InputsOf returns the edges feeding the given node, ordered by port.
func (g *Graph) InputsOf(id int) []Edge {
	edges := lo.Filter(g.Edges, func(e Edge, _ int) bool {
		return e.To == id
	})
	if len(edges) == 2 && edges[0].Port > edges[1].Port {
		edges[0], edges[1] = edges[1], edges[0]
	}
	return edges
}

// Validate checks that every edge connects existing nodes, that no edge is
// repeated and that exactly one output exists.
func (g *Graph) Validate() error {
	outputs := lo.Filter(g.Nodes, func(n Node, _ int) bool {
		return n.Kind == Output
	})
	if len(outputs) != 1 {
		return fmt.Errorf("expected exactly one output node, found %d", len(outputs))
	}
	if outputs[0].ID != g.Output {
		return fmt.Errorf("output node has id %d, graph points at %d", outputs[0].ID, g.Output)
	}

	for i, n := range g.Nodes {
		if n.ID != i {
			return fmt.Errorf("node %s is stored at index %d", n, i)
		}
	}

	seen := make(map[Edge]bool, len(g.Edges))
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= len(g.Nodes) || e.To < 0 || e.To >= len(g.Nodes) {
			return fmt.Errorf("dangling edge %d->%d", e.From, e.To)
		}
		if seen[e] {
			return fmt.Errorf("duplicate edge %d->%d on port %d", e.From, e.To, e.Port)
		}
		seen[e] = true
	}
	return nil
}
