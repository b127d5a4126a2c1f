package circuit

import (
	"fmt"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
)

// builder assigns node IDs in the order the tree walk creates them. Leaves are
// shared per name, gates never are: each tree position gets its own gate.
type builder struct {
	graph  *Graph
	leaves map[string]int
}

// Build converts an expression tree into a circuit graph with one gate per
// operator application and a single OUTPUT sink fed by the root.
func Build(root *boolexpr.Node) (*Graph, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot build a circuit from an empty tree")
	}

	b := &builder{
		graph:  &Graph{},
		leaves: make(map[string]int),
	}

	rootID, err := b.visit(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build circuit for '%s': %w", root, err)
	}

	b.graph.Output = b.addNode(OutputLabel, Output, boolexpr.VARIABLE)
	b.connect(rootID, b.graph.Output, 0)

	return b.graph, nil
}

func (b *builder) visit(n *boolexpr.Node) (int, error) {
	switch {
	case n.Operator == boolexpr.VARIABLE:
		return b.leaf(n.Name, n.Operator), nil

	case n.Operator == boolexpr.CONSTANT:
		return b.leaf(n.String(), n.Operator), nil

	case n.Operator == boolexpr.NOT:
		if n.Left == nil {
			return 0, fmt.Errorf("NOT at column %d has no operand", n.Column)
		}
		operand, err := b.visit(n.Left)
		if err != nil {
			return 0, err
		}
		id := b.addNode(n.Operator.String(), Gate, n.Operator)
		b.connect(operand, id, 0)
		return id, nil

	case n.Operator.IsBinary():
		if n.Left == nil || n.Right == nil {
			return 0, fmt.Errorf("%s at column %d is missing an operand", n.Operator, n.Column)
		}
		left, err := b.visit(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := b.visit(n.Right)
		if err != nil {
			return 0, err
		}
		id := b.addNode(n.Operator.String(), Gate, n.Operator)
		b.connect(left, id, 0)
		b.connect(right, id, 1)
		return id, nil

	default:
		return 0, fmt.Errorf("unknown operator: %v", n.Operator)
	}
}

func (b *builder) leaf(label string, op boolexpr.Operator) int {
	if id, ok := b.leaves[label]; ok {
		return id
	}
	id := b.addNode(label, Input, op)
	b.leaves[label] = id
	return id
}

func (b *builder) addNode(label string, kind NodeKind, op boolexpr.Operator) int {
	id := len(b.graph.Nodes)
	shape := Circle
	if kind == Gate {
		shape = ShapeOf(op)
	}

	b.graph.Nodes = append(b.graph.Nodes, Node{
		ID:       id,
		Label:    label,
		Kind:     kind,
		Shape:    shape,
		Operator: op,
	})
	return id
}

func (b *builder) connect(from, to, port int) {
	b.graph.Edges = append(b.graph.Edges, Edge{From: from, To: to, Port: port})
}
