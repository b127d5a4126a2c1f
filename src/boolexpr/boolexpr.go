package boolexpr

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type Operator int

const (
	VARIABLE Operator = iota
	CONSTANT
	NOT
	AND
	OR
	XOR
	XNOR
	NAND
	NOR
)

func (o Operator) String() string {
	switch o {
	case VARIABLE:
		return "VARIABLE"
	case CONSTANT:
		return "CONSTANT"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case XNOR:
		return "XNOR"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// IsBinary reports whether the operator takes a left and a right operand.
func (o Operator) IsBinary() bool {
	switch o {
	case AND, OR, XOR, XNOR, NAND, NOR:
		return true
	}
	return false
}

// IsLeaf reports whether nodes with this operator have no children.
func (o Operator) IsLeaf() bool {
	return o == VARIABLE || o == CONSTANT
}

// Node is one position in a parsed expression. Which fields are set depends
// on Operator:
//
//	VARIABLE: Name
//	CONSTANT: Value
//	NOT:      Left
//	binary:   Left and Right
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	Name  string
	Value bool

	// 1-based column of the token that produced this node
	Column int
}

// New creates a new solvable boolean expression based on the given input string
// Example usage:
//
//	tree, err := boolexpr.New("A and (B or not C)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(tree.Solve(boolexpr.Assignment{"A": true, "B": false, "C": false})) // Output: true <nil>
func New(expression string) (*Node, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize expression '%s': %w", expression, err)
	}

	root, err := newParser(tokens).parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return root, nil
}

// Variables returns the sorted, deduplicated names of the variables referenced
// in the tree.
func (n *Node) Variables() []string {
	var names []string
	n.walk(func(node *Node) {
		if node.Operator == VARIABLE {
			names = append(names, node.Name)
		}
	})

	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

// Variables is the free-function form of Node.Variables.
func Variables(n *Node) []string {
	return n.Variables()
}

// InternalNodes counts the operator applications (NOT and binary gates) in the
// tree.
func (n *Node) InternalNodes() int {
	count := 0
	n.walk(func(node *Node) {
		if !node.Operator.IsLeaf() {
			count++
		}
	})
	return count
}

// walk visits every node in pre-order
func (n *Node) walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.walk(visit)
	n.Right.walk(visit)
}

// String renders the tree fully parenthesized with the same keywords the
// parser accepts, so New(n.String()) yields an equal tree (columns aside).
func (n *Node) String() string {
	switch {
	case n == nil:
		return "<nil>"
	case n.Operator == VARIABLE:
		return n.Name
	case n.Operator == CONSTANT:
		if n.Value {
			return "1"
		}
		return "0"
	case n.Operator == NOT:
		return "not " + n.Left.String()
	default:
		return fmt.Sprintf("(%s %s %s)", n.Left, keywordFor(n.Operator), n.Right)
	}
}
