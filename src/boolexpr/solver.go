package boolexpr

import (
	"fmt"
)

// Assignment binds variable names to truth values.
type Assignment map[string]bool

func (n *Node) Solve(assignment Assignment) (bool, error) {
	switch n.Operator {
	case VARIABLE:
		value, ok := assignment[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		return value, nil

	case CONSTANT:
		return n.Value, nil

	case NOT:
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	return apply(n.Operator, leftResult, rightResult)
}

// Evaluate is the free-function form of Node.Solve.
func Evaluate(n *Node, assignment Assignment) (bool, error) {
	return n.Solve(assignment)
}

func apply(op Operator, a, b bool) (bool, error) {
	switch op {
	case AND:
		return a && b, nil
	case OR:
		return a || b, nil
	case XOR:
		return a != b, nil
	case XNOR:
		return a == b, nil
	case NAND:
		return !(a && b), nil
	case NOR:
		return !(a || b), nil
	}
	return false, fmt.Errorf("unknown operator: %v", op)
}
