package boolexpr

import (
	"fmt"
)

// SyntaxError is returned when an expression is malformed. Message says what
// was wrong, Column and Fragment say where.
type SyntaxError struct {
	Message  string
	Fragment string
	// 1-based, 0 when no position applies (e.g. empty input)
	Column int
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(message, fragment string, column int) error {
	return &SyntaxError{Message: message, Fragment: fragment, Column: column}
}

func (e SyntaxError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("syntax error: %s", e.Message)
	}
	if e.Fragment == "" {
		return fmt.Sprintf("syntax error at column %d: %s", e.Column, e.Message)
	}
	return fmt.Sprintf("syntax error at column %d near '%s': %s", e.Column, e.Fragment, e.Message)
}

// NoVariablesError is returned when an expression is well formed but does not
// reference any variable, so there is nothing to enumerate.
type NoVariablesError struct {
	Expression string
}

// NewNoVariablesError creates a new NoVariablesError for the given expression.
func NewNoVariablesError(expression string) error {
	return &NoVariablesError{Expression: expression}
}

func (e NoVariablesError) Error() string {
	if e.Expression == "" {
		return "expression contains no variables, use at least one of A-Z"
	}
	return fmt.Sprintf("expression '%s' contains no variables, use at least one of A-Z", e.Expression)
}

// UnboundVariableError is returned when a variable in the tree has no value in
// the assignment it is solved against.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}
