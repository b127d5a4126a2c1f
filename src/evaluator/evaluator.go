package evaluator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/eriklarko/logic-evaluator/src/circuit"
	"github.com/eriklarko/logic-evaluator/src/config"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
)

type Evaluator struct {
	config    *config.Config
	generator *truthtable.Generator
}

func New(config *config.Config) *Evaluator {
	return &Evaluator{
		config:    config,
		generator: truthtable.NewGenerator(config.MaxVariables, config.Workers),
	}
}

// Evaluate runs the whole request for one expression: parse it, detect its
// variables, build the truth table and the circuit. The first failure aborts
// the request, nothing is returned partially.
func (e *Evaluator) Evaluate(ctx context.Context, expression string) (*Result, error) {
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	tree, err := boolexpr.New(expression)
	if err != nil {
		return nil, err
	}

	variables := tree.Variables()
	if len(variables) == 0 {
		return nil, boolexpr.NewNoVariablesError(expression)
	}
	slog.Debug("parsed expression", "expression", expression, "variables", variables, "gates", tree.InternalNodes())

	table, err := e.generator.Build(ctx, tree, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to build truth table for '%s': %w", expression, err)
	}
	table.Expression = expression

	graph, err := circuit.Build(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to build circuit for '%s': %w", expression, err)
	}

	return &Result{
		Expression: expression,
		Variables:  variables,
		Tree:       tree,
		Table:      table,
		Circuit:    graph,
	}, nil
}
