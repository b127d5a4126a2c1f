package truthtable

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/samber/lo"
)

// DefaultMaxVariables caps tables at 2^20 rows unless configured otherwise.
const DefaultMaxVariables = 20

// MaxVariables is the hard ceiling on any generator's limit, one per variable
// name A-Z.
const MaxVariables = 26

// how many rows a worker evaluates between context checks
const cancellationCheckInterval = 1024

type Row struct {
	// 0/1 per variable, in Table.Variables order
	Inputs []int
	Output int
}

// Cells returns the inputs followed by the output.
func (r Row) Cells() []int {
	return append(append(make([]int, 0, len(r.Inputs)+1), r.Inputs...), r.Output)
}

type Table struct {
	// used as the header of the result column
	Expression string
	Variables  []string
	Rows       []Row
}

// Columns is the number of variables plus one for the result.
func (t *Table) Columns() int {
	return len(t.Variables) + 1
}

// Column returns the values of the named variable, or the result column when
// name is the table's expression.
func (t *Table) Column(name string) ([]int, error) {
	if name == t.Expression {
		return lo.Map(t.Rows, func(row Row, _ int) int { return row.Output }), nil
	}

	idx := lo.IndexOf(t.Variables, name)
	if idx < 0 {
		return nil, fmt.Errorf("no column named '%s'", name)
	}
	return lo.Map(t.Rows, func(row Row, _ int) int { return row.Inputs[idx] }), nil
}

type Generator struct {
	maxVariables int
	workers      int
}

// NewGenerator creates a generator refusing more than maxVariables variables
// and evaluating rows on up to workers goroutines. Non-positive values fall
// back to DefaultMaxVariables and a single worker, larger limits are clamped
// to MaxVariables.
func NewGenerator(maxVariables, workers int) *Generator {
	if maxVariables <= 0 {
		maxVariables = DefaultMaxVariables
	}
	maxVariables = min(maxVariables, MaxVariables)
	if workers <= 0 {
		workers = 1
	}
	return &Generator{
		maxVariables: maxVariables,
		workers:      workers,
	}
}

// Build creates the truth table of node over variables using a sequential
// generator with the default variable limit.
func Build(node *boolexpr.Node, variables []string) (*Table, error) {
	return NewGenerator(DefaultMaxVariables, 1).Build(context.Background(), node, variables)
}

// Build evaluates node for every assignment of variables, counting in binary
// with the first variable as the most significant bit. Any evaluation failure
// aborts the whole table.
func (g *Generator) Build(ctx context.Context, node *boolexpr.Node, variables []string) (*Table, error) {
	if err := g.validate(node, variables); err != nil {
		return nil, err
	}

	n := len(variables)
	table := &Table{
		Expression: node.String(),
		Variables:  append([]string(nil), variables...),
		Rows:       make([]Row, 1<<n),
	}

	workers := min(g.workers, len(table.Rows))
	slog.Debug("building truth table", "variables", n, "rows", len(table.Rows), "workers", workers)

	if workers == 1 {
		if err := fillRows(ctx, node, table, 0, len(table.Rows)); err != nil {
			return nil, err
		}
		return table, nil
	}

	// every row is a pure function of its index, so workers write disjoint
	// chunks of the same slice
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	chunkSize := (len(table.Rows) + workers - 1) / workers
	for start := 0; start < len(table.Rows); start += chunkSize {
		end := min(start+chunkSize, len(table.Rows))
		wg.Add(1)

		go func(start, end int) {
			defer wg.Done()

			if err := fillRows(ctx, node, table, start, end); err != nil {
				errCh <- fmt.Errorf("failed to evaluate rows %d-%d: %w", start, end-1, err)
			}
		}(start, end)
	}
	wg.Wait()
	close(errCh)

	if err, ok := <-errCh; ok {
		return nil, err
	}
	return table, nil
}

func (g *Generator) validate(node *boolexpr.Node, variables []string) error {
	if len(variables) == 0 {
		return boolexpr.NewNoVariablesError(node.String())
	}
	if len(variables) > g.maxVariables {
		return NewTooManyVariablesError(len(variables), g.maxVariables)
	}
	if dupes := lo.FindDuplicates(variables); len(dupes) > 0 {
		return fmt.Errorf("duplicate variables: %s", strings.Join(dupes, ", "))
	}

	// checked once here so a missing variable is reported before any row is
	// evaluated
	for _, name := range node.Variables() {
		if !lo.Contains(variables, name) {
			return fmt.Errorf("variable list %v does not cover the expression: %w", variables, boolexpr.NewUnboundVariableError(name))
		}
	}
	return nil
}

func fillRows(ctx context.Context, node *boolexpr.Node, table *Table, start, end int) error {
	n := len(table.Variables)
	assignment := make(boolexpr.Assignment, n)

	for i := start; i < end; i++ {
		if (i-start)%cancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("truth table generation stopped: %w", err)
			}
		}

		inputs := make([]int, n)
		for j, name := range table.Variables {
			bit := (i >> (n - 1 - j)) & 1
			inputs[j] = bit
			assignment[name] = bit == 1
		}

		result, err := node.Solve(assignment)
		if err != nil {
			return fmt.Errorf("failed to evaluate row %d: %w", i, err)
		}

		table.Rows[i] = Row{Inputs: inputs, Output: lo.Ternary(result, 1, 0)}
	}
	return nil
}
