package evaluator

import (
	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/eriklarko/logic-evaluator/src/circuit"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
	"github.com/samber/lo"
)

type Result struct {
	Expression string
	// sorted, in table column order
	Variables []string

	Tree    *boolexpr.Node
	Table   *truthtable.Table
	Circuit *circuit.Graph
}

// Outputs returns the result column of the table.
func (r *Result) Outputs() []int {
	return lo.Map(r.Table.Rows, func(row truthtable.Row, _ int) int {
		return row.Output
	})
}

func (r *Result) Summary() (truthtable.Summary, error) {
	return r.Table.Summary()
}
