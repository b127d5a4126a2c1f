package truthtable

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Classification string

const (
	Tautology     Classification = "tautology"
	Contradiction Classification = "contradiction"
	Contingent    Classification = "contingent"
)

// Summary describes the result column of a table.
type Summary struct {
	Rows  int
	Ones  int
	Zeros int
	// share of rows evaluating to 1
	Density        float64
	Classification Classification
}

func (s Summary) String() string {
	return fmt.Sprintf("%d rows, %d true, %d false (%.1f%% true, %s)", s.Rows, s.Ones, s.Zeros, s.Density*100, s.Classification)
}

func (t *Table) Summary() (Summary, error) {
	outputs := lo.Map(t.Rows, func(row Row, _ int) float64 {
		return float64(row.Output)
	})

	ones, err := stats.Sum(outputs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count true rows: %w", err)
	}
	density, err := stats.Mean(outputs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate density: %w", err)
	}

	summary := Summary{
		Rows:    len(t.Rows),
		Ones:    int(ones),
		Zeros:   len(t.Rows) - int(ones),
		Density: density,
	}
	switch summary.Ones {
	case summary.Rows:
		summary.Classification = Tautology
	case 0:
		summary.Classification = Contradiction
	default:
		summary.Classification = Contingent
	}
	return summary, nil
}
