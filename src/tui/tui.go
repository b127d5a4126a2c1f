package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eriklarko/logic-evaluator/src/circuit"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
	"github.com/samber/lo"
)

type TUI struct {
	input  *bufio.Scanner
	output io.Writer
}

func New() *TUI {
	return NewWithIO(os.Stdin, os.Stdout)
}

func NewWithIO(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// AskExpression prints the prompt and returns the next line typed by the user,
// trimmed. An empty line returns defaultValue. ok is false once the input is
// exhausted.
func (t *TUI) AskExpression(prompt, defaultValue string) (expression string, ok bool, err error) {
	if defaultValue != "" {
		fmt.Fprintf(t.output, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(t.output, "%s: ", prompt)
	}

	if !t.input.Scan() {
		if err := t.input.Err(); err != nil {
			return "", false, fmt.Errorf("failed to read user input: %w", err)
		}
		return "", false, nil
	}

	expression = strings.TrimSpace(t.input.Text())
	if expression == "" {
		expression = defaultValue
	}
	return expression, true, nil
}

// Printf writes a message to the output.
func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// PrintTable writes the table with columns padded to their header width.
func (t *TUI) PrintTable(table *truthtable.Table) {
	header := append(append([]string(nil), table.Variables...), table.Expression)
	widths := lo.Map(header, func(h string, _ int) int {
		return len(h)
	})

	t.printRow(header, widths)
	t.printRow(lo.Map(widths, func(w int, _ int) string {
		return strings.Repeat("-", w)
	}), widths)

	for _, row := range table.Rows {
		t.printRow(lo.Map(row.Cells(), func(cell int, _ int) string {
			return strconv.Itoa(cell)
		}), widths)
	}
}

func (t *TUI) printRow(cells []string, widths []int) {
	padded := lo.Map(cells, func(cell string, i int) string {
		return fmt.Sprintf("%-*s", widths[i], cell)
	})
	fmt.Fprintln(t.output, strings.TrimRight(strings.Join(padded, " | "), " "))
}

func (t *TUI) PrintSummary(summary truthtable.Summary) {
	fmt.Fprintf(t.output, "%s\n", summary)
}

// PrintCircuit lists every gate with the nodes wired into it.
func (t *TUI) PrintCircuit(graph *circuit.Graph) {
	fmt.Fprintf(t.output, "%d gates, %d wires\n", graph.GateCount(), len(graph.Edges))

	for _, node := range graph.Nodes {
		if node.Kind == circuit.Input {
			continue
		}

		inputs := lo.Map(graph.InputsOf(node.ID), func(e circuit.Edge, _ int) string {
			from := graph.Nodes[e.From]
			return fmt.Sprintf("%s#%d", from.Label, from.ID)
		})
		fmt.Fprintf(t.output, "  %s#%d [%s] <- %s\n", node.Label, node.ID, node.Shape, strings.Join(inputs, ", "))
	}
}
