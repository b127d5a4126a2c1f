package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/eriklarko/logic-evaluator/src/circuit"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskExpression(t *testing.T) {
	var output bytes.Buffer
	sut := NewWithIO(strings.NewReader("  A and B  \n\n"), &output)

	expression, ok, err := sut.AskExpression("Expression", "not A")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A and B", expression)
	assert.Equal(t, "Expression [not A]: ", output.String())

	// empty line falls back to the default
	expression, ok, err = sut.AskExpression("Expression", "not A")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "not A", expression)

	// input exhausted
	_, ok, err = sut.AskExpression("Expression", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrintTable(t *testing.T) {
	node, err := boolexpr.New("A xor B")
	require.NoError(t, err)
	table, err := truthtable.Build(node, node.Variables())
	require.NoError(t, err)
	table.Expression = "A xor B"

	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintTable(table)

	expected := `A | B | A xor B
- | - | -------
0 | 0 | 0
0 | 1 | 1
1 | 0 | 1
1 | 1 | 0
`
	assert.Equal(t, expected, output.String())
}

func TestPrintCircuit(t *testing.T) {
	node, err := boolexpr.New("not A nand A")
	require.NoError(t, err)
	graph, err := circuit.Build(node)
	require.NoError(t, err)

	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintCircuit(graph)

	expected := `2 gates, 4 wires
  NOT#1 [triangle] <- A#0
  NAND#2 [box] <- NOT#1, A#0
  OUTPUT#3 [circle] <- NAND#2
`
	assert.Equal(t, expected, output.String())
}
