package boolexpr

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := map[string][]TokenKind{
		"A":            {TokenVariable, TokenEOF},
		"A and B":      {TokenVariable, TokenOperator, TokenVariable, TokenEOF},
		"(A)":          {TokenLeftParen, TokenVariable, TokenRightParen, TokenEOF},
		"not(A)":       {TokenOperator, TokenLeftParen, TokenVariable, TokenRightParen, TokenEOF},
		"1 or 0":       {TokenConstant, TokenOperator, TokenConstant, TokenEOF},
		"  A\tor\nB  ": {TokenVariable, TokenOperator, TokenVariable, TokenEOF},
		"":             {TokenEOF},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			tokens, err := tokenize(expression)
			require.NoError(t, err)

			kinds := lo.Map(tokens, func(token Token, _ int) TokenKind {
				return token.Kind
			})
			assert.Equal(t, expected, kinds)
		})
	}
}

func TestTokenizeOperatorsAreWholeWords(t *testing.T) {
	testCases := map[string]Operator{
		"and":  AND,
		"nand": NAND,
		"or":   OR,
		"nor":  NOR,
		"xor":  XOR,
		"xnor": XNOR,
		"not":  NOT,
	}

	for keyword, expected := range testCases {
		t.Run(keyword, func(t *testing.T) {
			tokens, err := tokenize("A " + keyword + " B")
			require.NoError(t, err)
			require.Len(t, tokens, 4)

			assert.Equal(t, TokenOperator, tokens[1].Kind)
			assert.Equal(t, expected, tokens[1].Operator)
			assert.Equal(t, keyword, tokens[1].Text)
		})
	}
}

func TestTokenizeColumns(t *testing.T) {
	tokens, err := tokenize("A nand (B)")
	require.NoError(t, err)

	columns := lo.Map(tokens, func(token Token, _ int) int {
		return token.Column
	})
	assert.Equal(t, []int{1, 3, 8, 9, 10, 11}, columns)
}

func TestTokenizeRejectsUnknownWords(t *testing.T) {
	testCases := map[string]string{
		"A && B":  "&",
		"AB":      "AB",
		"a and B": "a",
		"A AND B": "AND",
		"A andB":  "andB",
		"A1":      "A1",
		"2":       "2",
		"A + B":   "+",
		"A ∧ B":   "∧",
		"¬A":      "¬",
	}

	for expression, fragment := range testCases {
		t.Run(expression, func(t *testing.T) {
			_, err := tokenize(expression)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, fragment, syntaxErr.Fragment)
		})
	}
}

func TestTokenizeNonASCIIColumn(t *testing.T) {
	_, err := tokenize("A ∧ B")

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 3, syntaxErr.Column)
	assert.Equal(t, "syntax error at column 3 near '∧': unrecognized character", syntaxErr.Error())
}

func TestKeywordFor(t *testing.T) {
	for keyword, op := range keywords {
		assert.Equal(t, keyword, keywordFor(op))
	}
}
