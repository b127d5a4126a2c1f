package boolexpr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type TokenKind int

const (
	TokenVariable TokenKind = iota
	TokenConstant
	TokenOperator
	TokenLeftParen
	TokenRightParen
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenVariable:
		return "variable"
	case TokenConstant:
		return "constant"
	case TokenOperator:
		return "operator"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenEOF:
		return "end of expression"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

type Token struct {
	Kind TokenKind
	Text string
	// set for TokenOperator only
	Operator Operator
	// 1-based
	Column int
}

var keywords = map[string]Operator{
	"not":  NOT,
	"and":  AND,
	"or":   OR,
	"xor":  XOR,
	"xnor": XNOR,
	"nand": NAND,
	"nor":  NOR,
}

func keywordFor(op Operator) string {
	for keyword, o := range keywords {
		if o == op {
			return keyword
		}
	}
	return strings.ToLower(op.String())
}

// tokenize splits the expression into tokens. Words are read whole before
// being classified, so a keyword is never matched inside a longer word: "nand"
// is one NAND token, never "n" followed by "and". Columns count bytes, which
// equals runes since any non-ASCII character stops tokenizing.
func tokenize(expression string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(expression); {
		c := expression[i]
		column := i + 1

		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLeftParen, Text: "(", Column: column})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRightParen, Text: ")", Column: column})
			i++
		case isWordChar(c):
			start := i
			for i < len(expression) && isWordChar(expression[i]) {
				i++
			}
			token, err := classifyWord(expression[start:i], column)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		default:
			_, size := utf8.DecodeRuneInString(expression[i:])
			return nil, NewSyntaxError("unrecognized character", expression[i:i+size], column)
		}
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Column: len(expression) + 1})
	return tokens, nil
}

func classifyWord(word string, column int) (Token, error) {
	if op, ok := keywords[word]; ok {
		return Token{Kind: TokenOperator, Text: word, Operator: op, Column: column}, nil
	}

	if len(word) == 1 {
		switch c := word[0]; {
		case 'A' <= c && c <= 'Z':
			return Token{Kind: TokenVariable, Text: word, Column: column}, nil
		case c == '0' || c == '1':
			return Token{Kind: TokenConstant, Text: word, Column: column}, nil
		}
	}

	if _, ok := keywords[strings.ToLower(word)]; ok {
		return Token{}, NewSyntaxError("operators must be lowercase", word, column)
	}
	return Token{}, NewSyntaxError("unrecognized token, variables are single uppercase letters", word, column)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '_'
}
