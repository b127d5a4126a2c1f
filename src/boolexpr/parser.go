package boolexpr

import (
	"fmt"
	"slices"
)

// binding tiers, loosest first. Every operator in a tier binds equally tight
// and associates to the left.
var tiers = [][]Operator{
	{OR, NOR},
	{XOR, XNOR},
	{AND, NAND},
}

type parser struct {
	tokens []Token
	pos    int
}

func newParser(tokens []Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) parse() (*Node, error) {
	if p.current().Kind == TokenEOF {
		return nil, NewSyntaxError("empty expression", "", 0)
	}

	root, err := p.parseTier(0)
	if err != nil {
		return nil, err
	}

	switch t := p.current(); t.Kind {
	case TokenEOF:
		return root, nil
	case TokenRightParen:
		return nil, NewSyntaxError("unbalanced parentheses, unexpected ')'", t.Text, t.Column)
	case TokenOperator:
		return nil, NewSyntaxError("'not' must precede its operand", t.Text, t.Column)
	default:
		return nil, NewSyntaxError(fmt.Sprintf("unexpected %s, expected an operator", t.Kind), t.Text, t.Column)
	}
}

// parseTier parses a left-associative chain of the operators in tiers[level],
// whose operands are the next tier down.
func (p *parser) parseTier(level int) (*Node, error) {
	if level == len(tiers) {
		return p.parseNot()
	}

	left, err := p.parseTier(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		t := p.current()
		if t.Kind != TokenOperator || !slices.Contains(tiers[level], t.Operator) {
			return left, nil
		}
		p.advance()

		right, err := p.parseTier(level + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse right operand of '%s': %w", t.Text, err)
		}

		left = &Node{
			Operator: t.Operator,
			Left:     left,
			Right:    right,
			Column:   t.Column,
		}
	}
}

func (p *parser) parseNot() (*Node, error) {
	t := p.current()
	if t.Kind != TokenOperator || t.Operator != NOT {
		return p.parsePrimary()
	}
	p.advance()

	operand, err := p.parseNot()
	if err != nil {
		return nil, fmt.Errorf("failed to parse operand of 'not': %w", err)
	}
	return &Node{
		Operator: NOT,
		Left:     operand,
		Column:   t.Column,
	}, nil
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.advance()

	switch t.Kind {
	case TokenVariable:
		return &Node{Operator: VARIABLE, Name: t.Text, Column: t.Column}, nil

	case TokenConstant:
		return &Node{Operator: CONSTANT, Value: t.Text == "1", Column: t.Column}, nil

	case TokenLeftParen:
		if next := p.current(); next.Kind == TokenRightParen {
			return nil, NewSyntaxError("empty parentheses", "()", t.Column)
		}

		inner, err := p.parseTier(0)
		if err != nil {
			return nil, err
		}

		closing := p.current()
		if closing.Kind != TokenRightParen {
			if closing.Kind == TokenEOF {
				return nil, NewSyntaxError("unbalanced parentheses, missing ')'", "(", t.Column)
			}
			return nil, NewSyntaxError(fmt.Sprintf("unexpected %s, expected ')'", closing.Kind), closing.Text, closing.Column)
		}
		p.advance()
		return inner, nil

	case TokenOperator:
		return nil, NewSyntaxError("missing operand before operator", t.Text, t.Column)

	case TokenRightParen:
		return nil, NewSyntaxError("missing operand before ')'", t.Text, t.Column)

	default:
		return nil, NewSyntaxError("missing operand at end of expression", "", t.Column)
	}
}
