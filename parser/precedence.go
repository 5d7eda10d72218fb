package parser

import "github.com/genzlang/genz/token"

// Operator precedence constants, lowest to highest: assignment,
// logical-or, logical-and, equality, comparison, additive,
// multiplicative, unary, call/index postfix.
const (
	LOWEST = iota * 10
	ASSIGN
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	CALL
)

// precedenceOf returns the infix binding power of t, or LOWEST if t is not
// an infix operator (which halts the Pratt loop).
func precedenceOf(t token.Type) int {
	switch t {
	case token.ASSIGN:
		return ASSIGN
	case token.OR:
		return LOGICAL_OR
	case token.AND:
		return LOGICAL_AND
	case token.EQ, token.NE:
		return EQUALITY
	case token.LT, token.GT, token.LE, token.GE:
		return COMPARISON
	case token.PLUS, token.MINUS:
		return ADDITIVE
	case token.STAR, token.SLASH, token.PERCENT:
		return MULTIPLICATIVE
	case token.LPAREN, token.LBRACKET:
		return CALL
	default:
		return LOWEST
	}
}

// terminatesStatement reports whether t is accepted as an implicit,
// non-consumed statement terminator: the presence of '}', an else
// variant, catch, or finally is enough — no explicit ';'/newline is
// required before them.
func terminatesStatement(t token.Type) bool {
	switch t {
	case token.EOF, token.RBRACE, token.ELSE, token.ELSEIF, token.ELSE_ALT, token.CATCH, token.FINALLY:
		return true
	default:
		return false
	}
}
