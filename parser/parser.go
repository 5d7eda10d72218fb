// Package parser implements a Pratt recursive-descent parser over the
// token stream produced by package lexer, building the AST defined in
// package ast.
//
// It collects errors into a slice instead of panicking on the first
// mistake, and drives expression parsing through registered prefix/infix
// functions keyed by token.Type. It does not carry a live variable
// environment during parsing — there is no constant folding at parse
// time; all evaluation happens in the evaluator.
package parser

import (
	"fmt"

	"github.com/genzlang/genz/ast"
	"github.com/genzlang/genz/lexer"
	"github.com/genzlang/genz/token"
)

type prefixFn func() ast.Expr
type infixFn func(ast.Expr) ast.Expr

// Parser holds the token lookahead and per-token-type parse function
// tables for the Pratt algorithm.
type Parser struct {
	lex *lexer.Lexer

	Cur  token.Token
	Peek token.Token

	Errors []string

	prefixFns map[token.Type]prefixFn
	infixFns  map[token.Type]infixFn
}

// New creates a Parser over src, ready to call ParseProgram.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}

	p.prefixFns = map[token.Type]prefixFn{
		token.NUMBER:     p.parseNumberLiteral,
		token.STRING:     p.parseStringLiteral,
		token.TRUE:       p.parseBooleanLiteral,
		token.FALSE:      p.parseBooleanLiteral,
		token.IDENTIFIER: p.parseIdentifier,
		token.LPAREN:     p.parseGroupedExpression,
		token.LBRACKET:   p.parseArrayLiteral,
		token.LBRACE:     p.parseObjectLiteral,
		token.BANG:       p.parseUnary,
		token.MINUS:      p.parseUnary,
	}

	p.infixFns = map[token.Type]infixFn{
		token.PLUS:     p.parseBinary,
		token.MINUS:    p.parseBinary,
		token.STAR:     p.parseBinary,
		token.SLASH:    p.parseBinary,
		token.PERCENT:  p.parseBinary,
		token.EQ:       p.parseBinary,
		token.NE:       p.parseBinary,
		token.LT:       p.parseBinary,
		token.GT:       p.parseBinary,
		token.LE:       p.parseBinary,
		token.GE:       p.parseBinary,
		token.AND:      p.parseBinary,
		token.OR:       p.parseBinary,
		token.ASSIGN:   p.parseAssign,
		token.LPAREN:   p.parseCall,
		token.LBRACKET: p.parseIndex,
	}

	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.Cur = p.Peek
	tok, err := p.lex.Next()
	if err != nil {
		p.Errors = append(p.Errors, err.Error())
		p.Peek = token.New(token.EOF, "", tok.Line, tok.Column)
		return
	}
	p.Peek = tok
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	msg := fmt.Sprintf("[line %d] "+format, append([]interface{}{tok.Line}, args...)...)
	p.Errors = append(p.Errors, msg)
}

// expectCur requires p.Cur to have type t; on success it consumes it
// (advances) and returns true. On failure it records an error and leaves
// the cursor where it is — callers that need forward progress guarantees
// advance explicitly.
func (p *Parser) expectCur(t token.Type) bool {
	if p.Cur.Type != t {
		p.errorf(p.Cur, "expected %s, got %s", t, p.Cur.Type)
		return false
	}
	p.advance()
	return true
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// snapshot captures enough parser+lexer state to backtrack a trial parse,
// used only by parseSwitch's case-boundary lookahead.
type snapshot struct {
	cur, peek token.Token
	errLen    int
	lexState  lexer.State
}

func (p *Parser) snapshot() snapshot {
	return snapshot{p.Cur, p.Peek, len(p.Errors), p.lex.Save()}
}

func (p *Parser) restore(s snapshot) {
	p.Cur, p.Peek = s.cur, s.peek
	p.Errors = p.Errors[:s.errLen]
	p.lex.Restore(s.lexState)
}

// skipNewlines consumes stray NEWLINE/SEMI tokens between statements.
func (p *Parser) skipNewlines() {
	for p.Cur.Type == token.NEWLINE || p.Cur.Type == token.SEMI {
		p.advance()
	}
}

// consumeTerminator enforces the statement terminator rule: an explicit
// ';'/NEWLINE is consumed, while EOF or an implicit terminator ('}', else
// variants, catch, finally) is accepted without being consumed.
func (p *Parser) consumeTerminator(stmtTok token.Token) {
	switch {
	case p.Cur.Type == token.SEMI || p.Cur.Type == token.NEWLINE:
		p.advance()
	case terminatesStatement(p.Cur.Type):
		// implicit terminator, lookahead only
	default:
		p.errorf(stmtTok, "missing statement terminator, got %s", p.Cur.Type)
	}
}

// ParseProgram consumes the entire token stream, producing the program's
// top-level statement list.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()
	for p.Cur.Type != token.EOF {
		before := p.Cur
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.Cur == before {
			// guard against a parse function that made no progress
			p.advance()
		}
		p.skipNewlines()
	}
	return prog
}
