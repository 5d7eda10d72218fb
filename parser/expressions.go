package parser

import (
	"strconv"

	"github.com/genzlang/genz/ast"
	"github.com/genzlang/genz/token"
)

// parseExpression is the Pratt loop: parse a prefix expression, then keep
// folding in infix operators whose precedence exceeds prec.
func (p *Parser) parseExpression(prec int) ast.Expr {
	prefix, ok := p.prefixFns[p.Cur.Type]
	if !ok {
		p.errorf(p.Cur, "unexpected token %s", p.Cur.Type)
		p.advance()
		return nil
	}
	left := prefix()

	for prec < precedenceOf(p.Cur.Type) {
		infix, ok := p.infixFns[p.Cur.Type]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseNumberLiteral() ast.Expr {
	tok := p.Cur
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok, "malformed number %q", tok.Literal)
	}
	p.advance()
	return &ast.NumberLiteral{Token: tok, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	tok := p.Cur
	p.advance()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expr {
	tok := p.Cur
	p.advance()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
}

func (p *Parser) parseIdentifier() ast.Expr {
	tok := p.Cur
	p.advance()
	return &ast.Identifier{Token: tok, Name: tok.Literal}
}

func (p *Parser) parseGroupedExpression() ast.Expr {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	p.expectCur(token.RPAREN)
	return expr
}

// parseUnary handles prefix '!' and '-', right-associative by virtue of
// being a prefix operator.
func (p *Parser) parseUnary() ast.Expr {
	tok := p.Cur
	p.advance()
	right := p.parseExpression(UNARY)
	return &ast.Unary{Token: tok, Op: tok.Type, Right: right}
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	tok := p.Cur
	prec := precedenceOf(tok.Type)
	p.advance()
	right := p.parseExpression(prec)
	return &ast.Binary{Token: tok, Op: tok.Type, Left: left, Right: right}
}

// parseAssign implements assignment as right-associative by recursing at
// ASSIGN-1, and enforces that only a bare identifier is a valid target.
func (p *Parser) parseAssign(left ast.Expr) ast.Expr {
	tok := p.Cur
	p.advance()
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(tok, "invalid assignment target")
	}
	val := p.parseExpression(ASSIGN - 1)
	name := ""
	if ident != nil {
		name = ident.Name
	}
	return &ast.Assign{Token: tok, Name: name, Value: val}
}

func (p *Parser) parseCall(left ast.Expr) ast.Expr {
	tok := p.Cur
	p.advance() // consume '('
	var args []ast.Expr
	if p.Cur.Type != token.RPAREN {
		for {
			args = append(args, p.parseExpression(LOWEST))
			if p.Cur.Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expectCur(token.RPAREN)
	return &ast.Call{Token: tok, Callee: left, Args: args}
}

func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	tok := p.Cur
	p.advance() // consume '['
	idx := p.parseExpression(LOWEST)
	p.expectCur(token.RBRACKET)
	return &ast.Index{Token: tok, Object: left, Index: idx}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	tok := p.Cur
	p.advance() // consume '['
	var elems []ast.Expr
	if p.Cur.Type != token.RBRACKET {
		for {
			elems = append(elems, p.parseExpression(LOWEST))
			if p.Cur.Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expectCur(token.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

// parseObjectLiteral handles `{ key: value, ... }` where key is an
// identifier or a string literal. Trailing commas are not supported.
func (p *Parser) parseObjectLiteral() ast.Expr {
	tok := p.Cur
	p.advance() // consume '{'
	var entries []ast.ObjectEntry
	if p.Cur.Type != token.RBRACE {
		for {
			var key string
			switch p.Cur.Type {
			case token.IDENTIFIER, token.STRING:
				key = p.Cur.Literal
				p.advance()
			default:
				p.errorf(p.Cur, "expected object key, got %s", p.Cur.Type)
			}
			p.expectCur(token.COLON)
			val := p.parseExpression(LOWEST)
			entries = append(entries, ast.ObjectEntry{Key: key, Value: val})
			if p.Cur.Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expectCur(token.RBRACE)
	return &ast.ObjectLiteral{Token: tok, Entries: entries}
}
