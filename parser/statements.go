package parser

import (
	"github.com/genzlang/genz/ast"
	"github.com/genzlang/genz/token"
)

// parseStatement dispatches on the current token's keyword. Anything that
// doesn't match a keyword or '{' is parsed as an expression statement.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.Cur.Type {
	case token.FUNCTION:
		return p.parseFunctionDecl()
	case token.VAR:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseForEach()
	case token.SWITCH:
		return p.parseSwitch()
	case token.TRY:
		return p.parseTry()
	case token.THROW:
		return p.parseThrow()
	case token.LBRACE:
		return p.parseBlock()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.PRINT:
		return p.parsePrint()
	default:
		return p.parseExprStmt()
	}
}

// atStatementEnd reports whether the current token can end a statement
// without an expression following it — used to tell an absent `return`
// value apart from one that's present.
func (p *Parser) atStatementEnd() bool {
	return p.Cur.Type == token.SEMI || p.Cur.Type == token.NEWLINE || terminatesStatement(p.Cur.Type)
}

// parseBlock consumes `{ stmts }`, skipping stray NEWLINE tokens between
// statements.
func (p *Parser) parseBlock() *ast.Block {
	tok := p.Cur
	p.expectCur(token.LBRACE)
	p.skipNewlines()
	block := &ast.Block{Token: tok}
	for p.Cur.Type != token.RBRACE && p.Cur.Type != token.EOF {
		before := p.Cur
		block.Statements = append(block.Statements, p.parseStatement())
		if p.Cur == before {
			p.advance()
		}
		p.skipNewlines()
	}
	p.expectCur(token.RBRACE)
	return block
}

func (p *Parser) parseExprStmt() ast.Stmt {
	tok := p.Cur
	expr := p.parseExpression(LOWEST)
	p.consumeTerminator(tok)
	return &ast.ExprStmt{Token: tok, Expr: expr}
}

// parseVarDecl handles `bet name [= expr]`. The unusual assign-then-define
// semantics this produces is an evaluator concern, not a parsing one — see
// eval.Evaluator.execVarDecl.
func (p *Parser) parseVarDecl() ast.Stmt {
	tok := p.Cur
	p.advance()

	name := ""
	if p.Cur.Type == token.IDENTIFIER {
		name = p.Cur.Literal
		p.advance()
	} else {
		p.errorf(p.Cur, "expected variable name, got %s", p.Cur.Type)
	}

	var init ast.Expr
	if p.Cur.Type == token.ASSIGN {
		p.advance()
		init = p.parseExpression(LOWEST)
	}
	p.consumeTerminator(tok)
	return &ast.VarDecl{Token: tok, Name: name, Init: init}
}

// parseIf handles the initial `sus (cond) { ... }` and delegates the chain
// of else-if/else branches to finishIf.
func (p *Parser) parseIf() ast.Stmt {
	tok := p.Cur
	p.advance()
	return p.finishIf(tok)
}

// finishIf parses `(cond) block` plus any following else-if/else chain.
// It is shared between the leading `sus` and each `lowkey sus` link, since
// else-if recursively introduces another if.
func (p *Parser) finishIf(tok token.Token) *ast.If {
	p.expectCur(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expectCur(token.RPAREN)
	then := p.parseBlock()

	ifStmt := &ast.If{Token: tok, Condition: cond, Then: then}

	switch p.Cur.Type {
	case token.ELSEIF:
		elseifTok := p.Cur
		p.advance()
		ifStmt.Else = p.finishIf(elseifTok)
	case token.ELSE, token.ELSE_ALT:
		p.advance()
		ifStmt.Else = p.parseBlock()
	}
	return ifStmt
}

func (p *Parser) parseWhile() ast.Stmt {
	tok := p.Cur
	p.advance()
	p.expectCur(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expectCur(token.RPAREN)
	body := p.parseBlock()
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

// parseForEach handles `highkey/grind (name in iterable) body` — the only
// for-loop shape this language supports, no C-style three-clause form.
func (p *Parser) parseForEach() ast.Stmt {
	tok := p.Cur
	p.advance()
	p.expectCur(token.LPAREN)

	name := ""
	if p.Cur.Type == token.IDENTIFIER {
		name = p.Cur.Literal
		p.advance()
	} else {
		p.errorf(p.Cur, "expected identifier after for, got %s", p.Cur.Type)
	}
	p.expectCur(token.IN)
	iterable := p.parseExpression(LOWEST)
	p.expectCur(token.RPAREN)
	body := p.parseBlock()
	return &ast.ForEach{Token: tok, VarName: name, Iterable: iterable, Body: body}
}

// parseSwitch handles `vibe check (expr) { (case-expr ':' stmts)* (default
// ':' stmts)? }`. Case bodies run until the next lookahead that begins a
// case, default, or '}' — atCaseBoundary does the non-destructive trial
// parse that decides where one case body ends.
func (p *Parser) parseSwitch() ast.Stmt {
	tok := p.Cur
	p.advance()
	p.expectCur(token.LPAREN)
	subject := p.parseExpression(LOWEST)
	p.expectCur(token.RPAREN)
	p.expectCur(token.LBRACE)
	p.skipNewlines()

	sw := &ast.Switch{Token: tok, Subject: subject}

	for p.Cur.Type != token.RBRACE && p.Cur.Type != token.EOF {
		if p.Cur.Type == token.DEFAULT {
			p.advance()
			p.expectCur(token.COLON)
			sw.Default = p.parseCaseBody()
			p.skipNewlines()
			continue
		}

		val := p.parseExpression(LOWEST)
		p.expectCur(token.COLON)
		body := p.parseCaseBody()
		sw.Cases = append(sw.Cases, ast.SwitchCase{Value: val, Body: body})
		p.skipNewlines()
	}
	p.expectCur(token.RBRACE)
	return sw
}

// parseCaseBody parses statements until the next token starts a new case
// label, `default`, or the closing `}`.
func (p *Parser) parseCaseBody() []ast.Stmt {
	var stmts []ast.Stmt
	p.skipNewlines()
	for {
		if p.Cur.Type == token.RBRACE || p.Cur.Type == token.EOF || p.Cur.Type == token.DEFAULT {
			break
		}
		if p.atCaseBoundary() {
			break
		}
		before := p.Cur
		stmts = append(stmts, p.parseStatement())
		if p.Cur == before {
			p.advance()
		}
		p.skipNewlines()
	}
	return stmts
}

// atCaseBoundary performs a bounded lookahead: it trial-parses an
// expression from the current position and checks whether
// a ':' immediately follows. A match means the next token starts a new
// case label, not a statement, so the current case body ends here. Either
// way the parser's position is restored — this never consumes input.
func (p *Parser) atCaseBoundary() bool {
	snap := p.snapshot()
	errLen := len(p.Errors)
	p.parseExpression(LOWEST)
	boundary := p.Cur.Type == token.COLON && len(p.Errors) == errLen
	p.restore(snap)
	return boundary
}

// parseTry handles `manifest { stmts } (caught (name) { stmts })? (frfr {
// stmts })?`. A bare try with neither clause parses fine and behaves as a
// plain block.
func (p *Parser) parseTry() ast.Stmt {
	tok := p.Cur
	p.advance()
	tryBlock := p.parseBlock()
	t := &ast.Try{Token: tok, TryBlock: tryBlock}

	if p.Cur.Type == token.CATCH {
		p.advance()
		p.expectCur(token.LPAREN)
		if p.Cur.Type == token.IDENTIFIER {
			t.CatchName = p.Cur.Literal
			p.advance()
		} else {
			p.errorf(p.Cur, "expected identifier in catch clause, got %s", p.Cur.Type)
		}
		p.expectCur(token.RPAREN)
		t.CatchBlock = p.parseBlock()
	}

	if p.Cur.Type == token.FINALLY {
		p.advance()
		t.FinallyBlock = p.parseBlock()
	}
	return t
}

func (p *Parser) parseThrow() ast.Stmt {
	tok := p.Cur
	p.advance()
	val := p.parseExpression(LOWEST)
	p.consumeTerminator(tok)
	return &ast.Throw{Token: tok, Value: val}
}

// parseFunctionDecl handles `flex name(params) { body }`. Functions are
// not first-class: this only ever appears at statement position and is
// inserted into the function table by the evaluator.
func (p *Parser) parseFunctionDecl() ast.Stmt {
	tok := p.Cur
	p.advance()

	name := ""
	if p.Cur.Type == token.IDENTIFIER {
		name = p.Cur.Literal
		p.advance()
	} else {
		p.errorf(p.Cur, "expected function name, got %s", p.Cur.Type)
	}

	p.expectCur(token.LPAREN)
	var params []string
	if p.Cur.Type != token.RPAREN {
		for {
			if p.Cur.Type != token.IDENTIFIER {
				p.errorf(p.Cur, "expected parameter name, got %s", p.Cur.Type)
				break
			}
			params = append(params, p.Cur.Literal)
			p.advance()
			if p.Cur.Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expectCur(token.RPAREN)
	body := p.parseBlock()
	return &ast.FunctionDecl{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	tok := p.Cur
	p.advance()
	var val ast.Expr
	if !p.atStatementEnd() {
		val = p.parseExpression(LOWEST)
	}
	p.consumeTerminator(tok)
	return &ast.Return{Token: tok, Value: val}
}

func (p *Parser) parseBreak() ast.Stmt {
	tok := p.Cur
	p.advance()
	p.consumeTerminator(tok)
	return &ast.Break{Token: tok}
}

func (p *Parser) parseContinue() ast.Stmt {
	tok := p.Cur
	p.advance()
	p.consumeTerminator(tok)
	return &ast.Continue{Token: tok}
}

func (p *Parser) parsePrint() ast.Stmt {
	tok := p.Cur
	p.advance()
	val := p.parseExpression(LOWEST)
	p.consumeTerminator(tok)
	return &ast.Print{Token: tok, Value: val}
}
