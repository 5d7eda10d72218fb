package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzlang/genz/ast"
	"github.com/genzlang/genz/token"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	prog := p.ParseProgram()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)
	return prog
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	prog := parseOK(t, "bruh 1 + 2 * 3")
	require.Len(t, prog.Statements, 1)
	print := prog.Statements[0].(*ast.Print)
	bin := print.Value.(*ast.Binary)
	assert.Equal(t, token.PLUS, bin.Op)
	assert.IsType(t, &ast.NumberLiteral{}, bin.Left)
	mul := bin.Right.(*ast.Binary)
	assert.Equal(t, token.STAR, mul.Op)
}

func TestParser_VarDeclAndConcat(t *testing.T) {
	prog := parseOK(t, `bet n = "Alex"
bruh "Hi " + n`)
	require.Len(t, prog.Statements, 2)
	decl := prog.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "n", decl.Name)
	assert.Equal(t, "Alex", decl.Init.(*ast.StringLiteral).Value)
}

func TestParser_IfElseIfElseChain(t *testing.T) {
	prog := parseOK(t, `sus (s >= 90) { bruh "A" } lowkey sus (s >= 80) { bruh "B" } no sus { bruh "C" }`)
	require.Len(t, prog.Statements, 1)
	ifStmt := prog.Statements[0].(*ast.If)
	require.NotNil(t, ifStmt.Else)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok, "else branch should be a nested If for else-if")
	elseBlock, ok := elseIf.Else.(*ast.Block)
	require.True(t, ok, "final else branch should be a Block")
	assert.Len(t, elseBlock.Statements, 1)
}

func TestParser_ForEachBreakContinue(t *testing.T) {
	prog := parseOK(t, `grind (x in [1,2,3,4,5]) { sus (x == 3) { ghost } sus (x == 5) { slay } bruh x }`)
	require.Len(t, prog.Statements, 1)
	forEach := prog.Statements[0].(*ast.ForEach)
	assert.Equal(t, "x", forEach.VarName)
	assert.IsType(t, &ast.ArrayLiteral{}, forEach.Iterable)
	assert.Len(t, forEach.Body.Statements, 3)
}

func TestParser_FunctionDeclAndCall(t *testing.T) {
	prog := parseOK(t, `flex add(a, b) { vibe a + b }
bruh add(2, 40)`)
	require.Len(t, prog.Statements, 2)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	ret := fn.Body.Statements[0].(*ast.Return)
	assert.NotNil(t, ret.Value)

	print := prog.Statements[1].(*ast.Print)
	call := print.Value.(*ast.Call)
	assert.Equal(t, "add", call.Callee.(*ast.Identifier).Name)
	assert.Len(t, call.Args, 2)
}

func TestParser_TryCatchFinally(t *testing.T) {
	prog := parseOK(t, `manifest { drama "oops" } caught (e) { bruh e } frfr { bruh "done" }`)
	require.Len(t, prog.Statements, 1)
	tr := prog.Statements[0].(*ast.Try)
	assert.Len(t, tr.TryBlock.Statements, 1)
	assert.Equal(t, "e", tr.CatchName)
	require.NotNil(t, tr.CatchBlock)
	require.NotNil(t, tr.FinallyBlock)
}

func TestParser_SwitchNoFallthrough(t *testing.T) {
	prog := parseOK(t, `vibe check (x) {
1: bruh "one"
2: bruh "two"
default: bruh "other"
}`)
	sw := prog.Statements[0].(*ast.Switch)
	require.Len(t, sw.Cases, 2)
	assert.Len(t, sw.Cases[0].Body, 1)
	assert.Len(t, sw.Cases[1].Body, 1)
	require.Len(t, sw.Default, 1)
}

func TestParser_ObjectAndArrayLiterals(t *testing.T) {
	prog := parseOK(t, `bet o = { name: "Alex", "age": 10 }`)
	decl := prog.Statements[0].(*ast.VarDecl)
	obj := decl.Init.(*ast.ObjectLiteral)
	require.Len(t, obj.Entries, 2)
	assert.Equal(t, "name", obj.Entries[0].Key)
	assert.Equal(t, "age", obj.Entries[1].Key)
}

func TestParser_IndexExpression(t *testing.T) {
	prog := parseOK(t, `bet arr = [1, 2, 3]
bruh arr[0]`)
	print := prog.Statements[1].(*ast.Print)
	idx := print.Value.(*ast.Index)
	assert.Equal(t, "arr", idx.Object.(*ast.Identifier).Name)
}

func TestParser_PlainIdentifierReassign(t *testing.T) {
	prog := parseOK(t, `bet n = 1
n = 2`)
	assign := prog.Statements[1].(*ast.ExprStmt).Expr.(*ast.Assign)
	assert.Equal(t, "n", assign.Name)
}

// Index binds tighter than '=' (CALL precedence beats ASSIGN), so
// `arr[0] = 9` parses the left side as Index(arr, 0) first — not a valid
// assignment target. There is no aggregate-mutation syntax in this
// language: only a bare identifier is assignable.
func TestParser_IndexAssignmentIsInvalid(t *testing.T) {
	p := New("arr[0] = 9")
	p.ParseProgram()
	assert.True(t, p.HasErrors())
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	p := New("1 + 1 = 2")
	p.ParseProgram()
	assert.True(t, p.HasErrors())
}

func TestParser_UnaryRightAssociative(t *testing.T) {
	prog := parseOK(t, "bruh !!fr")
	print := prog.Statements[0].(*ast.Print)
	outer := print.Value.(*ast.Unary)
	assert.Equal(t, token.BANG, outer.Op)
	inner := outer.Right.(*ast.Unary)
	assert.Equal(t, token.BANG, inner.Op)
}

func TestParser_ImplicitTerminatorBeforeRBrace(t *testing.T) {
	// No explicit ';' or newline before the closing brace — '}' itself is
	// an accepted implicit terminator.
	prog := parseOK(t, `flex f() { vibe 1 }`)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	assert.Len(t, fn.Body.Statements, 1)
}

func TestParser_MissingTerminatorIsError(t *testing.T) {
	p := New("bruh 1 bruh 2")
	p.ParseProgram()
	assert.True(t, p.HasErrors())
}
