// Package function holds the user-defined function record and the
// per-Evaluator function table.
//
// This intentionally does not capture a defining scope for closures:
// functions in this language are not first-class. A Function here is a
// bare name/params/body record with no captured environment, stored in a
// table separate from variable bindings. See eval.Evaluator.callFunction
// for how it gets invoked.
package function

import "github.com/genzlang/genz/ast"

// Function is a user-defined function: its declared name, parameter names
// in declaration order, and its body statements.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
}

// Table is the per-Evaluator-instance mapping from function name to
// Function.
type Table struct {
	functions map[string]*Function
}

// NewTable returns an empty function table.
func NewTable() *Table {
	return &Table{functions: make(map[string]*Function)}
}

// Define inserts fn into the table, overwriting any prior definition of
// the same name.
func (t *Table) Define(fn *Function) {
	t.functions[fn.Name] = fn
}

// Lookup returns the function bound to name, if any.
func (t *Table) Lookup(name string) (*Function, bool) {
	fn, ok := t.functions[name]
	return fn, ok
}
