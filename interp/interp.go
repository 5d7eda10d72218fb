// Package interp ties lexing, parsing, and evaluation together behind a
// single entry point, the shape every front end (file runner, REPL, TCP
// server) drives: source text in, printed output and an error out.
//
// go-mix's own main/main.go and repl/repl.go each re-derive this wiring
// inline (parser.NewParser, HasErrors, eval.NewEvaluator, Eval). Pulling it
// into its own package here keeps cmd/genz, repl, and tests from repeating
// it three times over.
package interp

import (
	"bytes"
	"strings"

	"github.com/genzlang/genz/eval"
	"github.com/genzlang/genz/parser"
)

// ParseError reports that the source failed to parse; Errors holds every
// collected parse diagnostic, not just the first.
type ParseError struct {
	Errors []string
}

func (e *ParseError) Error() string {
	return "parse error:\n  " + strings.Join(e.Errors, "\n  ")
}

// Execute parses and evaluates source against a fresh Evaluator, returning
// everything `bruh` printed. A parse failure returns *ParseError; a runtime
// failure returns whatever error type package eval raised.
func Execute(source string) (string, error) {
	p := parser.New(source)
	prog := p.ParseProgram()
	if p.HasErrors() {
		return "", &ParseError{Errors: p.Errors}
	}

	var out bytes.Buffer
	ev := eval.New(&out)
	if err := ev.Run(prog); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

// Session is a REPL-shaped interpreter: it keeps one Evaluator (and so one
// global scope and one function table) alive across calls, letting earlier
// statements' variables and functions stay visible to later ones — the
// same reuse go-mix's repl.Repl.Start gives its single eval.Evaluator.
type Session struct {
	out bytes.Buffer
	ev  *eval.Evaluator
}

// NewSession returns a Session with a fresh Evaluator.
func NewSession() *Session {
	s := &Session{}
	s.ev = eval.New(&s.out)
	return s
}

// Eval parses and runs one chunk of source against the session's ongoing
// Evaluator, returning whatever it printed during this call only.
func (s *Session) Eval(source string) (string, error) {
	p := parser.New(source)
	prog := p.ParseProgram()
	if p.HasErrors() {
		return "", &ParseError{Errors: p.Errors}
	}

	s.out.Reset()
	err := s.ev.Run(prog)
	return s.out.String(), err
}
