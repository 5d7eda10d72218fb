// Package builtin implements the fixed set of native functions the
// evaluator dispatches before consulting the user function table: sqrt,
// abs, random, length, uppercase, split.
//
// This narrows the much larger std package of native functions this
// language is grounded on, which registers dozens of builtins (math,
// strings, json, http, crypto, regex, sets, maps...) across a dozen
// files; see DESIGN.md for why the rest of that surface is not carried
// forward. The table-of-name-to-callback shape and the argument-count
// error message style are adapted from it.
package builtin

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/genzlang/genz/value"
)

// Func is the signature every builtin implements: arity is checked by
// Lookup's caller (eval.Evaluator.evalCall) before Func ever runs.
type Func func(args []value.Value) (value.Value, error)

type entry struct {
	arity int
	fn    Func
}

var table = map[string]entry{
	"sqrt":     {1, sqrtFn},
	"abs":      {1, absFn},
	"random":   {0, randomFn},
	"length":   {1, lengthFn},
	"uppercase": {1, uppercaseFn},
	"split":    {2, splitFn},
}

// Lookup returns the builtin bound to name, its required arity, and
// whether name is a builtin at all.
func Lookup(name string) (Func, int, bool) {
	e, ok := table[name]
	if !ok {
		return nil, 0, false
	}
	return e.fn, e.arity, true
}

func asNumber(v value.Value) (float64, bool) {
	n, ok := v.(value.Number)
	return n.Value, ok
}

func asString(v value.Value) (string, bool) {
	s, ok := v.(value.String)
	return s.Value, ok
}

func sqrtFn(args []value.Value) (value.Value, error) {
	n, ok := asNumber(args[0])
	if !ok {
		return nil, fmt.Errorf("sqrt: argument must be a number")
	}
	if n < 0 {
		return nil, fmt.Errorf("sqrt: cannot take the square root of a negative number")
	}
	return value.Number{Value: math.Sqrt(n)}, nil
}

func absFn(args []value.Value) (value.Value, error) {
	n, ok := asNumber(args[0])
	if !ok {
		return nil, fmt.Errorf("abs: argument must be a number")
	}
	return value.Number{Value: math.Abs(n)}, nil
}

// randomFn returns a pseudo-random number in [0,1) seeded from the current
// wall-clock nanoseconds — the interpreter's only externally observable
// timing dependency.
func randomFn(args []value.Value) (value.Value, error) {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return value.Number{Value: src.Float64()}, nil
}

func lengthFn(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case value.String:
		// Character count, not byte count — byte-length on non-ASCII input
		// is treated as a bug, not a feature.
		return value.Number{Value: float64(utf8.RuneCountInString(v.Value))}, nil
	case *value.Array:
		return value.Number{Value: float64(len(v.Elements))}, nil
	default:
		return nil, fmt.Errorf("length: argument must be a string or array")
	}
}

func uppercaseFn(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("uppercase: argument must be a string")
	}
	return value.String{Value: strings.ToUpper(s)}, nil
}

func splitFn(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("split: first argument must be a string")
	}
	delim, ok := asString(args[1])
	if !ok {
		return nil, fmt.Errorf("split: second argument must be a string")
	}
	parts := strings.Split(s, delim)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.String{Value: p}
	}
	return &value.Array{Elements: elems}, nil
}
