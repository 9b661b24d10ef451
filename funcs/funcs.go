// Package funcs provides the standard library of named primitives for the
// exact expression language: elementary and trigonometric functions, complex
// helpers, bitwise and logical operations, statistics, and financial
// formulas. The library is plain data; install it when creating a context:
//
//	ctx := exact.NewContext(exact.Library(funcs.Library()))
//
// Every primitive follows the exact.Func contract: arguments arrive fully
// evaluated, errors surface to the caller unchanged, and nothing here touches
// the evaluation context.
package funcs

import (
	"github.com/exactcalc/exact"
)

var library = make(map[string]exact.Func)

// register adds a primitive under one or more names. Each file in this
// package registers its own family from an init function.
func register(fn exact.Func, names ...string) {
	for _, name := range names {
		library[name] = fn
	}
}

// Library returns a fresh name-to-primitive map suitable for exact.Library.
// The caller may add, replace, or remove entries without affecting other
// calls.
func Library() map[string]exact.Func {
	m := make(map[string]exact.Func, len(library))
	for k, v := range library {
		m[k] = v
	}
	return m
}

// oneArg checks for a single argument and converts it to a complex number.
func oneArg(name string, args []*exact.Number) (complex128, error) {
	if len(args) != 1 {
		return 0, &exact.ArityError{Func: name, Want: 1}
	}
	return args[0].Complex128(), nil
}
