package funcs

import (
	"github.com/exactcalc/exact"
)

// Logic primitives treat zero as false and any other value as true. Results
// are the Integers 0 and 1.
//
// if(c, a, b) selects between values, not between computations: the registry
// contract evaluates every argument before the call, so both branches run
// regardless of the condition.

func init() {
	register(trueVal, "true", "TRUE")
	register(falseVal, "false", "FALSE")
	register(not, "not", "NOT")
	register(and, "and", "AND")
	register(or, "or", "OR")
	register(xor, "xor", "XOR")
	register(ifFunc, "if", "IF")
}

func fromBool(b bool) *exact.Number {
	if b {
		return exact.NewInt64(1)
	}
	return exact.NewInt64(0)
}

func trueVal(args []*exact.Number) (*exact.Number, error) {
	return fromBool(true), nil
}

func falseVal(args []*exact.Number) (*exact.Number, error) {
	return fromBool(false), nil
}

func not(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "not", Want: 1}
	}
	return fromBool(args[0].IsZero()), nil
}

func and(args []*exact.Number) (*exact.Number, error) {
	for _, a := range args {
		if a.IsZero() {
			return fromBool(false), nil
		}
	}
	return fromBool(true), nil
}

func or(args []*exact.Number) (*exact.Number, error) {
	for _, a := range args {
		if !a.IsZero() {
			return fromBool(true), nil
		}
	}
	return fromBool(false), nil
}

// xor is true when an odd number of arguments are true.
func xor(args []*exact.Number) (*exact.Number, error) {
	n := 0
	for _, a := range args {
		if !a.IsZero() {
			n++
		}
	}
	return fromBool(n%2 != 0), nil
}

func ifFunc(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 3 {
		return nil, &exact.ArityError{Func: "if", Want: 3}
	}
	if !args[0].IsZero() {
		return args[1], nil
	}
	return args[2], nil
}
