package funcs

import (
	"math/cmplx"

	"github.com/exactcalc/exact"
)

// Trigonometry is computed over the complex plane so that arguments outside
// the real domain of the inverse functions still produce a value, e.g.
// asin(2) is a complex number rather than an error.

func init() {
	register(sin, "sin")
	register(cos, "cos")
	register(tan, "tan")
	register(asin, "asin")
	register(acos, "acos", "cosin")
	register(atan, "atan")
}

func sin(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("sin", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Sin(z)), nil
}

func cos(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("cos", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Cos(z)), nil
}

func tan(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("tan", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Tan(z)), nil
}

func asin(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("asin", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Asin(z)), nil
}

func acos(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("acos", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Acos(z)), nil
}

func atan(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("atan", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Atan(z)), nil
}
