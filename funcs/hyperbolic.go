package funcs

import (
	"math/cmplx"

	"github.com/exactcalc/exact"
)

func init() {
	register(sinh, "sinh")
	register(cosh, "cosh")
	register(tanh, "tanh")
}

func sinh(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("sinh", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Sinh(z)), nil
}

func cosh(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("cosh", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Cosh(z)), nil
}

func tanh(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("tanh", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Tanh(z)), nil
}
