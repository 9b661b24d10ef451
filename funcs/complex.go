package funcs

import (
	"math/cmplx"

	"github.com/exactcalc/exact"
)

func init() {
	register(conj, "conj")
	register(re, "re")
	register(im, "im", "lm")
}

// conj returns the complex conjugate. Real values are their own conjugate
// and pass through unchanged, preserving their domain.
func conj(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "conj", Want: 1}
	}
	n := args[0]
	if n.Kind() != exact.Complex {
		return n, nil
	}
	return exact.NewComplex(cmplx.Conj(n.Complex128())), nil
}

func re(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "re", Want: 1}
	}
	n := args[0]
	if n.Kind() != exact.Complex {
		return n, nil
	}
	return exact.NewFloat(real(n.Complex128())), nil
}

func im(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "im", Want: 1}
	}
	n := args[0]
	switch n.Kind() {
	case exact.Complex:
		return exact.NewFloat(imag(n.Complex128())), nil
	case exact.Float:
		return exact.NewFloat(0), nil
	default:
		return exact.NewInt64(0), nil
	}
}
