package funcs

import (
	"errors"
	"math"
	"math/big"
	"math/cmplx"

	"github.com/exactcalc/exact"
	"github.com/zephyrtronium/bigfloat"
)

func init() {
	register(logBase10, "log")
	register(ln, "ln")
	register(sqrt, "sqrt")
	register(abs, "abs", "ABS")
	register(fact, "fact", "FACT")
	register(round, "round", "ROUND")
	register(floor, "floor", "FLOOR")
	register(ceil, "ceil", "CEILING")
	register(trunc, "trunc", "TRUNC")
	register(pi, "pi")
	register(econst, "e")
}

func logBase10(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("log", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Log10(z)), nil
}

func ln(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("ln", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Log(z)), nil
}

func sqrt(args []*exact.Number) (*exact.Number, error) {
	z, err := oneArg("sqrt", args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Sqrt(z)), nil
}

// abs preserves the domain of its argument; for a complex argument it is the
// magnitude, which is a float.
func abs(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "abs", Want: 1}
	}
	n := args[0]
	switch n.Kind() {
	case exact.Integer:
		i, _ := n.Int()
		return exact.NewInt(i.Abs(i)), nil
	case exact.Rational:
		r, _ := n.Rat()
		return exact.NewRat(r.Abs(r)), nil
	case exact.Float:
		f, _ := n.Float64()
		return exact.NewFloat(math.Abs(f)), nil
	default:
		return exact.NewFloat(cmplx.Abs(n.Complex128())), nil
	}
}

func fact(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "fact", Want: 1}
	}
	return args[0].Factorial()
}

// floatArg converts the first of one or two arguments to a float, with the
// optional second argument as a digit count.
func floatArg(name string, args []*exact.Number) (f float64, digits int, err error) {
	if len(args) == 0 || len(args) > 2 {
		return 0, 0, &exact.ArityError{Func: name, Want: 1}
	}
	f, ok := args[0].Float64()
	if !ok {
		return 0, 0, errors.New(name + ": cannot convert complex value to float")
	}
	if len(args) == 2 {
		if d, ok := args[1].Float64(); ok {
			digits = int(d)
		}
	}
	return f, digits, nil
}

func round(args []*exact.Number) (*exact.Number, error) {
	f, digits, err := floatArg("round", args)
	if err != nil {
		return nil, err
	}
	m := math.Pow(10, float64(digits))
	return exact.NewFloat(math.Round(f*m) / m), nil
}

func floor(args []*exact.Number) (*exact.Number, error) {
	f, _, err := floatArg("floor", args)
	if err != nil {
		return nil, err
	}
	return exact.NewFloat(math.Floor(f)), nil
}

func ceil(args []*exact.Number) (*exact.Number, error) {
	f, _, err := floatArg("ceil", args)
	if err != nil {
		return nil, err
	}
	return exact.NewFloat(math.Ceil(f)), nil
}

func trunc(args []*exact.Number) (*exact.Number, error) {
	f, _, err := floatArg("trunc", args)
	if err != nil {
		return nil, err
	}
	return exact.NewFloat(math.Trunc(f)), nil
}

func pi(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 0 {
		return nil, &exact.ArityError{Func: "pi", Want: 0}
	}
	f, _ := bigfloat.Pi(new(big.Float).SetPrec(53)).Float64()
	return exact.NewFloat(f), nil
}

func econst(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 0 {
		return nil, &exact.ArityError{Func: "e", Want: 0}
	}
	one := new(big.Float).SetPrec(53).SetInt64(1)
	f, _ := bigfloat.Exp(new(big.Float).SetPrec(53), one).Float64()
	return exact.NewFloat(f), nil
}
