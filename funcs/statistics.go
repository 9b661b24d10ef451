package funcs

import (
	"math/cmplx"
	"sort"

	"github.com/exactcalc/exact"
)

// Statistics run on the numeric tower itself, so integer and rational inputs
// stay exact: mean(1, 2) is the rational 3/2, not 1.5.

func init() {
	register(sum, "sum", "SUM")
	register(mean, "mean")
	register(median, "median")
	register(variance, "var")
	register(stdDev, "std")
}

func total(args []*exact.Number) *exact.Number {
	s := exact.NewInt64(0)
	for _, a := range args {
		s = s.Add(a)
	}
	return s
}

func sum(args []*exact.Number) (*exact.Number, error) {
	return total(args), nil
}

func mean(args []*exact.Number) (*exact.Number, error) {
	if len(args) == 0 {
		return nil, &exact.ArityError{Func: "mean", Want: 1}
	}
	return total(args).Div(exact.NewInt64(int64(len(args)))), nil
}

func median(args []*exact.Number) (*exact.Number, error) {
	if len(args) == 0 {
		return nil, &exact.ArityError{Func: "median", Want: 1}
	}
	for _, a := range args {
		if a.Kind() == exact.Complex {
			return nil, &exact.TypeError{Want: "real number", Got: exact.Complex.String()}
		}
	}
	sorted := make([]*exact.Number, len(args))
	copy(sorted, args)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Incomparable pairs (NaN) sort as equal.
		c, ok := sorted[i].Cmp(sorted[j])
		return ok && c < 0
	})
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return sorted[mid-1].Add(sorted[mid]).Div(exact.NewInt64(2)), nil
}

// variance is the sample variance, dividing by n-1.
func variance(args []*exact.Number) (*exact.Number, error) {
	if len(args) < 2 {
		return nil, &exact.ArityError{Func: "var", Want: 2}
	}
	m, err := mean(args)
	if err != nil {
		return nil, err
	}
	s := exact.NewInt64(0)
	for _, x := range args {
		d := x.Sub(m)
		s = s.Add(d.Mul(d))
	}
	return s.Div(exact.NewInt64(int64(len(args) - 1))), nil
}

func stdDev(args []*exact.Number) (*exact.Number, error) {
	v, err := variance(args)
	if err != nil {
		return nil, err
	}
	return exact.NewComplex(cmplx.Sqrt(v.Complex128())), nil
}
