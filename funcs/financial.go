package funcs

import (
	"math"
	"math/cmplx"

	"github.com/exactcalc/exact"
)

// Financial formulas follow the usual spreadsheet conventions: money paid
// out is negative, the optional type argument is 1 for payments due at the
// beginning of a period, and rates are per period. The closed-form functions
// compute over the complex plane so negative rates and fractional periods
// behave; irr and rate use Newton iteration.

func init() {
	register(fv, "fv")
	register(pv, "pv")
	register(pmt, "pmt")
	register(nper, "nper")
	register(npv, "npv")
	register(irr, "irr")
	register(rate, "rate")
}

// annuity unpacks the common (rate, nper, amount, [pmt-or-fv], [type])
// argument shape.
func annuity(name string, args []*exact.Number) (rate, nper, amount, extra complex128, due float64, err error) {
	if len(args) < 3 || len(args) > 5 {
		err = &exact.ArityError{Func: name, Want: 3}
		return
	}
	rate = args[0].Complex128()
	nper = args[1].Complex128()
	amount = args[2].Complex128()
	if len(args) >= 4 {
		extra = args[3].Complex128()
	}
	if len(args) >= 5 {
		due = real(args[4].Complex128())
	}
	return
}

func fv(args []*exact.Number) (*exact.Number, error) {
	rate, nper, pv, pmt, due, err := annuity("fv", args)
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(rate) < 1e-9 {
		return exact.NewComplex(-(pv + pmt*nper)), nil
	}
	factor := cmplx.Pow(1+rate, nper)
	term := pmt * (1 + rate*complex(due, 0)) * ((factor - 1) / rate)
	return exact.NewComplex(-(pv*factor + term)), nil
}

func pv(args []*exact.Number) (*exact.Number, error) {
	rate, nper, fv, pmt, due, err := annuity("pv", args)
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(rate) < 1e-9 {
		return exact.NewComplex(-(fv + pmt*nper)), nil
	}
	factor := cmplx.Pow(1+rate, nper)
	term := pmt * (1 + rate*complex(due, 0)) * ((factor - 1) / rate)
	return exact.NewComplex(-(fv + term) / factor), nil
}

func pmt(args []*exact.Number) (*exact.Number, error) {
	rate, nper, pv, fv, due, err := annuity("pmt", args)
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(rate) < 1e-9 {
		return exact.NewComplex(-(fv + pv) / nper), nil
	}
	factor := cmplx.Pow(1+rate, nper)
	num := (pv*factor + fv) * rate
	den := (1 + rate*complex(due, 0)) * (factor - 1)
	return exact.NewComplex(-(num / den)), nil
}

func nper(args []*exact.Number) (*exact.Number, error) {
	rate, pmt, pv, fv, due, err := annuity("nper", args)
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(rate) < 1e-9 {
		return exact.NewComplex(-(fv + pv) / pmt), nil
	}
	rType := 1 + rate*complex(due, 0)
	num := pmt*rType - fv*rate
	den := pmt*rType + pv*rate
	return exact.NewComplex(cmplx.Log(num/den) / cmplx.Log(1+rate)), nil
}

func npv(args []*exact.Number) (*exact.Number, error) {
	if len(args) < 2 {
		return nil, &exact.ArityError{Func: "npv", Want: 2}
	}
	rate := args[0].Complex128()
	var sum complex128
	for i, a := range args[1:] {
		t := complex(float64(i+1), 0)
		sum += a.Complex128() / cmplx.Pow(1+rate, t)
	}
	return exact.NewComplex(sum), nil
}

// irr finds the rate with zero net present value by Newton iteration on the
// real cash flows, starting from 10%.
func irr(args []*exact.Number) (*exact.Number, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		values[i] = real(a.Complex128())
	}
	guess := 0.1
	for iter := 0; iter < 100; iter++ {
		var npv, deriv float64
		for i, val := range values {
			t := float64(i)
			factor := math.Pow(1+guess, t)
			npv += val / factor
			if t > 0 {
				deriv -= t * val / math.Pow(1+guess, t+1)
			}
		}
		if math.Abs(npv) < 1e-7 {
			return exact.NewComplex(complex(guess, 0)), nil
		}
		if math.Abs(deriv) < 1e-10 {
			break
		}
		guess -= npv / deriv
	}
	return exact.NewComplex(complex(guess, 0)), nil
}

// rate solves for the per-period interest rate by Newton iteration with a
// numeric derivative.
func rate(args []*exact.Number) (*exact.Number, error) {
	if len(args) < 3 {
		return nil, &exact.ArityError{Func: "rate", Want: 3}
	}
	nper := real(args[0].Complex128())
	pmt := real(args[1].Complex128())
	pv := real(args[2].Complex128())
	var fv, due float64
	if len(args) >= 4 {
		fv = real(args[3].Complex128())
	}
	if len(args) >= 5 {
		due = real(args[4].Complex128())
	}
	guess := 0.1
	if len(args) >= 6 {
		guess = real(args[5].Complex128())
	}

	y := func(r float64) float64 {
		factor := math.Pow(1+r, nper)
		term := pmt * (1 + r*due) * ((factor - 1) / r)
		return pv*factor + term + fv
	}
	for iter := 0; iter < 100; iter++ {
		if math.Abs(guess) < 1e-9 {
			if math.Abs(pv+pmt*nper+fv) < 1e-7 {
				return exact.NewComplex(0), nil
			}
			guess = 0.0001
			continue
		}
		const delta = 1e-5
		v := y(guess)
		deriv := (y(guess+delta) - v) / delta
		if math.Abs(deriv) < 1e-10 {
			break
		}
		next := guess - v/deriv
		if math.Abs(next-guess) < 1e-7 {
			return exact.NewComplex(complex(next, 0)), nil
		}
		guess = next
	}
	return exact.NewComplex(complex(guess, 0)), nil
}
