package exact_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/exactcalc/exact"
)

func TestPromotion(t *testing.T) {
	i := exact.NewInt64(2)
	r := exact.NewRat(big.NewRat(1, 2))
	f := exact.NewFloat(0.5)
	c := exact.NewComplex(1 + 2i)
	cases := []struct {
		name string
		x, y *exact.Number
		want exact.Kind
	}{
		{"int int", i, i, exact.Integer},
		{"int rat", i, r, exact.Rational},
		{"rat int", r, i, exact.Rational},
		{"int float", i, f, exact.Float},
		{"rat float", r, f, exact.Float},
		{"float float", f, f, exact.Float},
		{"int complex", i, c, exact.Complex},
		{"rat complex", r, c, exact.Complex},
		{"float complex", f, c, exact.Complex},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.x.Add(c.y).Kind(); got != c.want {
				t.Errorf("add %v + %v: want %v, got %v", c.x, c.y, c.want, got)
			}
			if got := c.x.Mul(c.y).Kind(); got != c.want {
				t.Errorf("mul %v * %v: want %v, got %v", c.x, c.y, c.want, got)
			}
		})
	}
}

func TestExactRationals(t *testing.T) {
	// 1/3 * 3 recovers exactly 1, which float arithmetic cannot do.
	third := exact.NewInt64(1).Div(exact.NewInt64(3))
	if third.Kind() != exact.Rational {
		t.Fatalf("1/3: want Rational, got %v", third.Kind())
	}
	one := third.Mul(exact.NewInt64(3))
	if one.Kind() != exact.Rational {
		t.Fatalf("1/3*3: want Rational, got %v", one.Kind())
	}
	r, _ := one.Rat()
	if r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("1/3*3: want 1, got %v", r)
	}
}

func TestDivZero(t *testing.T) {
	cases := []struct {
		name string
		x, y *exact.Number
		want float64
	}{
		{"pos/0", exact.NewInt64(1), exact.NewInt64(0), math.Inf(1)},
		{"neg/0", exact.NewInt64(-1), exact.NewInt64(0), math.Inf(-1)},
		{"0/0", exact.NewInt64(0), exact.NewInt64(0), math.NaN()},
		{"rat/0", exact.NewRat(big.NewRat(1, 2)), exact.NewInt64(0), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.x.Div(c.y)
			if got.Kind() != exact.Float {
				t.Fatalf("%v / %v: want Float, got %v", c.x, c.y, got.Kind())
			}
			f, _ := got.Float64()
			if math.IsNaN(c.want) {
				if !math.IsNaN(f) {
					t.Errorf("%v / %v: want NaN, got %v", c.x, c.y, f)
				}
			} else if f != c.want {
				t.Errorf("%v / %v: want %v, got %v", c.x, c.y, c.want, f)
			}
		})
	}
}

func TestMod(t *testing.T) {
	cases := []struct {
		name string
		x, y *exact.Number
		want string
	}{
		{"int", exact.NewInt64(7), exact.NewInt64(3), "1"},
		{"neg int", exact.NewInt64(-7), exact.NewInt64(3), "-1"},
		{"rat", exact.NewRat(big.NewRat(7, 2)), exact.NewRat(big.NewRat(3, 2)), "1/2"},
		{"float", exact.NewFloat(7.5), exact.NewFloat(2), "1.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.x.Mod(c.y).String(); got != c.want {
				t.Errorf("%v %% %v: want %s, got %s", c.x, c.y, c.want, got)
			}
		})
	}
	t.Run("by zero", func(t *testing.T) {
		got := exact.NewInt64(5).Mod(exact.NewInt64(0))
		f, ok := got.Float64()
		if !ok || !math.IsNaN(f) {
			t.Errorf("5 %% 0: want NaN, got %v", got)
		}
	})
	t.Run("complex", func(t *testing.T) {
		got := exact.NewComplex(1 + 2i).Mod(exact.NewComplex(3))
		f, ok := got.Float64()
		if !ok || !math.IsNaN(f) {
			t.Errorf("complex mod: want NaN, got %v", got)
		}
	})
}

func TestPow(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		got := exact.NewInt64(2).Pow(exact.NewInt64(100))
		want, _ := new(big.Int).SetString("1267650600228229401496703205376", 10)
		i, ok := got.Int()
		if !ok || i.Cmp(want) != 0 {
			t.Errorf("2^100: want %v, got %v", want, got)
		}
	})
	t.Run("negative exponent", func(t *testing.T) {
		got := exact.NewInt64(2).Pow(exact.NewInt64(-3))
		r, ok := got.Rat()
		if !ok || r.Cmp(big.NewRat(1, 8)) != 0 {
			t.Errorf("2^-3: want 1/8, got %v", got)
		}
	})
	t.Run("zero to negative", func(t *testing.T) {
		got := exact.NewInt64(0).Pow(exact.NewInt64(-1))
		f, ok := got.Float64()
		if !ok || !math.IsInf(f, 1) {
			t.Errorf("0^-1: want +Inf, got %v", got)
		}
	})
	t.Run("huge exponent", func(t *testing.T) {
		e := new(big.Int).Lsh(big.NewInt(1), 40)
		got := exact.NewInt64(2).Pow(exact.NewInt(e))
		f, ok := got.Float64()
		if !ok || !math.IsInf(f, 1) {
			t.Errorf("2^(2^40): want +Inf float, got %v", got)
		}
	})
	t.Run("complex", func(t *testing.T) {
		got := exact.NewFloat(2).Pow(exact.NewFloat(0.5))
		if got.Kind() != exact.Complex {
			t.Fatalf("2.0^0.5: want Complex, got %v", got.Kind())
		}
		c := got.Complex128()
		if math.Abs(real(c)-math.Sqrt2) > 1e-15 || imag(c) != 0 {
			t.Errorf("2.0^0.5: want sqrt(2), got %v", c)
		}
	})
}

func TestFactorial(t *testing.T) {
	t.Run("small", func(t *testing.T) {
		got, err := exact.NewInt64(5).Factorial()
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != "120" {
			t.Errorf("5!: want 120, got %v", got)
		}
	})
	t.Run("zero", func(t *testing.T) {
		got, err := exact.NewInt64(0).Factorial()
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != "1" {
			t.Errorf("0!: want 1, got %v", got)
		}
	})
	t.Run("large", func(t *testing.T) {
		got, err := exact.NewInt64(50).Factorial()
		if err != nil {
			t.Fatal(err)
		}
		want := "30414093201713378043612608166064768844377641568960512000000000000"
		if got.String() != want {
			t.Errorf("50!: want %s, got %v", want, got)
		}
	})
	t.Run("negative", func(t *testing.T) {
		_, err := exact.NewInt64(-1).Factorial()
		if _, ok := err.(*exact.DomainError); !ok {
			t.Errorf("(-1)!: want DomainError, got %v", err)
		}
	})
	t.Run("non-integer", func(t *testing.T) {
		_, err := exact.NewFloat(1.5).Factorial()
		if _, ok := err.(*exact.DomainError); !ok {
			t.Errorf("1.5!: want DomainError, got %v", err)
		}
	})
}

func TestCmp(t *testing.T) {
	cases := []struct {
		name string
		x, y *exact.Number
		want int
		ok   bool
	}{
		{"int lt", exact.NewInt64(1), exact.NewInt64(2), -1, true},
		{"int rat", exact.NewInt64(1), exact.NewRat(big.NewRat(1, 2)), 1, true},
		{"float eq", exact.NewFloat(0.5), exact.NewRat(big.NewRat(1, 2)), 0, true},
		{"nan", exact.NewFloat(math.NaN()), exact.NewFloat(1), 0, false},
		{"complex", exact.NewComplex(1i), exact.NewComplex(1i), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.x.Cmp(c.y)
			if got != c.want || ok != c.ok {
				t.Errorf("cmp(%v, %v): want (%d, %t), got (%d, %t)", c.x, c.y, c.want, c.ok, got, ok)
			}
		})
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    *exact.Number
		want string
	}{
		{exact.NewInt64(42), "42"},
		{exact.NewRat(big.NewRat(2, 6)), "1/3"},
		{exact.NewRat(big.NewRat(4, 2)), "2"},
		{exact.NewFloat(1.5), "1.5"},
		{exact.NewComplex(1 + 2i), "1+2i"},
		{exact.NewComplex(1 - 2i), "1-2i"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("String of %v: want %s, got %s", c.n.Kind(), c.want, got)
		}
	}
}
