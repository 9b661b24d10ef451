package exact

import (
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

// Kind identifies the domain of the numeric tower a Number occupies. The
// kinds form a total promotion order: Integer < Rational < Float < Complex.
type Kind int8

const (
	Integer Kind = iota
	Rational
	Float
	Complex
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Rational:
		return "Rational"
	case Float:
		return "Float"
	case Complex:
		return "Complex"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is a value in the numeric tower: an arbitrary-precision integer, an
// arbitrary-precision rational, an IEEE double, or a double-precision complex
// number. A Number is immutable once constructed; arithmetic always produces
// a new value, so Numbers are shared by pointer and never copied or changed
// in place.
type Number struct {
	kind Kind

	i *big.Int
	r *big.Rat
	f float64
	c complex128
}

var oneInt = big.NewInt(1)

// intNum and ratNum wrap payloads the tower itself created. They must never
// be given a value the caller can still reach.
func intNum(i *big.Int) *Number { return &Number{kind: Integer, i: i} }
func ratNum(r *big.Rat) *Number { return &Number{kind: Rational, r: r} }

// NewInt creates an integer Number. The argument is copied.
func NewInt(x *big.Int) *Number {
	return intNum(new(big.Int).Set(x))
}

// NewInt64 creates an integer Number from a machine integer.
func NewInt64(x int64) *Number {
	return intNum(big.NewInt(x))
}

// NewRat creates a rational Number. The argument is copied.
func NewRat(x *big.Rat) *Number {
	return ratNum(new(big.Rat).Set(x))
}

// NewFloat creates a float Number.
func NewFloat(f float64) *Number {
	return &Number{kind: Float, f: f}
}

// NewComplex creates a complex Number.
func NewComplex(c complex128) *Number {
	return &Number{kind: Complex, c: c}
}

// Kind reports the domain the value occupies.
func (n *Number) Kind() Kind {
	return n.kind
}

// Int returns a copy of the value's integer payload. The second result is
// false if the value is not an Integer.
func (n *Number) Int() (*big.Int, bool) {
	if n.kind != Integer {
		return nil, false
	}
	return new(big.Int).Set(n.i), true
}

// Rat returns a copy of the value's rational payload. The second result is
// false if the value is not a Rational.
func (n *Number) Rat() (*big.Rat, bool) {
	if n.kind != Rational {
		return nil, false
	}
	return new(big.Rat).Set(n.r), true
}

// Float64 converts the value to an IEEE double, saturating to an infinity
// when the magnitude is too large. The second result is false only for a
// Complex value with a nonzero imaginary part.
func (n *Number) Float64() (float64, bool) {
	if n.kind == Complex && imag(n.c) != 0 {
		return 0, false
	}
	return n.float64val(), true
}

// Complex128 converts the value to a complex number. The conversion is total;
// real values convert with a zero imaginary part.
func (n *Number) Complex128() complex128 {
	if n.kind == Complex {
		return n.c
	}
	return complex(n.float64val(), 0)
}

// IsZero reports whether the value is zero in its own domain.
func (n *Number) IsZero() bool {
	switch n.kind {
	case Integer:
		return n.i.Sign() == 0
	case Rational:
		return n.r.Sign() == 0
	case Float:
		return n.f == 0
	default:
		return n.c == 0
	}
}

// float64val is the saturating conversion used during promotion. big.Float
// and big.Rat both round to the nearest double and overflow to an infinity.
func (n *Number) float64val() float64 {
	switch n.kind {
	case Integer:
		f, _ := new(big.Float).SetInt(n.i).Float64()
		return f
	case Rational:
		f, _ := n.r.Float64()
		return f
	case Float:
		return n.f
	default:
		return real(n.c)
	}
}

// promote upgrades a pair of values to their common domain. Integer paired
// with Rational widens the Integer; anything paired with a Float collapses to
// Float (lossy for rationals); anything paired with a Complex widens to
// Complex. An Integer pair is returned unchanged.
func promote(x, y *Number) (*Number, *Number) {
	if x.kind == y.kind {
		return x, y
	}
	if x.kind == Complex || y.kind == Complex {
		return NewComplex(x.Complex128()), NewComplex(y.Complex128())
	}
	if x.kind == Float || y.kind == Float {
		return NewFloat(x.float64val()), NewFloat(y.float64val())
	}
	// One Integer, one Rational.
	if x.kind == Integer {
		return ratNum(new(big.Rat).SetInt(x.i)), y
	}
	return x, ratNum(new(big.Rat).SetInt(y.i))
}

// Add returns x + y in the common domain of x and y.
func (x *Number) Add(y *Number) *Number {
	x, y = promote(x, y)
	switch x.kind {
	case Integer:
		return intNum(new(big.Int).Add(x.i, y.i))
	case Rational:
		return ratNum(new(big.Rat).Add(x.r, y.r))
	case Float:
		return NewFloat(x.f + y.f)
	default:
		return NewComplex(x.c + y.c)
	}
}

// Sub returns x - y in the common domain of x and y.
func (x *Number) Sub(y *Number) *Number {
	x, y = promote(x, y)
	switch x.kind {
	case Integer:
		return intNum(new(big.Int).Sub(x.i, y.i))
	case Rational:
		return ratNum(new(big.Rat).Sub(x.r, y.r))
	case Float:
		return NewFloat(x.f - y.f)
	default:
		return NewComplex(x.c - y.c)
	}
}

// Mul returns x * y in the common domain of x and y.
func (x *Number) Mul(y *Number) *Number {
	x, y = promote(x, y)
	switch x.kind {
	case Integer:
		return intNum(new(big.Int).Mul(x.i, y.i))
	case Rational:
		return ratNum(new(big.Rat).Mul(x.r, y.r))
	case Float:
		return NewFloat(x.f * y.f)
	default:
		return NewComplex(x.c * y.c)
	}
}

// Div returns x / y. Dividing two Integers yields an exact Rational rather
// than truncating. A zero Integer or Rational divisor does not raise an
// error: the result is the IEEE double quotient, an infinity or NaN.
func (x *Number) Div(y *Number) *Number {
	if x.kind == Integer && y.kind == Integer {
		if y.i.Sign() == 0 {
			return NewFloat(x.float64val() / y.float64val())
		}
		return ratNum(new(big.Rat).SetFrac(x.i, y.i))
	}
	x, y = promote(x, y)
	switch x.kind {
	case Rational:
		if y.r.Sign() == 0 {
			return NewFloat(x.float64val() / y.float64val())
		}
		return ratNum(new(big.Rat).Quo(x.r, y.r))
	case Float:
		return NewFloat(x.f / y.f)
	case Complex:
		return NewComplex(x.c / y.c)
	default:
		panic("exact: unpromoted operands in Div")
	}
}

// Mod returns the remainder of x / y, truncated toward zero, in the common
// domain of x and y. The remainder of two Complex values is undefined and
// yields a float NaN sentinel, as does a zero Integer or Rational divisor.
func (x *Number) Mod(y *Number) *Number {
	x, y = promote(x, y)
	switch x.kind {
	case Integer:
		if y.i.Sign() == 0 {
			return NewFloat(math.NaN())
		}
		return intNum(new(big.Int).Rem(x.i, y.i))
	case Rational:
		if y.r.Sign() == 0 {
			return NewFloat(math.NaN())
		}
		q := new(big.Rat).Quo(x.r, y.r)
		t := new(big.Rat).SetInt(new(big.Int).Quo(q.Num(), q.Denom()))
		return ratNum(new(big.Rat).Sub(x.r, t.Mul(t, y.r)))
	case Float:
		return NewFloat(math.Mod(x.f, y.f))
	default:
		return NewFloat(math.NaN())
	}
}

// Neg returns -x. Negation preserves the domain of its operand.
func (x *Number) Neg() *Number {
	switch x.kind {
	case Integer:
		return intNum(new(big.Int).Neg(x.i))
	case Rational:
		return ratNum(new(big.Rat).Neg(x.r))
	case Float:
		return NewFloat(-x.f)
	default:
		return NewComplex(-x.c)
	}
}

// Pow returns x raised to y. An Integer base with an Integer exponent is
// computed exactly: non-negative exponents by integer exponentiation,
// negative exponents as an exact reciprocal Rational (a zero base yields
// float infinity). Exponents beyond the 32-bit range fall back to the IEEE
// double power. Every other pairing promotes both operands to Complex.
func (x *Number) Pow(y *Number) *Number {
	if x.kind == Integer && y.kind == Integer {
		e := y.i
		if e.Sign() >= 0 {
			if e.IsUint64() && e.Uint64() <= math.MaxUint32 {
				return intNum(new(big.Int).Exp(x.i, e, nil))
			}
		} else {
			ne := new(big.Int).Neg(e)
			if ne.IsUint64() && ne.Uint64() <= math.MaxUint32 {
				den := new(big.Int).Exp(x.i, ne, nil)
				if den.Sign() == 0 {
					return NewFloat(math.Inf(1))
				}
				return ratNum(new(big.Rat).SetFrac(oneInt, den))
			}
		}
		return NewFloat(math.Pow(x.float64val(), y.float64val()))
	}
	return NewComplex(cmplx.Pow(x.Complex128(), y.Complex128()))
}

// Factorial returns x!. It is defined only for non-negative Integers; any
// other input is a domain error. The product is accumulated iteratively with
// no upper bound, so very large arguments run for a very long time.
func (x *Number) Factorial() (*Number, error) {
	if x.kind != Integer {
		return nil, &DomainError{Msg: "factorial is only defined for integers"}
	}
	if x.i.Sign() < 0 {
		return nil, &DomainError{Msg: "factorial of negative integer"}
	}
	acc := big.NewInt(1)
	k := big.NewInt(1)
	for k.Cmp(x.i) <= 0 {
		acc.Mul(acc, k)
		k.Add(k, oneInt)
	}
	return intNum(acc), nil
}

// Cmp compares x and y after promoting them to a common domain. The second
// result is false when the pair is incomparable: Complex values are not
// ordered, and neither is a NaN float.
func (x *Number) Cmp(y *Number) (int, bool) {
	x, y = promote(x, y)
	switch x.kind {
	case Integer:
		return x.i.Cmp(y.i), true
	case Rational:
		return x.r.Cmp(y.r), true
	case Float:
		if math.IsNaN(x.f) || math.IsNaN(y.f) {
			return 0, false
		}
		switch {
		case x.f < y.f:
			return -1, true
		case x.f > y.f:
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// String formats the value: integers in decimal, rationals as "n/d" (or "n"
// when the denominator is one), floats in shortest 'g' form, complex values
// as "a+bi".
func (n *Number) String() string {
	switch n.kind {
	case Integer:
		return n.i.String()
	case Rational:
		return n.r.RatString()
	case Float:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	default:
		re := strconv.FormatFloat(real(n.c), 'g', -1, 64)
		im := strconv.FormatFloat(imag(n.c), 'g', -1, 64)
		if !strings.HasPrefix(im, "-") {
			im = "+" + im
		}
		return re + im + "i"
	}
}
