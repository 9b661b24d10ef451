package funcs

import (
	"errors"
	"math"
	"math/big"
	"math/bits"

	"github.com/exactcalc/exact"
)

// Bitwise primitives are defined on Integers only; any other domain is a
// type mismatch. Shifts operate on the arbitrary-precision value, rotations
// on its low 64 bits.

func init() {
	register(band, "band")
	register(bor, "bor")
	register(bxor, "bxor")
	register(bnot, "bnot")
	register(lsh, "lsh")
	register(rsh, "rsh")
	register(rol, "rol")
	register(ror, "ror")
}

func toInt(n *exact.Number) (*big.Int, error) {
	i, ok := n.Int()
	if !ok {
		return nil, &exact.TypeError{Want: "Integer", Got: n.Kind().String()}
	}
	return i, nil
}

func twoInts(name string, args []*exact.Number) (*big.Int, *big.Int, error) {
	if len(args) != 2 {
		return nil, nil, &exact.ArityError{Func: name, Want: 2}
	}
	a, err := toInt(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := toInt(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func band(args []*exact.Number) (*exact.Number, error) {
	a, b, err := twoInts("band", args)
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.And(a, b)), nil
}

func bor(args []*exact.Number) (*exact.Number, error) {
	a, b, err := twoInts("bor", args)
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.Or(a, b)), nil
}

func bxor(args []*exact.Number) (*exact.Number, error) {
	a, b, err := twoInts("bxor", args)
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.Xor(a, b)), nil
}

func bnot(args []*exact.Number) (*exact.Number, error) {
	if len(args) != 1 {
		return nil, &exact.ArityError{Func: "bnot", Want: 1}
	}
	a, err := toInt(args[0])
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.Not(a)), nil
}

// shiftCount converts a shift amount, rejecting negative or absurd counts.
func shiftCount(b *big.Int) (uint, error) {
	if b.Sign() < 0 || !b.IsUint64() || b.Uint64() > math.MaxUint32 {
		return 0, errors.New("shift count too large or negative")
	}
	return uint(b.Uint64()), nil
}

func lsh(args []*exact.Number) (*exact.Number, error) {
	a, b, err := twoInts("lsh", args)
	if err != nil {
		return nil, err
	}
	k, err := shiftCount(b)
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.Lsh(a, k)), nil
}

func rsh(args []*exact.Number) (*exact.Number, error) {
	a, b, err := twoInts("rsh", args)
	if err != nil {
		return nil, err
	}
	k, err := shiftCount(b)
	if err != nil {
		return nil, err
	}
	return exact.NewInt(a.Rsh(a, k)), nil
}

// rotate64 rotates the low 64 bits of a; k is positive for left rotation.
func rotate64(name string, args []*exact.Number, left bool) (*exact.Number, error) {
	a, b, err := twoInts(name, args)
	if err != nil {
		return nil, err
	}
	if !a.IsInt64() || b.Sign() < 0 || !b.IsUint64() || b.Uint64() > math.MaxUint32 {
		return nil, errors.New("rotation arguments too large")
	}
	k := int(b.Uint64() % 64)
	if !left {
		k = -k
	}
	r := int64(bits.RotateLeft64(uint64(a.Int64()), k))
	return exact.NewInt64(r), nil
}

func rol(args []*exact.Number) (*exact.Number, error) {
	return rotate64("rol", args, true)
}

func ror(args []*exact.Number) (*exact.Number, error) {
	return rotate64("ror", args, false)
}
