package qnum

import (
	"math"
	"math/big"
	"math/cmplx"
)

// Arithmetic promotes both operands to a native representation, computes
// there, and re-wraps. Complex operands use complex128; two exactly-whole
// real operands use exact big integers; everything else, including
// operands whose wholeness is indeterminate, uses float64. IEEE results
// like inf - inf propagate to the NaN raw value.

type kind int

const (
	kindFloat kind = iota
	kindInt
	kindComplex
)

func promote(a, b Number) kind {
	if a.IsComplex() || b.IsComplex() {
		return kindComplex
	}

	aw, err := a.IsWhole()
	if err != nil {
		return kindFloat
	}
	bw, err := b.IsWhole()
	if err != nil {
		return kindFloat
	}

	if aw && bw {
		return kindInt
	}

	return kindFloat
}

func (n Number) binary(
	o Number,
	fi func(a, b *big.Int) *big.Int,
	ff func(a, b float64) float64,
	fc func(a, b complex128) complex128,
) (out Number, err error) {
	switch promote(n, o) {
	case kindComplex:
		c1, err := n.Complex()
		if err != nil {
			return Number{}, err
		}
		c2, err := o.Complex()
		if err != nil {
			return Number{}, err
		}

		return FromComplex(fc(c1, c2))
	case kindInt:
		i1, err := n.Int()
		if err != nil {
			return Number{}, err
		}
		i2, err := o.Int()
		if err != nil {
			return Number{}, err
		}

		return FromBigInt(fi(i1, i2))
	default:
		f1, err := n.Float()
		if err != nil {
			return Number{}, err
		}
		f2, err := o.Float()
		if err != nil {
			return Number{}, err
		}

		return FromFloat(ff(f1, f2)), nil
	}
}

// Add returns n + o.
func (n Number) Add(o Number) (out Number, err error) {
	return n.binary(o,
		func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
		func(a, b float64) float64 { return a + b },
		func(a, b complex128) complex128 { return a + b },
	)
}

// Sub returns n - o.
func (n Number) Sub(o Number) (out Number, err error) {
	return n.binary(o,
		func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
		func(a, b float64) float64 { return a - b },
		func(a, b complex128) complex128 { return a - b },
	)
}

// Mul returns n * o.
func (n Number) Mul(o Number) (out Number, err error) {
	return n.binary(o,
		func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
		func(a, b float64) float64 { return a * b },
		func(a, b complex128) complex128 { return a * b },
	)
}

// Div returns n / o. A zero real divisor fails with the division error
// class. Whole operands that divide evenly keep exact integer precision;
// otherwise both promote to float64.
func (n Number) Div(o Number) (out Number, err error) {
	k := promote(n, o)

	if k == kindComplex {
		c2, err := o.Complex()
		if err != nil {
			return Number{}, err
		}
		if c2 == 0 {
			return Number{}, ErrDivision.New("complex division of %s by zero", n)
		}

		c1, err := n.Complex()
		if err != nil {
			return Number{}, err
		}

		return FromComplex(c1 / c2)
	}

	if o.Real().IsZero() {
		return Number{}, ErrDivision.New("division of %s by zero", n)
	}

	if k == kindInt {
		i1, err := n.Int()
		if err != nil {
			return Number{}, err
		}
		i2, err := o.Int()
		if err != nil {
			return Number{}, err
		}

		q, r := new(big.Int).QuoRem(i1, i2, new(big.Int))
		if r.Sign() == 0 {
			return FromBigInt(q)
		}
	}

	f1, err := n.Float()
	if err != nil {
		return Number{}, err
	}
	f2, err := o.Float()
	if err != nil {
		return Number{}, err
	}

	return FromFloat(f1 / f2), nil
}

// Pow returns n ** o. Whole operands with a nonnegative exponent use
// exact integer exponentiation, failing early when the result would be
// ludicrous; everything else promotes.
func (n Number) Pow(o Number) (out Number, err error) {
	switch promote(n, o) {
	case kindComplex:
		c1, err := n.Complex()
		if err != nil {
			return Number{}, err
		}
		c2, err := o.Complex()
		if err != nil {
			return Number{}, err
		}

		return FromComplex(cmplx.Pow(c1, c2))
	case kindInt:
		i1, err := n.Int()
		if err != nil {
			return Number{}, err
		}
		i2, err := o.Int()
		if err != nil {
			return Number{}, err
		}

		if i2.Sign() >= 0 {
			if i1.BitLen() > 1 {
				if !i2.IsInt64() || (int64(i1.BitLen())-1)*i2.Int64() >= 1001 {
					return Number{}, ErrUnimplemented.New("%s ** %s would be ludicrous", n, o)
				}
			}

			return FromBigInt(new(big.Int).Exp(i1, i2, nil))
		}
	}

	f1, err := n.Float()
	if err != nil {
		return Number{}, err
	}
	f2, err := o.Float()
	if err != nil {
		return Number{}, err
	}

	return FromFloat(math.Pow(f1, f2)), nil
}

// Neg returns -n.
func (n Number) Neg() (out Number, err error) {
	if n.IsComplex() {
		c, err := n.Complex()
		if err != nil {
			return Number{}, err
		}

		return FromComplex(-c)
	}

	if whole, err := n.IsWhole(); err == nil && whole {
		i, err := n.Int()
		if err != nil {
			return Number{}, err
		}

		return FromBigInt(new(big.Int).Neg(i))
	}

	f, err := n.Float()
	if err != nil {
		return Number{}, err
	}

	return FromFloat(-f), nil
}

// Abs returns the absolute value; for a complex value, its modulus.
func (n Number) Abs() (out Number, err error) {
	if n.IsComplex() {
		c, err := n.Complex()
		if err != nil {
			return Number{}, err
		}

		return FromFloat(cmplx.Abs(c)), nil
	}

	if whole, err := n.IsWhole(); err == nil && whole {
		i, err := n.Int()
		if err != nil {
			return Number{}, err
		}

		return FromBigInt(new(big.Int).Abs(i))
	}

	f, err := n.Float()
	if err != nil {
		return Number{}, err
	}

	return FromFloat(math.Abs(f)), nil
}

// Inc returns n + 1 computed exactly from the integer value, the
// operation sequential-identifier consumers rely on.
func (n Number) Inc() (out Number, err error) {
	i, err := n.Int()
	if err != nil {
		return Number{}, err
	}

	return FromBigInt(i.Add(i, big.NewInt(1)))
}
