package qnum

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/qantal/qnum/qigit"
	"github.com/qantal/qnum/zone"
)

// FromDecimal constructs a Number from a decimal value. Integers convert
// exactly at any magnitude below the ludicrous threshold. Non-integers
// pass through float64, since a base-10 fraction like 0.1 has no finite
// base-256 expansion; the precision is then that of FromFloat.
func FromDecimal(d decimal.Decimal) (n Number, err error) {
	if d.IsInteger() {
		return FromBigInt(d.BigInt())
	}

	f, _ := d.Float64()

	return FromFloat(f), nil
}

// Decimal converts to an exact decimal. Every reasonably-nonzero value
// terminates in base 10, because 256^-k scales to 5^(8k) * 10^(-8k), so
// no precision is lost in either direction. The essentially-zero zones
// convert to zero; transfinite, ludicrous, and NaN values fail.
func (n Number) Decimal() (d decimal.Decimal, err error) {
	x := n.Real()
	switch {
	case x.zone.IsTransfinite():
		return decimal.Decimal{}, ErrOverflow.New("infinity cannot be represented by decimals")
	case x.zone == zone.NaN:
		return decimal.Decimal{}, ErrNaN.New("not-a-number cannot be represented by decimals")
	case x.zone.IsLudicrous():
		return decimal.Decimal{}, ErrUnimplemented.New("ludicrous numbers are not implemented")
	case x.zone.IsEssentiallyZero():
		return decimal.Zero, nil
	}

	m := x.normalizedPlateau()

	qan, qigits, err := m.qan()
	if err != nil {
		return decimal.Decimal{}, err
	}
	qex, err := m.Qex()
	if err != nil {
		return decimal.Decimal{}, err
	}

	if m.IsNegative() {
		qan.Sub(qan, qigit.Exp256(qigits))
	}

	shift := qex - qigits
	if shift >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(qan, uint(shift)*8), 0), nil
	}

	k := -shift
	coef := new(big.Int).Mul(qan, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(8*k)), nil))

	return decimal.NewFromBigInt(coef, int32(-8*k)), nil
}
