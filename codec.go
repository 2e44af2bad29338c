package qnum

import (
	"math"
	"math/big"

	"github.com/qantal/qnum/qigit"
	"github.com/qantal/qnum/suffix"
	"github.com/qantal/qnum/zone"
)

// QigitsDefault is the float conversion precision: 8 base-256 digits hold
// 57-64 bits, enough for the 53-bit significand of an IEEE double, so
// FromFloat round-trips every float64 exactly.
const QigitsDefault = 8

// Integers at or beyond 256^126 would need a qex past 0xFE and fall into
// the unimplemented ludicrous zones.
const maxReasonableExp256 = 125

var maxReasonableFloat = math.Ldexp(1, 1000)

// FromInt64 constructs a Number from a machine integer.
func FromInt64(i int64) Number {
	n, _ := FromBigInt(big.NewInt(i))

	return n
}

// FromBigInt constructs a Number from an integer of any magnitude up to
// the ludicrous threshold of ~2^1000.
func FromBigInt(i *big.Int) (n Number, err error) {
	switch i.Sign() {
	case 0:
		return Zero(), nil
	case 1:
		return rawFromInt(i, func(e int) int { return 0x81 + e })
	default:
		return rawFromInt(i, func(e int) int { return 0x7E - e })
	}
}

// rawFromInt converts a nonzero integer to raw form. qexEncode converts
// the base-256 exponent to the qex byte.
func rawFromInt(i *big.Int, qexEncode func(int) int) (n Number, err error) {
	qan00 := qigit.Pack(i, 0)
	if len(qan00) > maxReasonableExp256 {
		return Number{}, ErrUnimplemented.New("ludicrous magnitude: %d qigits", len(qan00))
	}
	qan := qigit.RightStrip00(qan00)

	raw := make([]byte, 0, len(qan)+1)
	raw = append(raw, byte(qexEncode(len(qan00))))
	raw = append(raw, qan...)

	return fromRaw(raw), nil
}

// FromFloat constructs a Number from a float64 at the default precision.
func FromFloat(x float64) Number {
	return FromFloatQigits(x, 0)
}

// FromFloatQigits constructs a Number from a float64 with the given qan
// precision in base-256 digits; qigits of zero or less selects the
// default. Exact zero maps to 0q80 regardless of sign. Magnitudes at or
// beyond 2^1000 map to the infinity raw values.
func FromFloatQigits(x float64, qigits int) Number {
	if qigits <= 0 {
		qigits = QigitsDefault
	}

	switch {
	case math.IsNaN(x):
		return NaN()
	case x >= maxReasonableFloat:
		return PositiveInfinity()
	case x >= 1.0:
		return fromRaw(rawFromFloat(x, func(e int) int { return 0x81 + e }, qigits))
	case x > 0.0:
		return fromRaw(append([]byte{0x81}, rawFromFloat(x, func(e int) int { return 0xFF + e }, qigits)...))
	case x == 0.0:
		return Zero()
	case x > -1.0:
		return fromRaw(append([]byte{0x7E}, rawFromFloat(x, func(e int) int { return 0x00 - e }, qigits)...))
	case x > -maxReasonableFloat:
		return fromRaw(rawFromFloat(x, func(e int) int { return 0x7E - e }, qigits))
	default:
		return NegativeInfinity()
	}
}

// rawFromFloat converts a nonzero finite float to qex+qan. The base-2
// decomposition regroups into a base-256 exponent and a significand in
// [1/256, 1), which is scaled to qigits digits and rounded half away from
// zero.
func rawFromFloat(x float64, qexEncode func(int) int, qigits int) []byte {
	frac, exp2 := math.Frexp(x)

	e256 := floorDiv(exp2+7, 8)
	zeroToSeven := exp2 + 7 - 8*e256

	scaled := math.Ldexp(frac, zeroToSeven-7+8*qigits)
	if x >= 0 {
		scaled += 0.5
	} else {
		scaled -= 0.5
	}

	// big.Float.Int truncates toward zero, completing the rounding.
	qanInt, _ := new(big.Float).SetFloat64(scaled).Int(nil)

	qan00 := qigit.Pack(qanInt, qigits)
	qan := qigit.RightStrip00(qan00)

	raw := make([]byte, 0, len(qan)+1)
	raw = append(raw, byte(qexEncode(e256)))
	raw = append(raw, qan...)

	return raw
}

// FromComplex constructs a Number from a complex value: the real part is
// the root and the imaginary part rides in an imaginary-typed suffix. The
// suffix is added even for a zero imaginary part; Normalized strips it.
func FromComplex(c complex128) (n Number, err error) {
	re := FromFloat(real(c))
	im := FromFloat(imag(c))

	raw, err := suffix.Append(re.raw, suffix.Suffix{
		Type:    suffix.TypeImaginary,
		Typed:   true,
		Payload: im.raw,
	})
	if err != nil {
		return Number{}, err
	}

	return fromRaw(raw), nil
}

// qanOffset returns where the qan starts in the raw encoding.
func (n Number) qanOffset() (offset int, err error) {
	switch n.zone {
	case zone.Positive, zone.Negative:
		return 1, nil
	case zone.Fractional, zone.FractionalNeg:
		return 2, nil
	default:
		return 0, ErrQan.New("no qantissa in zone %s", n.zone)
	}
}

// Qex returns the base-256 exponent. Only the reasonably-nonzero zones
// have one.
func (n Number) Qex() (qex int, err error) {
	switch n.zone {
	case zone.Positive:
		return int(n.raw[0]) - 0x81, nil
	case zone.Negative:
		return 0x7E - int(n.raw[0]), nil
	case zone.Fractional:
		if len(n.raw) < 2 {
			return 0, ErrQex.New("truncated fractional raw %q", n.Hex())
		}

		return int(n.raw[1]) - 0xFF, nil
	case zone.FractionalNeg:
		if len(n.raw) < 2 {
			return 0, ErrQex.New("truncated fractional raw %q", n.Hex())
		}

		return 0x00 - int(n.raw[1]), nil
	default:
		return 0, ErrQex.New("no qexponent in zone %s", n.zone)
	}
}

// Qan returns the significand of the unsuffixed root as an unsigned
// magnitude, along with its length in qigits.
func (n Number) Qan() (qan *big.Int, qigits int, err error) {
	return n.Real().qan()
}

func (n Number) qan() (_ *big.Int, qigits int, err error) {
	offset, err := n.qanOffset()
	if err != nil {
		return nil, 0, err
	}
	if offset > len(n.raw) {
		offset = len(n.raw)
	}

	qanRaw := n.raw[offset:]

	return qigit.Unpack(qanRaw), len(qanRaw), nil
}

// Int converts to an exact integer of any magnitude. The essentially-zero
// zones legitimately convert to 0; transfinite zones and NaN fail; a
// negative value's discarded fraction bits floor toward zero, not toward
// negative infinity.
func (n Number) Int() (i *big.Int, err error) {
	x := n.Real()
	switch x.zone {
	case zone.Transfinite:
		return nil, ErrOverflow.New("positive infinity cannot be represented by integers")
	case zone.TransfiniteNeg:
		return nil, ErrOverflow.New("negative infinity cannot be represented by integers")
	case zone.NaN:
		return nil, ErrNaN.New("not-a-number cannot be represented by integers")
	case zone.LudicrousLarge, zone.LudicrousLargeNeg:
		return nil, ErrUnimplemented.New("ludicrous numbers are not implemented")
	case zone.Positive:
		return x.intPositive()
	case zone.Negative:
		return x.intNegative()
	default:
		return big.NewInt(0), nil
	}
}

// Int64 converts to a machine integer, failing if the value is outside
// the int64 range.
func (n Number) Int64() (i int64, err error) {
	b, err := n.Int()
	if err != nil {
		return 0, err
	}
	if !b.IsInt64() {
		return 0, ErrOverflow.New("%s does not fit in 64 bits", n)
	}

	return b.Int64(), nil
}

func (n Number) intPositive() (i *big.Int, err error) {
	m := n.normalizedPlateau()

	qan, qigits, err := m.qan()
	if err != nil {
		return nil, err
	}
	qex, err := m.Qex()
	if err != nil {
		return nil, err
	}

	return qigit.ShiftLeftward(qan, (qex-qigits)*8), nil
}

func (n Number) intNegative() (i *big.Int, err error) {
	qan, qigits, err := n.qan()
	if err != nil {
		return nil, err
	}
	qex, err := n.Qex()
	if err != nil {
		return nil, err
	}

	qanNeg := new(big.Int).Sub(qan, qigit.Exp256(qigits))
	out := qigit.ShiftLeftward(qanNeg, (qex-qigits)*8)

	if qex-qigits < 0 {
		// The right shift floored toward negative infinity; any dropped
		// fraction bits mean flooring toward zero needs one back.
		mask := new(big.Int).Sub(qigit.Exp256(qigits-qex), big.NewInt(1))
		extraneous := new(big.Int).And(qanNeg, mask)
		if extraneous.Sign() != 0 {
			out.Add(out, big.NewInt(1))
		}
	}

	return out, nil
}

// Float converts to a float64. Extreme zones take their documented
// defaults: ludicrous/transfinite map to the infinities, the
// essentially-zero zones to signed zero, NaN to NaN. A complex value
// fails; use Complex.
func (n Number) Float() (x float64, err error) {
	if n.IsComplex() {
		return 0, ErrComplex.New("%s has an imaginary part, use Complex", n)
	}

	r := n.Real()
	switch r.zone {
	case zone.Transfinite, zone.LudicrousLarge:
		return math.Inf(1), nil
	case zone.Positive, zone.Fractional, zone.FractionalNeg, zone.Negative:
		return r.toFloat(), nil
	case zone.LudicrousSmall, zone.Infinitesimal, zone.Zero:
		return 0.0, nil
	case zone.InfinitesimalNeg, zone.LudicrousSmallNeg:
		return math.Copysign(0, -1), nil
	case zone.LudicrousLargeNeg, zone.TransfiniteNeg:
		return math.Inf(-1), nil
	default:
		return math.NaN(), nil
	}
}

// toFloat reconstructs a reasonably-nonzero value. The qan scales through
// big.Float, so a qan of hundreds of qigits cannot overflow an
// intermediate; the final rounding to float64 yields ±Inf only when the
// value itself is out of float range.
func (n Number) toFloat() float64 {
	qex, err := n.Qex()
	if err != nil {
		return 0.0
	}
	qan, qigits, err := n.qan()
	if err != nil {
		return 0.0
	}

	if n.IsNegative() {
		qan.Sub(qan, qigit.Exp256(qigits))
		if qigits > 0 && qan.Cmp(new(big.Int).Neg(qigit.Exp256(qigits-1))) >= 0 {
			// Plateau alias: a leading FF qigit folds into the exponent.
			qan, qigits = big.NewInt(-1), 1
		}
	} else {
		if qigits == 0 || qan.Cmp(qigit.Exp256(qigits-1)) <= 0 {
			// Plateau alias: empty or leading-00 qan means 256^(qex-1).
			qan, qigits = big.NewInt(1), 1
		}
	}

	f := new(big.Float).SetInt(qan)
	f.SetMantExp(f, 8*(qex-qigits))
	out, _ := f.Float64()

	return out
}

// Complex converts to a complex128 from the root and the imaginary
// suffix.
func (n Number) Complex() (c complex128, err error) {
	re, err := n.Real().Float()
	if err != nil {
		return 0, err
	}
	im, err := n.Imag().Float()
	if err != nil {
		return 0, err
	}

	return complex(re, im), nil
}

// IsWhole reports whether the value is an exact integer. It fails for the
// ludicrous and transfinite zones and for NaN, where wholeness cannot be
// determined.
func (n Number) IsWhole() (whole bool, err error) {
	x := n.Real()
	switch {
	case x.zone == zone.Positive || x.zone == zone.Negative:
		qan, qigits, err := x.qan()
		if err != nil {
			return false, err
		}
		qex, err := x.Qex()
		if err != nil {
			return false, err
		}

		if qex-qigits >= 0 {
			return true, nil
		}

		rem := new(big.Int).Mod(qan, qigit.Exp256(qigits-qex))
		return rem.Sign() == 0, nil
	case x.zone == zone.Zero:
		return true, nil
	case x.zone == zone.Fractional || x.zone == zone.FractionalNeg ||
		x.zone.IsEssentiallyZero():
		return false, nil
	default:
		return false, ErrWhole.New("cannot determine wholeness of %s", x)
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
