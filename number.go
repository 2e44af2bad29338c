package qnum

import (
	"bytes"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/qantal/qnum/qigit"
	"github.com/qantal/qnum/zone"
)

// Reserved raw values.
var (
	rawNaN              = []byte{}
	rawZero             = []byte{0x80}
	rawInfinity         = []byte{0xFF, 0x81}
	rawInfinitesimal    = []byte{0x80, 0x7F}
	rawInfinitesimalNeg = []byte{0x7F, 0x81}
	rawInfinityNeg      = []byte{0x00, 0x7F}
)

// Number is an immutable numeric value: a raw byte string plus its cached
// zone. Two Numbers with equal raw bytes are identical; two with different
// raw bytes may still be numerically equal (plateau aliases), which is why
// Equal compares normalized raw rather than raw identity.
//
// The zero value of Number is NaN. A Number is safe to share across
// goroutines; every method that changes the value returns a new one.
type Number struct {
	raw  []byte
	zone zone.Zone
}

// fromRaw wraps raw without copying; the caller hands over ownership.
func fromRaw(raw []byte) Number {
	return Number{
		raw:  raw,
		zone: zone.Classify(raw),
	}
}

// FromRaw constructs a Number from a copy of its raw encoding.
func FromRaw(raw []byte) Number {
	return fromRaw(append([]byte(nil), raw...))
}

// NaN returns the not-a-number value, whose raw encoding is empty.
func NaN() Number { return fromRaw(rawNaN) }

// Zero returns exactly zero, 0q80.
func Zero() Number { return FromRaw(rawZero) }

// One returns exactly one, 0q82_01.
func One() Number { return FromInt64(1) }

// PositiveInfinity returns 0qFF_81.
func PositiveInfinity() Number { return FromRaw(rawInfinity) }

// NegativeInfinity returns 0q00_7F.
func NegativeInfinity() Number { return FromRaw(rawInfinityNeg) }

// PositiveInfinitesimal returns 0q80_7F.
func PositiveInfinitesimal() Number { return FromRaw(rawInfinitesimal) }

// NegativeInfinitesimal returns 0q7F_81.
func NegativeInfinitesimal() Number { return FromRaw(rawInfinitesimalNeg) }

// From constructs a Number from any supported source: nil (NaN), Number,
// any Go integer type, *big.Int, floats, complex values, decimals, strings
// (q-string or ordinary numeric text), and raw bytes.
func From(v any) (n Number, err error) {
	switch x := v.(type) {
	case nil:
		return NaN(), nil
	case Number:
		return x, nil
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return FromBigInt(new(big.Int).SetUint64(uint64(x)))
	case uint8:
		return FromInt64(int64(x)), nil
	case uint16:
		return FromInt64(int64(x)), nil
	case uint32:
		return FromInt64(int64(x)), nil
	case uint64:
		return FromBigInt(new(big.Int).SetUint64(x))
	case *big.Int:
		return FromBigInt(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case complex64:
		return FromComplex(complex128(x))
	case complex128:
		return FromComplex(x)
	case decimal.Decimal:
		return FromDecimal(x)
	case string:
		return Parse(x)
	case []byte:
		return FromRaw(x), nil
	default:
		return Number{}, ErrConstruct.New("qnum.From(%T) is not supported", v)
	}
}

// Raw returns a copy of the raw encoding. The length is not self-describing
// within the bytes; storage must carry it extrinsically.
func (n Number) Raw() []byte {
	return append([]byte(nil), n.raw...)
}

// Hex renders the raw encoding as bare uppercase hexadecimal, without the
// q-string separators.
func (n Number) Hex() string {
	return qigit.HexEncode(n.raw)
}

// Zone returns the cached zone classification.
func (n Number) Zone() zone.Zone {
	return n.zone
}

// IsNaN reports whether the raw encoding is empty.
func (n Number) IsNaN() bool {
	return len(n.raw) == 0
}

// IsZero reports whether the value is exactly zero. Zero has no plateau:
// only 0q80 is zero.
func (n Number) IsZero() bool {
	return bytes.Equal(n.raw, rawZero)
}

// IsNegative reports whether the value is below zero.
func (n Number) IsNegative() bool {
	return len(n.raw) > 0 && n.raw[0]&0x80 == 0
}

// IsPositive reports whether the value is above zero.
func (n Number) IsPositive() bool {
	return !n.IsNaN() && !n.IsZero() && !n.IsNegative()
}

// IsSuffixed reports whether any suffix blocks trail the root.
func (n Number) IsSuffixed() bool {
	return len(n.raw) > 0 && n.raw[len(n.raw)-1] == 0x00
}
