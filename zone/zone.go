package zone

import "bytes"

// Zone names the region of the raw byte-string space a value falls in.
// Values are ordered: a zone compares less than another exactly when every
// number in it is less than every number in the other.
type Zone int

const (
	NaN Zone = iota
	TransfiniteNeg
	LudicrousLargeNeg
	Negative
	FractionalNeg
	LudicrousSmallNeg
	InfinitesimalNeg
	Zero
	Infinitesimal
	LudicrousSmall
	Fractional
	Positive
	LudicrousLarge
	Transfinite
)

// boundaries lists every zone with its minimum raw value, in descending
// raw order. The table backs Min, String, and the scan classifier the
// tests cross-check against Classify.
var boundaries = []struct {
	zone Zone
	min  []byte
	name string
}{
	{Transfinite, []byte{0xFF, 0x80}, "Transfinite"},
	{LudicrousLarge, []byte{0xFF}, "LudicrousLarge"},
	{Positive, []byte{0x82}, "Positive"},
	{Fractional, []byte{0x81}, "Fractional"},
	{LudicrousSmall, []byte{0x80, 0x80}, "LudicrousSmall"},
	{Infinitesimal, []byte{0x80, 0x00}, "Infinitesimal"},
	{Zero, []byte{0x80}, "Zero"},
	{InfinitesimalNeg, []byte{0x7F, 0x80}, "InfinitesimalNeg"},
	{LudicrousSmallNeg, []byte{0x7F, 0x00}, "LudicrousSmallNeg"},
	{FractionalNeg, []byte{0x7E, 0x00}, "FractionalNeg"},
	{Negative, []byte{0x01}, "Negative"},
	{LudicrousLargeNeg, []byte{0x00, 0x80}, "LudicrousLargeNeg"},
	{TransfiniteNeg, []byte{0x00}, "TransfiniteNeg"},
	{NaN, []byte{}, "NaN"},
}

// Min returns the zone's minimum raw value. The caller must not modify it.
func (z Zone) Min() []byte {
	for _, b := range boundaries {
		if b.zone == z {
			return b.min
		}
	}

	return nil
}

func (z Zone) String() string {
	for _, b := range boundaries {
		if b.zone == z {
			return b.name
		}
	}

	return "Invalid"
}

// Classify returns the zone a raw byte string falls in. It is total: every
// byte string classifies to exactly one zone.
func Classify(raw []byte) Zone {
	switch c := bytes.Compare(raw, Zero.Min()); {
	case c > 0:
		if bytes.Compare(raw, Positive.Min()) >= 0 {
			if bytes.Compare(raw, LudicrousLarge.Min()) >= 0 {
				if bytes.Compare(raw, Transfinite.Min()) >= 0 {
					return Transfinite
				}

				return LudicrousLarge
			}

			return Positive
		}

		if bytes.Compare(raw, Fractional.Min()) >= 0 {
			return Fractional
		} else if bytes.Compare(raw, LudicrousSmall.Min()) >= 0 {
			return LudicrousSmall
		}

		return Infinitesimal
	case c == 0:
		return Zero
	}

	if bytes.Compare(raw, FractionalNeg.Min()) > 0 {
		if bytes.Compare(raw, LudicrousSmallNeg.Min()) >= 0 {
			if bytes.Compare(raw, InfinitesimalNeg.Min()) >= 0 {
				return InfinitesimalNeg
			}

			return LudicrousSmallNeg
		}

		return FractionalNeg
	}

	if bytes.Compare(raw, Negative.Min()) >= 0 {
		return Negative
	} else if bytes.Compare(raw, LudicrousLargeNeg.Min()) >= 0 {
		return LudicrousLargeNeg
	} else if bytes.Compare(raw, TransfiniteNeg.Min()) >= 0 {
		return TransfiniteNeg
	}

	return NaN
}

// IsReasonablyNonzero reports whether the zone carries a decodable
// qex/qan pair: a finite, implemented exponent and a nonzero value.
func (z Zone) IsReasonablyNonzero() bool {
	switch z {
	case Positive, Fractional, FractionalNeg, Negative:
		return true
	}

	return false
}

// MaybePlateau reports whether the zone can hold plateau aliases: raw
// values at an integral power of 256 that have both a compact and a
// canonical spelling. Exactly the reasonably-nonzero zones qualify.
func (z Zone) MaybePlateau() bool {
	return z.IsReasonablyNonzero()
}

// IsTransfinite reports whether the zone is reserved for infinite
// exponents.
func (z Zone) IsTransfinite() bool {
	return z == Transfinite || z == TransfiniteNeg
}

// IsLudicrous reports whether the zone's exponents fall outside the
// implemented range on either end.
func (z Zone) IsLudicrous() bool {
	switch z {
	case LudicrousLarge, LudicrousSmall, LudicrousSmallNeg, LudicrousLargeNeg:
		return true
	}

	return false
}

// IsEssentiallyZero reports whether every value in the zone converts to
// zero in machine arithmetic: exact zero, the infinitesimals, and the
// ludicrously small zones on both sides.
func (z Zone) IsEssentiallyZero() bool {
	switch z {
	case LudicrousSmall, Infinitesimal, Zero, InfinitesimalNeg, LudicrousSmallNeg:
		return true
	}

	return false
}
