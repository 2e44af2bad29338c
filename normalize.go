package qnum

import (
	"github.com/qantal/qnum/suffix"
)

// Normalized returns the canonical spelling of the value: plateau aliases
// collapse to their one-qigit form and an explicit zero imaginary suffix
// is stripped, so 3+0i equals plain 3. Construction does not normalize;
// the compact forms are legal, distinct encodings of the same value, and
// storage may prefer them. Normalize before treating raw bytes as a
// comparison or hash key across differently-produced values.
func (n Number) Normalized() Number {
	return n.normalizedPlateau().normalizedImaginary()
}

// normalizedPlateau collapses an empty qan, or a qan opening with the
// zone's boundary qigit (00 positive, FF negative), into the canonical
// form: qex + 01 on the positive side, qex-1 + FF on the negative side.
// Suffixes re-append unchanged.
//
// A boundary qigit after the first one is deliberately not treated as a
// plateau; that corner is left undefined. Empty suffixes also survive.
func (n Number) normalizedPlateau() Number {
	if !n.zone.MaybePlateau() {
		return n
	}

	root, sfxs, err := suffix.Parse(n.raw)
	if err != nil {
		return n
	}

	offset, err := fromRaw(root).qanOffset()
	if err != nil {
		return n
	}
	if offset > len(root) {
		offset = len(root)
	}

	qex := root[:offset]
	qan := root[offset:]

	var canon []byte
	switch {
	case len(qan) == 0:
		if n.IsPositive() {
			canon = append(append([]byte(nil), qex...), 0x01)
		} else {
			canon = append(append([]byte(nil), qex[:len(qex)-1]...), qex[len(qex)-1]-1, 0xFF)
		}
	case n.IsPositive() && qan[0] == 0x00:
		canon = append(append([]byte(nil), qex...), 0x01)
	case n.IsNegative() && qan[0] == 0xFF:
		canon = append(append([]byte(nil), qex...), 0xFF)
	default:
		return n
	}

	for _, s := range sfxs {
		canon = append(canon, s.Raw()...)
	}

	return fromRaw(canon)
}

// normalizedImaginary strips the imaginary suffixes when every one of
// them is zero. A lone nonzero imaginary keeps them all, which leaves
// room for quaternion-style extensions carrying several.
func (n Number) normalizedImaginary() Number {
	_, sfxs, err := suffix.Parse(n.raw)
	if err != nil {
		return n
	}

	found := false
	for _, s := range sfxs {
		if !s.Typed || s.Type != suffix.TypeImaginary {
			continue
		}

		found = true
		if !fromRaw(append([]byte(nil), s.Payload...)).equalZero() {
			return n
		}
	}
	if !found {
		return n
	}

	out, err := n.Minus(suffix.TypeImaginary)
	if err != nil {
		return n
	}

	return out
}

// equalZero compares against zero through plateau normalization alone,
// avoiding the Equal -> Normalized -> Equal recursion on nested payloads.
func (n Number) equalZero() bool {
	return n.normalizedPlateau().IsZero()
}
