package qnum

import (
	"github.com/qantal/qnum/suffix"
)

// Plus returns a copy of the value with one more suffix block appended.
// NaN cannot carry suffixes.
func (n Number) Plus(s suffix.Suffix) (out Number, err error) {
	raw, err := suffix.Append(n.raw, s)
	if err != nil {
		return Number{}, err
	}

	return fromRaw(raw), nil
}

// PlusTyped appends a suffix of the given type and payload.
func (n Number) PlusTyped(typ byte, payload []byte) (out Number, err error) {
	s, err := suffix.New(typ, payload)
	if err != nil {
		return Number{}, err
	}

	return n.Plus(s)
}

// Minus strips all suffixes of the given type, failing if none match.
func (n Number) Minus(typ byte) (out Number, err error) {
	raw, err := suffix.Remove(n.raw, typ)
	if err != nil {
		return Number{}, err
	}

	return fromRaw(raw), nil
}

// Suffix returns the first suffix of the given type.
func (n Number) Suffix(typ byte) (s suffix.Suffix, err error) {
	return suffix.Find(n.raw, typ)
}

// SuffixNumber returns the payload of the first suffix of the given type,
// interpreted as a nested raw encoding.
func (n Number) SuffixNumber(typ byte) (out Number, err error) {
	s, err := suffix.Find(n.raw, typ)
	if err != nil {
		return Number{}, err
	}

	return fromRaw(append([]byte(nil), s.Payload...)), nil
}

// Parsed splits the value into its unsuffixed root and its suffixes.
func (n Number) Parsed() (root Number, sfxs []suffix.Suffix, err error) {
	raw, sfxs, err := suffix.Parse(n.raw)
	if err != nil {
		return Number{}, nil, err
	}

	return fromRaw(raw), sfxs, nil
}

// Real returns the unsuffixed root: the real part of a complex value. A
// value whose suffix chain does not parse is returned as-is.
func (n Number) Real() Number {
	root, _, err := suffix.Parse(n.raw)
	if err != nil {
		return n
	}

	return fromRaw(root)
}

// Imag returns the imaginary part: the payload of the imaginary suffix,
// or zero when there is none.
func (n Number) Imag() Number {
	s, err := suffix.Find(n.raw, suffix.TypeImaginary)
	if err != nil {
		return Zero()
	}

	return fromRaw(append([]byte(nil), s.Payload...))
}

// IsComplex reports whether the imaginary part is nonzero.
func (n Number) IsComplex() bool {
	return !n.Imag().Equal(Zero())
}

// IsReal reports whether the imaginary part is zero.
func (n Number) IsReal() bool {
	return !n.IsComplex()
}

// Conjugate returns the value with its imaginary part negated.
func (n Number) Conjugate() (out Number, err error) {
	re := n.Real()

	im := n.Imag()
	if im.Equal(Zero()) {
		return re, nil
	}

	neg, err := im.Neg()
	if err != nil {
		return Number{}, err
	}

	return re.PlusTyped(suffix.TypeImaginary, neg.raw)
}
