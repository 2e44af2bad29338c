package qnum

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two Numbers denote the same value. Plateau
// aliases and explicit zero imaginary suffixes compare equal because both
// sides normalize first. Equality is total; it never fails.
func (n Number) Equal(o Number) bool {
	return bytes.Equal(n.Normalized().raw, o.Normalized().raw)
}

// EqualValue compares against any supported source value. A value From
// cannot construct compares unequal rather than failing, so equality
// against foreign types never errors even though ordering does.
func (n Number) EqualValue(v any) bool {
	o, err := From(v)
	if err != nil {
		return false
	}

	return n.Equal(o)
}

// Cmp orders two Numbers: -1, 0, or +1. Complex values are unordered, so
// a nonzero imaginary part on either side fails.
func (n Number) Cmp(o Number) (c int, err error) {
	if n.IsComplex() || o.IsComplex() {
		return 0, ErrIncomparable.New("complex values are unordered")
	}

	return bytes.Compare(n.Normalized().raw, o.Normalized().raw), nil
}

// Less reports whether n orders before o.
func (n Number) Less(o Number) (less bool, err error) {
	c, err := n.Cmp(o)
	if err != nil {
		return false, err
	}

	return c < 0, nil
}

// Greater reports whether n orders after o.
func (n Number) Greater(o Number) (greater bool, err error) {
	c, err := n.Cmp(o)
	if err != nil {
		return false, err
	}

	return c > 0, nil
}

// Hash returns a 64-bit hash of the normalized raw encoding, so plateau
// aliases of the same value hash alike.
func (n Number) Hash() uint64 {
	return xxhash.Sum64(n.Normalized().raw)
}
