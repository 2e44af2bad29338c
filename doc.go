// Package qnum is a self-describing binary codec for integers, floats,
// and complex numbers of arbitrary magnitude and precision.
//
// A Number's raw encoding has one load-bearing property: unsigned byte
// comparison of two raw strings orders them exactly like the numbers they
// encode. Raw values can therefore be used directly as sortable keys in
// byte-oriented storage with no custom comparator.
//
// The raw layout is three parts in sequence:
//
//	| qex    | 1 byte         | exponent field                        |
//	| qan    | 0..N qigits    | base-256 big-endian significand       |
//	| suffix | 0..N blocks    | typed payload blocks (package suffix) |
//
// For a positive integer the qex is 0x81 plus the base-256 exponent, so
// larger magnitudes sort later; for negatives it is 0x7E minus the
// exponent, so they sort earlier, and the whole mapping stays monotonic
// through zero. Fractions in (-1, 1) carry a two-byte qex. Values render
// as q-strings: "0q" plus hex, an underscore after the qex, and a double
// underscore before each suffix:
//
//	 1    0q82_01
//	-1    0q7D_FF
//	 256  0q83_01
//	 0.5  0q81FF_80
//	 0    0q80
//	+inf  0qFF_81
//	 NaN  0q
//	 3+4i 0q82_03__8204_690300
//
// Some raw strings alias: 0q83 and 0q83_01 both encode 256 ("plateau"
// aliases at powers of 256). Equal compares normalized raw, so aliases
// compare equal; Normalized produces the canonical spelling, required
// before using raw bytes as a map or index key across differently-produced
// values. Producers emit canonical forms; storage may keep compact ones.
//
// Exponent magnitudes beyond ~2^1000 ("ludicrous") and true infinite
// exponents ("transfinite") are reserved zones without arithmetic support;
// operations that would produce them fail explicitly rather than truncate.
package qnum
