// Package suffix implements the typed payload blocks that may trail a
// root raw value.
//
// Format of a nonempty suffix (two hex digits per byte):
//
//	PP .. PP TT LL 00
//
// where:
//
//	PP - 0 to 250 payload bytes
//	TT - type code
//	LL - length: payload bytes plus one for the type, 01 to FB
//	00 - NUL marker
//
// The distinguished empty suffix is two NUL bytes:
//
//	00 00
//
// That is a length of 00 with no type or payload parts; it is not type 00,
// which remains available.
//
// A trailing NUL is what signals that a suffix is present at all, which is
// why an unsuffixed raw value has its trailing 00 qigits stripped. Blocks
// chain: a value may carry any number of suffixes, parsed right to left,
// and a payload may itself be a complete raw number, nesting the encoding.
//
// The codec assigns no behavior to type codes beyond TypeImaginary; they
// are carried as data for the caller to interpret.
package suffix
