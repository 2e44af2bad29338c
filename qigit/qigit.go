package qigit

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of qigit errors.
var Error = errs.Class("qigit")

// Exp256 returns 256**e for nonnegative e.
func Exp256(e int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(e)*8)
}

// Log256 returns the floor of the base-256 logarithm of a positive integer.
func Log256(i *big.Int) int {
	return (i.BitLen() - 1) >> 3
}

// Pack encodes an integer as a big-endian qigit string of the given width.
// Negative integers encode as two's complement in width qigits. A width of
// zero or less selects the minimum width for the magnitude.
func Pack(i *big.Int, width int) []byte {
	if width <= 0 {
		if i.Sign() == 0 {
			width = 1
		} else {
			width = Log256(new(big.Int).Abs(i)) + 1
		}
	}

	// Mod is Euclidean, so this is two's complement for negative i and a
	// truncating wrap for an undersized width.
	v := new(big.Int).Mod(i, Exp256(width))

	return v.FillBytes(make([]byte, width))
}

// Unpack decodes a qigit string as an unsigned big-endian magnitude.
func Unpack(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ShiftLeftward shifts positive amounts left and negative amounts right.
// Right shifts floor (toward negative infinity) like big.Int.Rsh.
func ShiftLeftward(i *big.Int, bits int) *big.Int {
	if bits < 0 {
		return new(big.Int).Rsh(i, uint(-bits))
	}

	return new(big.Int).Lsh(i, uint(bits))
}

// RightStrip00 removes trailing zero qigits.
func RightStrip00(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}

// LeftPad00 pads b with leading zero qigits up to width bytes.
func LeftPad00(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}

	out := make([]byte, width)
	copy(out[width-len(b):], b)

	return out
}

// HexEncode renders a qigit string as uppercase hexadecimal.
func HexEncode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexDecode parses a hexadecimal string (either case) into a qigit string.
func HexDecode(s string) (b []byte, err error) {
	b, err = hex.DecodeString(s)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return b, nil
}
