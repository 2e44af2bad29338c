package qigit

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	type TC struct {
		name  string
		width int
		data  []byte
	}

	tcs := []TC{
		{
			name:  "0",
			width: 0,
			data:  []byte{0x00},
		},
		{
			name:  "1",
			width: 0,
			data:  []byte{0x01},
		},
		{
			name:  "170",
			width: 2,
			data:  []byte{0x00, 0xAA},
		},
		{
			name:  "255",
			width: 0,
			data:  []byte{0xFF},
		},
		{
			name:  "255",
			width: 2,
			data:  []byte{0x00, 0xFF},
		},
		{
			name:  "256",
			width: 0,
			data:  []byte{0x01, 0x00},
		},
		{
			name:  "-1",
			width: 0,
			data:  []byte{0xFF},
		},
		{
			name:  "-170",
			width: 2,
			data:  []byte{0xFF, 0x56},
		},
		{
			name:  "-255",
			width: 0,
			data:  []byte{0x01},
		},
		{
			name:  "-255",
			width: 2,
			data:  []byte{0xFF, 0x01},
		},
		{
			name:  "-256",
			width: 0,
			data:  []byte{0xFF, 0x00},
		},
		{
			name:  "-257",
			width: 0,
			data:  []byte{0xFE, 0xFF},
		},
		{
			name:  "-2147483648",
			width: 0,
			data:  []byte{0x80, 0x00, 0x00, 0x00},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.name, tc.width), func(t *testing.T) {
			v := new(big.Int)
			err := v.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)

			require.Equal(t, tc.data, Pack(v, tc.width))

			if v.Sign() >= 0 {
				require.Equal(t, 0, Unpack(tc.data).Cmp(v))
			} else {
				// A negative packs as its two's complement in the
				// packed width.
				c := new(big.Int).Add(v, Exp256(len(tc.data)))
				require.Equal(t, 0, Unpack(tc.data).Cmp(c))
			}
		})
	}
}

func TestExp256Log256(t *testing.T) {
	require.Equal(t, int64(1), Exp256(0).Int64())
	require.Equal(t, int64(256), Exp256(1).Int64())
	require.Equal(t, int64(16777216), Exp256(3).Int64())

	require.Equal(t, 0, Log256(big.NewInt(1)))
	require.Equal(t, 0, Log256(big.NewInt(255)))
	require.Equal(t, 1, Log256(big.NewInt(256)))
	require.Equal(t, 1, Log256(big.NewInt(65535)))
	require.Equal(t, 2, Log256(big.NewInt(65536)))
	require.Equal(t, 124, Log256(new(big.Int).Lsh(big.NewInt(1), 999)))
}

func TestShiftLeftward(t *testing.T) {
	require.Equal(t, int64(256), ShiftLeftward(big.NewInt(1), 8).Int64())
	require.Equal(t, int64(1), ShiftLeftward(big.NewInt(256), -8).Int64())
	require.Equal(t, int64(0), ShiftLeftward(big.NewInt(255), -8).Int64())

	// Right shifts floor toward negative infinity.
	require.Equal(t, int64(-2), ShiftLeftward(big.NewInt(-384), -8).Int64())
	require.Equal(t, int64(-1), ShiftLeftward(big.NewInt(-1), -8).Int64())
}

func TestStripPad(t *testing.T) {
	require.Equal(t, []byte{0x01}, RightStrip00([]byte{0x01, 0x00, 0x00}))
	require.Equal(t, []byte{0x01, 0x00, 0x02}, RightStrip00([]byte{0x01, 0x00, 0x02}))
	require.Len(t, RightStrip00([]byte{0x00, 0x00}), 0)

	require.Equal(t, []byte{0x00, 0x00, 0xAA}, LeftPad00([]byte{0xAA}, 3))
	require.Equal(t, []byte{0xAA, 0xBB}, LeftPad00([]byte{0xAA, 0xBB}, 2))
	require.Equal(t, []byte{0xAA, 0xBB}, LeftPad00([]byte{0xAA, 0xBB}, 1))
}

func TestHex(t *testing.T) {
	require.Equal(t, "AB01", HexEncode([]byte{0xAB, 0x01}))
	require.Equal(t, "", HexEncode(nil))

	b, err := HexDecode("ab01")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0x01}, b)

	_, err = HexDecode("zork")
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = HexDecode("ab0")
	require.Error(t, err)
}
