package qnum_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"

	"github.com/qantal/qnum"
	"github.com/qantal/qnum/suffix"
)

func TestNormalizedPlateau(t *testing.T) {
	type TC struct {
		name string
		in   string
		out  string
		Mark error
	}

	tcs := []TC{
		{
			name: "compact one",
			in:   "0q82",
			out:  "0q82_01",
			Mark: oops.New("unexpected"),
		},
		{
			name: "leading zero qigit",
			in:   "0q82_00C0",
			out:  "0q82_01",
			Mark: oops.New("unexpected"),
		},
		{
			name: "compact 256",
			in:   "0q83",
			out:  "0q83_01",
			Mark: oops.New("unexpected"),
		},
		{
			name: "compact minus one",
			in:   "0q7E",
			out:  "0q7D_FF",
			Mark: oops.New("unexpected"),
		},
		{
			name: "compact minus 256",
			in:   "0q7D",
			out:  "0q7C_FF",
			Mark: oops.New("unexpected"),
		},
		{
			name: "leading FF qigit",
			in:   "0q7D_FFC0",
			out:  "0q7D_FF",
			Mark: oops.New("unexpected"),
		},
		{
			name: "compact fractional",
			in:   "0q7E01",
			out:  "0q7E00_FF",
			Mark: oops.New("unexpected"),
		},
		{
			name: "already canonical",
			in:   "0q82_01",
			out:  "0q82_01",
			Mark: oops.New("unexpected"),
		},
		{
			name: "zero has no plateau",
			in:   "0q80",
			out:  "0q80",
			Mark: oops.New("unexpected"),
		},
		{
			name: "nan",
			in:   "0q",
			out:  "0q",
			Mark: oops.New("unexpected"),
		},
		{
			name: "infinity",
			in:   "0qFF_81",
			out:  "0qFF_81",
			Mark: oops.New("unexpected"),
		},
		{
			name: "ordinary value untouched",
			in:   "0q83_03E8",
			out:  "0q83_03E8",
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n := qnum.MustParse(tc.in).Normalized()
			require.Equal(t, tc.out, n.Qstring(), tc.Mark)

			// Normalization is idempotent.
			require.Equal(t, tc.out, n.Normalized().Qstring(), tc.Mark)
		})
	}
}

func TestNormalizedSuffixes(t *testing.T) {
	// Plateau collapse re-appends unrelated suffixes unchanged.
	n, err := qnum.MustParse("0q82").PlusTyped(suffix.TypeTest, nil)
	require.NoError(t, err)
	require.Equal(t, "0q82__7E0100", n.Qstring())
	require.Equal(t, "0q82_01__7E0100", n.Normalized().Qstring())

	// A zero imaginary part vanishes; 3+0i is 3.
	c, err := qnum.FromComplex(complex(3, 0))
	require.NoError(t, err)
	require.Equal(t, "0q82_03__80_690200", c.Qstring())
	require.Equal(t, "0q82_03", c.Normalized().Qstring())
	require.True(t, c.Equal(qnum.FromInt64(3)))

	// A nonzero imaginary part stays.
	c, err = qnum.FromComplex(complex(3, 4))
	require.NoError(t, err)
	require.Equal(t, c.Qstring(), c.Normalized().Qstring())
	require.False(t, c.Equal(qnum.FromInt64(3)))
}

func TestEqualAliases(t *testing.T) {
	type TC struct {
		a, b string
		Mark error
	}

	tcs := []TC{
		{
			a:    "0q82",
			b:    "0q82_01",
			Mark: oops.New("unexpected"),
		},
		{
			a:    "0q86",
			b:    "0q86_01",
			Mark: oops.New("unexpected"),
		},
		{
			a:    "0q7E",
			b:    "0q7D_FF",
			Mark: oops.New("unexpected"),
		},
		{
			a:    "0q82_00C0",
			b:    "0q82",
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s=%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b := qnum.MustParse(tc.a), qnum.MustParse(tc.b)
			require.True(t, a.Equal(b), tc.Mark)
			require.True(t, b.Equal(a), tc.Mark)

			// Aliases are equal in value yet distinct in raw bytes.
			require.NotEqual(t, a.Raw(), b.Raw(), tc.Mark)
		})
	}
}
