package qnum_test

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/qantal/qnum"
)

func TestCmp(t *testing.T) {
	type TC struct {
		a, b string
		c    int
	}

	tcs := []TC{
		{a: "0q82_01", b: "0q82_02", c: -1},
		{a: "0q82_02", b: "0q82_01", c: 1},
		{a: "0q82_01", b: "0q82_01", c: 0},
		{a: "0q82", b: "0q82_01", c: 0},
		{a: "0q7D_FF", b: "0q80", c: -1},
		{a: "0q7D_FE", b: "0q7D_FF", c: -1},
		{a: "0q00_7F", b: "0q7D_FF", c: -1},
		{a: "0q80", b: "0q807F", c: -1},
		{a: "0qFF_81", b: "0qFE_01", c: 1},
		{a: "0q", b: "0q00_7F", c: -1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s vs %s", i, tc.a, tc.b), func(t *testing.T) {
			c, err := qnum.MustParse(tc.a).Cmp(qnum.MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.c, c)

			less, err := qnum.MustParse(tc.a).Less(qnum.MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.c < 0, less)

			greater, err := qnum.MustParse(tc.a).Greater(qnum.MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.c > 0, greater)
		})
	}
}

func TestCmpComplex(t *testing.T) {
	c, err := qnum.FromComplex(complex(1, 1))
	require.NoError(t, err)

	_, err = c.Cmp(qnum.One())
	require.True(t, qnum.ErrIncomparable.Has(err))
	_, err = qnum.One().Cmp(c)
	require.True(t, qnum.ErrIncomparable.Has(err))
	_, err = c.Less(qnum.One())
	require.True(t, qnum.ErrIncomparable.Has(err))

	// A zero imaginary part normalizes away and orders fine.
	r, err := qnum.FromComplex(complex(2, 0))
	require.NoError(t, err)
	cmp, err := r.Cmp(qnum.One())
	require.NoError(t, err)
	require.Equal(t, 1, cmp)
}

// TestMemcmpOrder is the reason the encoding exists: unsigned byte
// comparison of raw encodings agrees with numeric order, so raw values
// sort correctly as plain keys.
func TestMemcmpOrder(t *testing.T) {
	ascending := []qnum.Number{
		qnum.NaN(),
		qnum.NegativeInfinity(),
		qnum.FromFloat(-1e300),
		qnum.FromInt64(-4294967298),
		qnum.FromInt64(-65536),
		qnum.FromInt64(-1000),
		qnum.FromFloat(-1.5),
		qnum.FromInt64(-1),
		qnum.FromFloat(-0.5),
		qnum.FromFloat(-0.00390625),
		qnum.NegativeInfinitesimal(),
		qnum.Zero(),
		qnum.PositiveInfinitesimal(),
		qnum.FromFloat(0.00390625),
		qnum.FromFloat(0.5),
		qnum.One(),
		qnum.FromFloat(1.5),
		qnum.FromInt64(2),
		qnum.FromInt64(256),
		qnum.FromInt64(65536),
		qnum.FromFloat(1e300),
		qnum.PositiveInfinity(),
	}

	for i := 1; i < len(ascending); i++ {
		a, b := ascending[i-1], ascending[i]
		require.True(t, bytes.Compare(a.Raw(), b.Raw()) < 0,
			"%s not below %s: %s", a, b, spew.Sdump(a.Raw(), b.Raw()))
	}

	// Sorting by raw bytes recovers the numeric order.
	shuffled := append([]qnum.Number(nil), ascending...)
	for i := range shuffled {
		j := (i * 7) % len(shuffled)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	sort.Slice(shuffled, func(i, j int) bool {
		return bytes.Compare(shuffled[i].Raw(), shuffled[j].Raw()) < 0
	})
	for i := range ascending {
		require.True(t, ascending[i].Equal(shuffled[i]))
	}
}

func TestEqualValue(t *testing.T) {
	one := qnum.One()

	require.True(t, one.EqualValue(1))
	require.True(t, one.EqualValue(int8(1)))
	require.True(t, one.EqualValue(uint64(1)))
	require.True(t, one.EqualValue(1.0))
	require.True(t, one.EqualValue("1"))
	require.True(t, one.EqualValue("0q82_01"))
	require.True(t, one.EqualValue("0q82"))
	require.True(t, one.EqualValue(complex(1, 0)))

	require.False(t, one.EqualValue(2))
	require.False(t, one.EqualValue(1.5))
	require.False(t, one.EqualValue("zork"))
	require.False(t, one.EqualValue(struct{}{}))
	require.False(t, one.EqualValue(nil))
	require.True(t, qnum.NaN().EqualValue(nil))
}

func TestHash(t *testing.T) {
	// Aliases of one value hash alike.
	require.Equal(t, qnum.MustParse("0q82").Hash(), qnum.One().Hash())
	require.Equal(t, qnum.MustParse("0q7E").Hash(), qnum.FromInt64(-1).Hash())

	c, err := qnum.FromComplex(complex(3, 0))
	require.NoError(t, err)
	require.Equal(t, qnum.FromInt64(3).Hash(), c.Hash())

	require.NotEqual(t, qnum.One().Hash(), qnum.FromInt64(2).Hash())
	require.NotEqual(t, qnum.Zero().Hash(), qnum.NaN().Hash())
}
