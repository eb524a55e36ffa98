package bitvec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/testutil"
)

func parse(t *testing.T, s string) *bitvec.BitVector {
	t.Helper()
	v, err := bitvec.Parse(s)
	require.NoError(t, err)
	return v
}

func TestProperty_Logical(t *testing.T) {
	rng := testutil.NewRNG(4711)

	ops := []struct {
		name string
		fn   func(x, y *bitvec.BitVector) (*bitvec.BitVector, error)
		ref  func(x, y bool) bool
	}{
		{"and", bitvec.And, func(x, y bool) bool { return x && y }},
		{"or", bitvec.Or, func(x, y bool) bool { return x || y }},
		{"xor", bitvec.Xor, func(x, y bool) bool { return x != y }},
	}

	for _, n := range rng.Sizes(20, 300) {
		a, b := rng.BitString(n), rng.BitString(n)
		for _, op := range ops {
			r, err := op.fn(parse(t, a), parse(t, b))
			require.NoError(t, err)
			require.Equal(t, testutil.Reference(a, b, op.ref), r.String(), "%s n=%d", op.name, n)
		}
	}
}

func TestProperty_NotInvolution(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, n := range rng.Sizes(20, 300) {
		s := rng.BitString(n)
		v := parse(t, s)

		inv, err := v.Not()
		require.NoError(t, err)
		c, err := inv.Count()
		require.NoError(t, err)
		require.Equal(t, n-testutil.Ones(s), c)

		back, err := inv.Not()
		require.NoError(t, err)
		require.Equal(t, s, back.String())
	}
}

func TestProperty_Shift(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, n := range rng.Sizes(15, 200) {
		s := rng.BitString(n)
		for _, k := range []int{0, 1, n / 2, n - 1, n, n + 3} {
			l, err := bitvec.ShiftLeft(parse(t, s), k)
			require.NoError(t, err)
			r, err := bitvec.ShiftRight(parse(t, s), k)
			require.NoError(t, err)

			wantL, wantR := strings.Repeat("0", n), strings.Repeat("0", n)
			if k < n {
				wantL = s[k:] + strings.Repeat("0", k)
				wantR = strings.Repeat("0", k) + s[:n-k]
			}
			require.Equal(t, wantL, l.String(), "shl n=%d k=%d", n, k)
			require.Equal(t, wantR, r.String(), "shr n=%d k=%d", n, k)
		}
	}
}

func TestProperty_CopyRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(99)

	for _, n := range rng.Sizes(10, 500) {
		v := parse(t, rng.SparseBitString(n, 0.1))
		c := v.Clone()

		assert.Equal(t, v.Size(), c.Size())
		assert.Equal(t, v.String(), c.String())
		assert.True(t, v.Equal(c))
	}
}

func TestProperty_SetAllResetAll(t *testing.T) {
	rng := testutil.NewRNG(3)

	for _, n := range rng.Sizes(10, 400) {
		v := parse(t, rng.BitString(n))

		require.NoError(t, v.SetAll())
		c, err := v.Count()
		require.NoError(t, err)
		require.Equal(t, v.Size(), c)

		require.NoError(t, v.ResetAll())
		c, err = v.Count()
		require.NoError(t, err)
		require.Equal(t, 0, c)
	}
}

func TestProperty_PushBackMatchesParse(t *testing.T) {
	rng := testutil.NewRNG(11)
	bits := rng.Bools(200)

	var v bitvec.BitVector
	var sb strings.Builder
	for _, bit := range bits {
		v.PushBack(bit)
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	assert.Equal(t, sb.String(), v.String())
	assert.True(t, v.Equal(parse(t, sb.String())))
	assert.Len(t, v.Words(), 4)
}

func TestProperty_Interop(t *testing.T) {
	rng := testutil.NewRNG(5)

	for _, n := range rng.Sizes(10, 300) {
		v := parse(t, rng.SparseBitString(n, 0.3))

		fromRoaring, err := bitvec.FromRoaring(v.ToRoaring(), n)
		require.NoError(t, err)
		require.True(t, v.Equal(fromRoaring))

		require.True(t, v.Equal(bitvec.FromBitSet(v.ToBitSet())))
		require.True(t, v.Equal(bitvec.FromBitlist(v.ToBitlist())))
	}
}

func TestProperty_Swap(t *testing.T) {
	rng := testutil.NewRNG(17)

	a := parse(t, rng.BitString(100))
	b := parse(t, rng.BitString(120))
	wantA, wantB := b.String(), a.String()

	require.NoError(t, a.Swap(b))
	assert.Equal(t, wantA, a.String())
	assert.Equal(t, wantB, b.String())

	c := parse(t, rng.BitString(129))
	assert.ErrorIs(t, a.Swap(c), bitvec.ErrSizeMismatch)
}
