package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitString(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.BitString(200)

	assert.Len(t, s, 200)
	assert.NotContains(t, s, "2")
	ones := Ones(s)
	assert.Greater(t, ones, 50)
	assert.Less(t, ones, 150)
}

func TestSparseBitString(t *testing.T) {
	rng := NewRNG(4711)

	assert.Equal(t, 0, Ones(rng.SparseBitString(100, 0)))
	assert.Equal(t, 100, Ones(rng.SparseBitString(100, 1)))
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.BitString(64)

	rng.Reset()
	assert.Equal(t, first, rng.BitString(64))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestSizes(t *testing.T) {
	rng := NewRNG(4711)

	sizes := rng.Sizes(10, 200)
	assert.Len(t, sizes, 14)
	assert.Equal(t, []int{1, 63, 64, 65}, sizes[:4])
	for _, s := range sizes {
		assert.GreaterOrEqual(t, s, 1)
		assert.LessOrEqual(t, s, 200)
	}

	assert.Equal(t, []int{1}, rng.Sizes(0, 10))
}

func TestBools(t *testing.T) {
	rng := NewRNG(4711)
	assert.Len(t, rng.Bools(17), 17)
}

func TestReference(t *testing.T) {
	and := func(x, y bool) bool { return x && y }
	xor := func(x, y bool) bool { return x != y }

	assert.Equal(t, "0001", Reference("0101", "0011", and))
	assert.Equal(t, "0110", Reference("0101", "0011", xor))
}
