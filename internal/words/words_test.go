package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{127, 2},
		{128, 2},
		{129, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.n), "Count(%d)", tt.n)
	}
}

func TestIndex(t *testing.T) {
	w, m := Index(0)
	assert.Equal(t, 0, w)
	assert.Equal(t, uint64(1), m)

	w, m = Index(63)
	assert.Equal(t, 0, w)
	assert.Equal(t, uint64(1)<<63, m)

	w, m = Index(64)
	assert.Equal(t, 1, w)
	assert.Equal(t, uint64(1), m)

	w, m = Index(130)
	assert.Equal(t, 2, w)
	assert.Equal(t, uint64(4), m)
}

func TestAssign(t *testing.T) {
	ws := make([]uint64, 2)

	Assign(ws, 3, true)
	Assign(ws, 70, true)
	assert.Equal(t, []uint64{8, 64}, ws)
	assert.True(t, Test(ws, 3))
	assert.True(t, Test(ws, 70))
	assert.False(t, Test(ws, 4))

	Assign(ws, 3, false)
	assert.Equal(t, []uint64{0, 64}, ws)

	// Clearing an unset bit leaves siblings alone
	ws[0] = 0xF0
	Assign(ws, 0, false)
	assert.Equal(t, uint64(0xF0), ws[0])
}

func TestTailMask(t *testing.T) {
	assert.Equal(t, Ones, TailMask(0))
	assert.Equal(t, uint64(1), TailMask(1))
	assert.Equal(t, uint64(0x3F), TailMask(6))
	assert.Equal(t, Ones, TailMask(64))
	assert.Equal(t, Ones>>1, TailMask(127))
}

func TestClearTail(t *testing.T) {
	ws := []uint64{Ones, Ones}
	ClearTail(ws, 70)
	assert.Equal(t, []uint64{Ones, 0x3F}, ws)

	ClearTail(nil, 10)
}

func TestSetRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		want        []uint64
	}{
		{"empty", 10, 10, []uint64{0, 0, 0}},
		{"single word", 2, 5, []uint64{0x1C, 0, 0}},
		{"word boundary", 60, 68, []uint64{0xF << 60, 0xF, 0}},
		{"full middle word", 32, 160, []uint64{Ones &^ (1<<32 - 1), Ones, Ones >> 32}},
		{"whole words", 0, 128, []uint64{Ones, Ones, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := make([]uint64, 3)
			SetRange(ws, tt.first, tt.last)
			assert.Equal(t, tt.want, ws)
		})
	}
}

func TestClearRange(t *testing.T) {
	ws := []uint64{Ones, Ones, Ones}
	ClearRange(ws, 60, 130)
	assert.Equal(t, []uint64{Ones >> 4, 0, Ones &^ 3}, ws)

	ws = []uint64{Ones}
	ClearRange(ws, 1, 3)
	assert.Equal(t, Ones&^6, ws[0])
}

func TestPopCount(t *testing.T) {
	ws := []uint64{Ones, Ones}
	assert.Equal(t, 0, PopCount(ws, 0))
	assert.Equal(t, 10, PopCount(ws, 10))
	assert.Equal(t, 64, PopCount(ws, 64))
	assert.Equal(t, 100, PopCount(ws, 100))
	assert.Equal(t, 128, PopCount(ws, 128))
}

func TestNextSet(t *testing.T) {
	ws := make([]uint64, 3)
	Assign(ws, 10, true)
	Assign(ws, 64, true)
	Assign(ws, 150, true)
	// Padding bit beyond n = 140
	Assign(ws, 191, true)

	tests := []struct {
		from int
		want int
	}{
		{-1, 10},
		{0, 10},
		{10, 10},
		{11, 64},
		{65, -1},
		{140, -1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NextSet(ws, 140, tt.from), "NextSet(%d)", tt.from)
	}

	assert.Equal(t, 150, NextSet(ws, 160, 65))
}

func TestAnyNonZeroAndFill(t *testing.T) {
	ws := make([]uint64, 4)
	assert.False(t, AnyNonZero(ws))
	assert.False(t, AnyNonZero(nil))

	Fill(ws, Ones)
	assert.True(t, AnyNonZero(ws))
	assert.Equal(t, []uint64{Ones, Ones, Ones, Ones}, ws)
}
