package bitvec

import (
	"slices"

	"github.com/hupe1980/bitvec/internal/words"
)

// ShiftLeft moves every bit n positions towards index 0 in place.
// The vacated positions at the high end become zero; Size is unchanged.
// Shifting by Size() or more clears every bit.
func (b *BitVector) ShiftLeft(n int) error {
	if err := b.checkShift("shift_left_assign", n); err != nil {
		return err
	}
	if n >= b.n {
		words.ClearRange(b.words, 0, b.n)
		return nil
	}

	src := slices.Clone(b.words)
	for i := n; i < b.n; i++ {
		words.Assign(b.words, i-n, words.Test(src, i))
	}
	words.ClearRange(b.words, b.n-n, b.n)
	return nil
}

// ShiftRight moves every bit n positions towards index Size()-1 in place.
// The vacated positions at the low end become zero; Size is unchanged.
func (b *BitVector) ShiftRight(n int) error {
	if err := b.checkShift("shift_right_assign", n); err != nil {
		return err
	}
	if n >= b.n {
		words.ClearRange(b.words, 0, b.n)
		return nil
	}

	src := slices.Clone(b.words)
	for i := n; i < b.n; i++ {
		words.Assign(b.words, i, words.Test(src, i-n))
	}
	words.ClearRange(b.words, 0, n)
	return nil
}

// ShiftLeft returns a copy of v shifted left by n.
func ShiftLeft(v *BitVector, n int) (*BitVector, error) {
	if err := v.checkShift("shift_left", n); err != nil {
		return nil, err
	}
	r := v.Clone()
	if err := r.ShiftLeft(n); err != nil {
		return nil, err
	}
	return r, nil
}

// ShiftRight returns a copy of v shifted right by n.
func ShiftRight(v *BitVector, n int) (*BitVector, error) {
	if err := v.checkShift("shift_right", n); err != nil {
		return nil, err
	}
	r := v.Clone()
	if err := r.ShiftRight(n); err != nil {
		return nil, err
	}
	return r, nil
}

func (b *BitVector) checkShift(op string, n int) error {
	if len(b.words) == 0 {
		return errEmpty(op)
	}
	if n < 0 {
		return errInvalidSize(op, n)
	}
	return nil
}
