package bitvec

import "github.com/hupe1980/bitvec/internal/words"

// checkIndex validates storage and bounds before a single-bit access.
func (b *BitVector) checkIndex(op string, i int) error {
	if len(b.words) == 0 {
		return errEmpty(op)
	}
	if i < 0 || i >= b.n {
		return errOutOfRange(op, i, b.n)
	}
	return nil
}

// Get reports whether bit i is set.
func (b *BitVector) Get(i int) (bool, error) {
	if err := b.checkIndex("get", i); err != nil {
		return false, err
	}
	return words.Test(b.words, i), nil
}

// SetAt sets bit i to value.
func (b *BitVector) SetAt(i int, value bool) error {
	return b.assign("set_at", i, value)
}

// Set sets bit i to value. Use SetAll to set every bit.
func (b *BitVector) Set(i int, value bool) error {
	return b.assign("set", i, value)
}

// Reset clears bit i.
func (b *BitVector) Reset(i int) error {
	return b.assign("reset", i, false)
}

func (b *BitVector) assign(op string, i int, value bool) error {
	if err := b.checkIndex(op, i); err != nil {
		return err
	}
	words.Assign(b.words, i, value)
	return nil
}

// SetAll sets every allocated word to all ones, padding bits included.
func (b *BitVector) SetAll() error {
	if len(b.words) == 0 {
		return errEmpty("set")
	}
	words.Fill(b.words, words.Ones)
	return nil
}

// ResetAll zeroes every allocated word.
func (b *BitVector) ResetAll() error {
	if len(b.words) == 0 {
		return errEmpty("reset")
	}
	words.Fill(b.words, 0)
	return nil
}
