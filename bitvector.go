package bitvec

import (
	"slices"

	"github.com/hupe1980/bitvec/internal/words"
)

// WordBits is the number of bits per storage word.
const WordBits = words.Bits

// AllOnes is a word with every bit set.
const AllOnes = words.Ones

// BitVector is a resizable sequence of bits packed into uint64 words.
//
// Bit i lives in word i/64 at position i%64. The vector always holds exactly
// ceil(Size()/64) words; bits of the last word beyond Size() are padding.
//
// The zero value is an empty vector with no words allocated.
// A BitVector is not safe for concurrent use.
type BitVector struct {
	words []uint64
	n     int
}

// New creates a vector of n zero bits.
func New(n int) (*BitVector, error) {
	return NewWithValue(n, 0)
}

// NewWithValue creates a vector of n bits whose first word is value.
// All following words start zero; value is not repeated across words.
func NewWithValue(n int, value uint64) (*BitVector, error) {
	if n < 0 {
		return nil, errInvalidSize("new", n)
	}
	b := &BitVector{
		words: make([]uint64, words.Count(n)),
		n:     n,
	}
	if len(b.words) > 0 {
		b.words[0] = value
	}
	return b, nil
}

// Clone returns a deep copy of the vector.
func (b *BitVector) Clone() *BitVector {
	return &BitVector{
		words: slices.Clone(b.words),
		n:     b.n,
	}
}

// Assign replaces the contents of b with a deep copy of other.
func (b *BitVector) Assign(other *BitVector) {
	if b == other {
		return
	}
	b.words = slices.Clone(other.words)
	b.n = other.n
}

// Resize changes the length to n bits. Bits added by growth are set to fill.
func (b *BitVector) Resize(n int, fill bool) error {
	if n == b.n {
		return nil
	}
	if n < 0 {
		return errInvalidSize("resize", n)
	}

	old := b.n
	wc := words.Count(n)
	if wc > len(b.words) {
		b.words = append(b.words, make([]uint64, wc-len(b.words))...)
	} else {
		b.words = b.words[:wc]
	}
	b.n = n

	if n < old {
		words.ClearTail(b.words, n)
		return nil
	}

	// Old padding bits become logical, overwrite them too
	if fill {
		words.SetRange(b.words, old, n)
	} else {
		words.ClearRange(b.words, old, n)
	}
	return nil
}

// Clear resets the vector to the empty state and releases its words.
func (b *BitVector) Clear() {
	b.words = nil
	b.n = 0
}

// PushBack appends one bit. A word is added only when the new bit starts one.
func (b *BitVector) PushBack(bit bool) {
	if b.n%words.Bits == 0 {
		b.words = append(b.words, 0)
	}
	b.n++
	words.Assign(b.words, b.n-1, bit)
}

// Swap exchanges the contents of b and other.
// Both vectors must hold the same number of words.
func (b *BitVector) Swap(other *BitVector) error {
	if len(b.words) != len(other.words) {
		return errMismatch("swap", b.n, other.n)
	}
	*b, *other = *other, *b
	return nil
}
