package bitvec

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/bitvec/internal/words"
)

// Size returns the number of bits in the vector.
func (b *BitVector) Size() int {
	return b.n
}

// IsEmpty reports whether the vector holds no bits.
func (b *BitVector) IsEmpty() bool {
	return b.n == 0
}

// Any reports whether any allocated word is nonzero, padding bits included.
func (b *BitVector) Any() (bool, error) {
	if len(b.words) == 0 {
		return false, errEmpty("any")
	}
	return words.AnyNonZero(b.words), nil
}

// None reports whether every allocated word is zero.
func (b *BitVector) None() (bool, error) {
	if len(b.words) == 0 {
		return false, errEmpty("none")
	}
	return !words.AnyNonZero(b.words), nil
}

// Count returns the number of set bits in [0, Size()).
func (b *BitVector) Count() (int, error) {
	if len(b.words) == 0 {
		return 0, errEmpty("count")
	}
	return words.PopCount(b.words, b.n), nil
}

// ToString renders the vector as '0'/'1' characters, bit 0 first.
func (b *BitVector) ToString() (string, error) {
	if len(b.words) == 0 {
		return "", errEmpty("to_string")
	}
	return b.format(), nil
}

// String implements fmt.Stringer. An empty vector renders as "".
func (b *BitVector) String() string {
	return b.format()
}

func (b *BitVector) format() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if words.Test(b.words, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// WriteTo writes the ToString form of the vector to w.
func (b *BitVector) WriteTo(w io.Writer) (int64, error) {
	if len(b.words) == 0 {
		return 0, errEmpty("write_to")
	}
	n, err := io.WriteString(w, b.format())
	return int64(n), err
}

// Parse builds a vector from its ToString form.
func Parse(s string) (*BitVector, error) {
	b := &BitVector{
		words: make([]uint64, words.Count(len(s))),
		n:     len(s),
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			words.Assign(b.words, i, true)
		case '0':
		default:
			return nil, &Error{Kind: KindSyntax, Op: "parse", Index: i, Size: len(s)}
		}
	}
	return b, nil
}

// NextSet returns the index of the first set bit at or after from.
// The second result is false when no such bit exists.
func (b *BitVector) NextSet(from int) (int, bool) {
	i := words.NextSet(b.words, b.n, from)
	return i, i >= 0
}

// All returns an iterator over the indices of set bits in ascending order.
func (b *BitVector) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := words.NextSet(b.words, b.n, 0); i >= 0; i = words.NextSet(b.words, b.n, i+1) {
			if !yield(i) {
				return
			}
		}
	}
}

// Words returns a copy of the packed storage, padding bits included.
func (b *BitVector) Words() []uint64 {
	return slices.Clone(b.words)
}
