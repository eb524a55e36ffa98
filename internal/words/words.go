package words

import "math/bits"

const (
	// Bits is the width of a storage word.
	Bits = 64

	// Ones is a word with every bit set.
	Ones = ^uint64(0)

	shift = 6
	mask  = Bits - 1
)

// Count returns the number of words needed to hold n bits.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + Bits - 1) / Bits
}

// Index returns the word index and the bit mask addressing bit i.
func Index(i int) (int, uint64) {
	return i >> shift, uint64(1) << (uint(i) & mask)
}

// Test reports whether bit i is set.
func Test(ws []uint64, i int) bool {
	w, m := Index(i)
	return ws[w]&m != 0
}

// Assign sets bit i to v without touching its siblings.
func Assign(ws []uint64, i int, v bool) {
	w, m := Index(i)
	if v {
		ws[w] |= m
	} else {
		ws[w] &^= m
	}
}

// TailMask returns the mask of logical bits in the last word of an n-bit vector.
// It is Ones when n is a multiple of Bits.
func TailMask(n int) uint64 {
	if r := uint(n) & mask; r != 0 {
		return uint64(1)<<r - 1
	}
	return Ones
}

// ClearTail zeroes the padding bits of the last word of an n-bit vector.
func ClearTail(ws []uint64, n int) {
	if len(ws) == 0 {
		return
	}
	ws[len(ws)-1] &= TailMask(n)
}

// rangeMasks returns the word indices and edge masks covering bits [first, last).
func rangeMasks(first, last int) (fw, lw int, fm, lm uint64) {
	fw = first >> shift
	lw = (last - 1) >> shift
	fm = Ones << (uint(first) & mask)
	lm = Ones >> ((uint(last-1) & mask) ^ mask)
	return fw, lw, fm, lm
}

// SetRange sets the bits [first, last).
func SetRange(ws []uint64, first, last int) {
	if first >= last {
		return
	}
	fw, lw, fm, lm := rangeMasks(first, last)
	if fw == lw {
		ws[fw] |= fm & lm
		return
	}
	ws[fw] |= fm
	for i := fw + 1; i < lw; i++ {
		ws[i] = Ones
	}
	ws[lw] |= lm
}

// ClearRange clears the bits [first, last).
func ClearRange(ws []uint64, first, last int) {
	if first >= last {
		return
	}
	fw, lw, fm, lm := rangeMasks(first, last)
	if fw == lw {
		ws[fw] &^= fm & lm
		return
	}
	ws[fw] &^= fm
	for i := fw + 1; i < lw; i++ {
		ws[i] = 0
	}
	ws[lw] &^= lm
}

// PopCount returns the number of set bits in [0, n).
func PopCount(ws []uint64, n int) int {
	full := n >> shift
	count := 0
	for _, w := range ws[:full] {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	if r := uint(n) & mask; r != 0 {
		count += bits.OnesCount64(ws[full] & (uint64(1)<<r - 1))
	}
	return count
}

// NextSet returns the index of the first set bit in [from, n), or -1.
func NextSet(ws []uint64, n, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= n {
		return -1
	}

	w := from >> shift
	// Mask out bits before from
	cur := ws[w] & (Ones << (uint(from) & mask))
	last := Count(n)
	for {
		if cur != 0 {
			i := w<<shift + bits.TrailingZeros64(cur)
			if i >= n {
				return -1
			}
			return i
		}
		w++
		if w >= last {
			return -1
		}
		cur = ws[w]
	}
}

// AnyNonZero reports whether any word has a set bit, padding included.
func AnyNonZero(ws []uint64) bool {
	for _, w := range ws {
		if w != 0 {
			return true
		}
	}
	return false
}

// Fill sets every word to v.
func Fill(ws []uint64, v uint64) {
	for i := range ws {
		ws[i] = v
	}
}
