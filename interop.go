package bitvec

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/hupe1980/bitvec/internal/words"
)

// ToRoaring returns the indices of set bits as a roaring bitmap.
// Indices above math.MaxUint32 are not representable and are dropped.
func (b *BitVector) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range b.All() {
		if uint64(i) > math.MaxUint32 {
			break
		}
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring creates an n-bit vector with the bits listed in rb set.
// Every index in rb must be below n.
func FromRoaring(rb *roaring.Bitmap, n int) (*BitVector, error) {
	b, err := New(n)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			return nil, errOutOfRange("from_roaring", i, n)
		}
		words.Assign(b.words, i, true)
	}
	return b, nil
}

// ToBitSet converts the vector to a bits-and-blooms BitSet of the same length.
// Both use the same word layout, so the storage is copied directly.
func (b *BitVector) ToBitSet() *bitset.BitSet {
	ws := slices.Clone(b.words)
	words.ClearTail(ws, b.n)
	return bitset.FromWithLength(uint(b.n), ws)
}

// FromBitSet creates a vector holding the bits of bs, sized to bs.Len().
func FromBitSet(bs *bitset.BitSet) *BitVector {
	n := int(bs.Len())
	b := &BitVector{
		words: make([]uint64, words.Count(n)),
		n:     n,
	}
	copy(b.words, bs.Words())
	words.ClearTail(b.words, n)
	return b
}

// ToBitlist converts the vector to an SSZ bitlist of the same length.
func (b *BitVector) ToBitlist() bitfield.Bitlist {
	bl := bitfield.NewBitlist(uint64(b.n))
	for i := range b.All() {
		bl.SetBitAt(uint64(i), true)
	}
	return bl
}

// FromBitlist creates a vector holding the bits of bl, sized to bl.Len().
// A bitlist without a length bit yields an empty vector.
func FromBitlist(bl bitfield.Bitlist) *BitVector {
	n := int(bl.Len())
	b := &BitVector{
		words: make([]uint64, words.Count(n)),
		n:     n,
	}
	for i := 0; i < n; i++ {
		if bl.BitAt(uint64(i)) {
			words.Assign(b.words, i, true)
		}
	}
	return b
}
