// Package bitvec provides a resizable bit vector packed into uint64 words.
//
// # Quick Start
//
//	v, _ := bitvec.New(8)
//	_ = v.Set(2, true)
//	v.PushBack(true)
//	s, _ := v.ToString() // "001000001"
//
// # Layout
//
// Bit i is stored in word i/64 at position i%64, least significant bit first.
// A vector of n bits holds exactly ceil(n/64) words. Bits of the last word
// beyond Size() are padding: bit-granular queries (Get, Count, ToString,
// Equal, the logical operators) never read them, while the word-granular
// SetAll, ResetAll, Any and None operate on whole words.
//
// # Errors
//
// Contract violations are returned as *Error values, never panics. Match the
// kind with errors.Is against ErrInvalidSize, ErrIndexOutOfRange,
// ErrEmptyContainer, ErrSizeMismatch or ErrSyntax; inspect the operation
// name and offending index with errors.As.
//
// # Operators
//
// And, Or, Xor, ShiftLeft and ShiftRight exist both as in-place methods and
// as package functions that return a new vector:
//
//	_ = a.And(b)            // a &= b
//	c, _ := bitvec.And(a, b) // c = a & b
//
// # Interoperability
//
// ToRoaring/FromRoaring and ToBitSet/FromBitSet convert to and from
// github.com/RoaringBitmap/roaring/v2 and github.com/bits-and-blooms/bitset.
// ToBitlist/FromBitlist convert to and from the SSZ bitlists of
// github.com/prysmaticlabs/go-bitfield.
package bitvec
