// Package words provides bit addressing over packed uint64 words.
//
// Layout:
//   - Bit i lives in word i/64 at position i%64 (least significant bit first)
//   - An n-bit vector occupies Count(n) words
//   - Bits at positions >= n in the last word are padding
//
// Used internally by the bitvec package for storage access, range fills,
// counting and set-bit scans.
package words
