// Package script runs a small line-oriented command language against a
// single bitvec.BitVector.
//
// Statements are separated by newlines or ';'. A '#' starts a comment.
//
//	new 67 20      # 67 bits, first word seeded with 20
//	push 1
//	count          # prints 3
//	shl 2; print
//
// Word values accept Go integer literals (0xff, 0b101) and the all-ones forms
// ^0, ^0<<k and ^0>>k.
package script
