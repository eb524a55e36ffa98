package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested bit count or shift is negative.
	ErrInvalidSize = errors.New("invalid size")

	// ErrIndexOutOfRange is returned when a bit index is negative or >= Size().
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned when an operation needs at least one allocated word.
	ErrEmptyContainer = errors.New("empty container")

	// ErrSizeMismatch is returned when two operands must have equal sizes.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrSyntax is returned when parsing a string that is not made of '0' and '1'.
	ErrSyntax = errors.New("invalid bit string")
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindInvalidSize marks a negative bit count or shift amount.
	KindInvalidSize Kind = iota + 1
	// KindIndexOutOfRange marks an index outside [0, Size()).
	KindIndexOutOfRange
	// KindEmptyContainer marks an operation on a vector with no words.
	KindEmptyContainer
	// KindSizeMismatch marks operands whose sizes differ.
	KindSizeMismatch
	// KindSyntax marks a string containing characters other than '0' and '1'.
	KindSyntax
)

// Err returns the sentinel error for the kind.
func (k Kind) Err() error {
	switch k {
	case KindInvalidSize:
		return ErrInvalidSize
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	case KindEmptyContainer:
		return ErrEmptyContainer
	case KindSizeMismatch:
		return ErrSizeMismatch
	case KindSyntax:
		return ErrSyntax
	default:
		return nil
	}
}

func (k Kind) String() string {
	if err := k.Err(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error describes a failed BitVector operation.
//
// The sentinel for Kind can be matched via errors.Is; the details via errors.As.
type Error struct {
	Kind Kind
	// Op is the name of the failing operation.
	Op string
	// Index is the offending bit index or character position.
	Index int
	// Size is the receiver's size (or the requested size for KindInvalidSize).
	Size int
	// Other is the other operand's size for KindSizeMismatch.
	Other int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidSize:
		return fmt.Sprintf("bitvec: %s: invalid size %d", e.Op, e.Size)
	case KindIndexOutOfRange:
		return fmt.Sprintf("bitvec: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Size)
	case KindSizeMismatch:
		return fmt.Sprintf("bitvec: %s: size mismatch: %d != %d", e.Op, e.Size, e.Other)
	case KindSyntax:
		return fmt.Sprintf("bitvec: %s: invalid character at position %d", e.Op, e.Index)
	default:
		return fmt.Sprintf("bitvec: %s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Kind.Err() }

func errInvalidSize(op string, n int) error {
	return &Error{Kind: KindInvalidSize, Op: op, Size: n}
}

func errOutOfRange(op string, i, n int) error {
	return &Error{Kind: KindIndexOutOfRange, Op: op, Index: i, Size: n}
}

func errEmpty(op string) error {
	return &Error{Kind: KindEmptyContainer, Op: op}
}

func errMismatch(op string, n, other int) error {
	return &Error{Kind: KindSizeMismatch, Op: op, Size: n, Other: other}
}
