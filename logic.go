package bitvec

import "github.com/hupe1980/bitvec/internal/words"

// And intersects b with other in place.
// Both vectors must be non-empty and have the same Size.
func (b *BitVector) And(other *BitVector) error {
	return b.combine("and_assign", other, func(x, y uint64) uint64 { return x & y })
}

// Or computes the union of b and other in place.
func (b *BitVector) Or(other *BitVector) error {
	return b.combine("or_assign", other, func(x, y uint64) uint64 { return x | y })
}

// Xor computes the symmetric difference of b and other in place.
func (b *BitVector) Xor(other *BitVector) error {
	return b.combine("xor_assign", other, func(x, y uint64) uint64 { return x ^ y })
}

// And returns the intersection of x and y as a new vector.
func And(x, y *BitVector) (*BitVector, error) {
	return binary("and", x, y, (*BitVector).And)
}

// Or returns the union of x and y as a new vector.
func Or(x, y *BitVector) (*BitVector, error) {
	return binary("or", x, y, (*BitVector).Or)
}

// Xor returns the symmetric difference of x and y as a new vector.
func Xor(x, y *BitVector) (*BitVector, error) {
	return binary("xor", x, y, (*BitVector).Xor)
}

func binary(op string, x, y *BitVector, assign func(*BitVector, *BitVector) error) (*BitVector, error) {
	if err := checkOperands(op, x, y); err != nil {
		return nil, err
	}
	r := x.Clone()
	if err := assign(r, y); err != nil {
		return nil, err
	}
	return r, nil
}

func checkOperands(op string, x, y *BitVector) error {
	if len(x.words) == 0 || len(y.words) == 0 {
		return errEmpty(op)
	}
	if x.n != y.n {
		return errMismatch(op, x.n, y.n)
	}
	return nil
}

// combine applies fn word by word, leaving the receiver's padding bits untouched.
func (b *BitVector) combine(op string, other *BitVector, fn func(x, y uint64) uint64) error {
	if err := checkOperands(op, b, other); err != nil {
		return err
	}

	last := len(b.words) - 1
	for i := 0; i < last; i++ {
		b.words[i] = fn(b.words[i], other.words[i])
	}
	m := words.TailMask(b.n)
	b.words[last] = b.words[last]&^m | fn(b.words[last], other.words[last])&m
	return nil
}

// Not returns a new vector with every bit in [0, Size()) inverted.
func (b *BitVector) Not() (*BitVector, error) {
	if len(b.words) == 0 {
		return nil, errEmpty("not")
	}
	r := b.Clone()
	last := len(r.words) - 1
	for i := 0; i < last; i++ {
		r.words[i] = ^r.words[i]
	}
	r.words[last] ^= words.TailMask(r.n)
	return r, nil
}

// Equal reports whether b and other have the same size and the same bits.
// Padding bits are ignored.
func (b *BitVector) Equal(other *BitVector) bool {
	if b.n != other.n {
		return false
	}
	if b.n == 0 {
		return true
	}

	last := len(b.words) - 1
	for i := 0; i < last; i++ {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	m := words.TailMask(b.n)
	return b.words[last]&m == other.words[last]&m
}

// NotEqual reports whether b and other differ in size or in any bit.
func (b *BitVector) NotEqual(other *BitVector) bool {
	return !b.Equal(other)
}
