package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bools returns n uniformly random booleans.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// BitString returns n uniformly random '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	return r.SparseBitString(n, 0.5)
}

// SparseBitString returns n '0'/'1' characters where each bit is one
// with probability density.
func (r *RNG) SparseBitString(n int, density float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		if r.rand.Float64() < density {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Sizes returns num random sizes in [1, maxSize], always including the
// word-boundary cases 1, 63, 64 and 65 when maxSize allows.
func (r *RNG) Sizes(num, maxSize int) []int {
	var sizes []int
	for _, s := range []int{1, 63, 64, 65} {
		if s <= maxSize {
			sizes = append(sizes, s)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for range num {
		sizes = append(sizes, 1+r.rand.Intn(maxSize))
	}
	return sizes
}

// Ones returns the number of '1' characters in s.
func Ones(s string) int {
	return strings.Count(s, "1")
}

// Reference applies fn bit by bit to two equal-length bit strings.
// It is the slow reference model the packed implementation is checked against.
func Reference(a, b string, fn func(x, y bool) bool) string {
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i < len(a); i++ {
		if fn(a[i] == '1', b[i] == '1') {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
