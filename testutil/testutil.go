package testutil

import (
	"math/rand"
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

// Ints generates n random ints in [0,bound).
func (r *RNG) Ints(n, bound int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(bound)
	}
	return out
}

// DuplicateInts generates n ints drawn from only distinct values, producing
// heavy duplication. Useful for exercising equal-to-pivot handling.
func (r *RNG) DuplicateInts(n, distinct int) []int {
	if distinct < 1 {
		distinct = 1
	}
	return r.Ints(n, distinct)
}

// Shuffled returns a random permutation of [0,n).
func (r *RNG) Shuffled(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Words generates n random lowercase words with lengths in [1,maxLen].
func (r *RNG) Words(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	buf := make([]byte, maxLen)
	for i := range out {
		l := 1 + r.rand.Intn(maxLen)
		for j := 0; j < l; j++ {
			buf[j] = byte('a' + r.rand.Intn(26))
		}
		out[i] = string(buf[:l])
	}
	return out
}

// SortedInts returns the strictly ascending sequence 0..n-1.
func SortedInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ReversedInts returns the strictly descending sequence n-1..0. The
// adversarial input for first/last pivot strategies.
func ReversedInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// Sawtooth returns n ints cycling through 0..period-1. Partially ordered
// input with many duplicates.
func Sawtooth(n, period int) []int {
	if period < 1 {
		period = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i % period
	}
	return out
}

// Counts returns the multiset of values as a map from value to frequency.
// Two slices are permutations of each other iff their Counts are equal.
func Counts[T comparable](data []T) map[T]int {
	counts := make(map[T]int, len(data))
	for _, v := range data {
		counts[v]++
	}
	return counts
}
