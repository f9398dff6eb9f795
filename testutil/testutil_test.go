package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapes(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, SortedInts(4))
	assert.Equal(t, []int{3, 2, 1, 0}, ReversedInts(4))
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, Sawtooth(7, 3))
	assert.Empty(t, SortedInts(0))
}

func TestRNG_Ints(t *testing.T) {
	out := NewRNG(1).Ints(500, 10)
	require.Len(t, out, 500)
	for _, v := range out {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestRNG_DuplicateInts(t *testing.T) {
	out := NewRNG(2).DuplicateInts(1000, 3)

	distinct := Counts(out)
	assert.LessOrEqual(t, len(distinct), 3)

	// A degenerate distinct count still produces valid output.
	assert.Len(t, NewRNG(2).DuplicateInts(10, 0), 10)
}

func TestRNG_Shuffled(t *testing.T) {
	out := NewRNG(3).Shuffled(100)

	sorted := slices.Clone(out)
	slices.Sort(sorted)
	assert.Equal(t, SortedInts(100), sorted)
}

func TestRNG_Words(t *testing.T) {
	words := NewRNG(4).Words(200, 8)
	require.Len(t, words, 200)
	for _, w := range words {
		require.NotEmpty(t, w)
		require.LessOrEqual(t, len(w), 8)
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(5)
	first := r.Ints(50, 100)
	r.Reset()
	assert.Equal(t, first, r.Ints(50, 100))
}

func TestCounts(t *testing.T) {
	assert.Equal(t, map[int]int{1: 2, 2: 1}, Counts([]int{1, 2, 1}))
	assert.Empty(t, Counts([]string(nil)))

	// Permutations agree, non-permutations do not.
	assert.Equal(t, Counts([]int{3, 1, 2}), Counts([]int{1, 2, 3}))
	assert.NotEqual(t, Counts([]int{1, 1, 2}), Counts([]int{1, 2, 2}))
}
