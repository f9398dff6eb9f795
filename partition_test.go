package sortgo

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	t.Run("Invariants", func(t *testing.T) {
		data := []int{3, 8, 1, 9, 2, 7, 4}
		e := newTestEngine(data)

		pivotVal := data[0]
		p := e.partition(0, len(data), 0)

		require.Equal(t, pivotVal, data[p])
		for i := 0; i < p; i++ {
			assert.LessOrEqual(t, data[i], pivotVal, "left of pivot at %d", i)
		}
		for i := p + 1; i < len(data); i++ {
			assert.Greater(t, data[i], pivotVal, "right of pivot at %d", i)
		}
	})

	t.Run("SubRangeOnly", func(t *testing.T) {
		data := []int{99, 5, 2, 8, 1, -7}
		e := newTestEngine(data)

		e.partition(1, 5, 3)

		assert.Equal(t, 99, data[0])
		assert.Equal(t, -7, data[5])
		assert.ElementsMatch(t, []int{5, 2, 8, 1}, data[1:5])
	})

	t.Run("AllEqual", func(t *testing.T) {
		data := []int{4, 4, 4, 4}
		e := newTestEngine(data)

		p := e.partition(0, 4, 0)

		// Every element compares <= pivot, so the pivot settles at the top.
		assert.Equal(t, 3, p)
		assert.Equal(t, []int{4, 4, 4, 4}, data)
	})

	t.Run("TinyRanges", func(t *testing.T) {
		data := []int{2, 1}
		e := newTestEngine(data)

		assert.Equal(t, 1, e.partition(1, 2, 1))
		assert.Equal(t, 0, e.partition(0, 0, 0))
		assert.Equal(t, []int{2, 1}, data)
	})

	t.Run("PreservesPermutation", func(t *testing.T) {
		data := []int{6, 2, 9, 2, 5, 1, 8, 3}
		before := slices.Clone(data)
		e := newTestEngine(data)

		e.partition(0, len(data), 4)

		assert.ElementsMatch(t, before, data)
	})
}

func TestInsertionSort_SubRange(t *testing.T) {
	data := []int{9, 5, 3, 4, 1, 0}
	e := newTestEngine(data)

	e.insertionSort(1, 5)

	assert.Equal(t, []int{9, 1, 3, 4, 5, 0}, data)
}

func TestHeapSort(t *testing.T) {
	t.Run("SubRange", func(t *testing.T) {
		data := []int{9, 5, 3, 4, 1, 0}
		e := newTestEngine(data)

		e.heapSort(1, 5)

		assert.Equal(t, []int{9, 1, 3, 4, 5, 0}, data)
	})

	t.Run("FullRangeReversed", func(t *testing.T) {
		data := make([]int, 128)
		for i := range data {
			data[i] = len(data) - i
		}
		e := newTestEngine(data)

		e.heapSort(0, len(data))

		assert.True(t, slices.IsSorted(data))
	})

	t.Run("RespectsReverse", func(t *testing.T) {
		data := []int{1, 3, 2}
		e := newTestEngine(data, WithReverse(true))

		e.heapSort(0, 3)

		assert.Equal(t, []int{3, 2, 1}, data)
	})
}

func TestDefaultDepthLimit(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 2},
		{16, 8},
		{1000, 18},
		{1024, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultDepthLimit(tt.n), "n=%d", tt.n)
	}
}

func TestEngine_CountingDisabledByDefault(t *testing.T) {
	data := []int{5, 2, 8, 1, 9, 3}
	e := newTestEngine(data)

	require.NoError(t, e.run())

	assert.True(t, slices.IsSorted(data))
	assert.Zero(t, e.comparisons.Load())
	assert.Zero(t, e.swaps.Load())
}
