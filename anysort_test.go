package sortgo_test

import (
	"math"
	"testing"

	"github.com/hupe1980/sortgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAny(t *testing.T) {
	t.Run("MixedNumericWidths", func(t *testing.T) {
		sorted, err := sortgo.SortAny([]any{int8(3), 1.5, uint16(2), 4, int64(0)})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(0), 1.5, uint16(2), int8(3), 4}, sorted)
	})

	t.Run("Strings", func(t *testing.T) {
		sorted, err := sortgo.SortAny([]any{"pear", "fig", "kiwi"})
		require.NoError(t, err)
		assert.Equal(t, []any{"fig", "kiwi", "pear"}, sorted)
	})

	t.Run("BoolsFalseFirst", func(t *testing.T) {
		sorted, err := sortgo.SortAny([]any{true, false, true, false})
		require.NoError(t, err)
		assert.Equal(t, []any{false, false, true, true}, sorted)
	})

	t.Run("LargeIntegersCompareExactly", func(t *testing.T) {
		// These values differ only below float64 precision; collapsing them
		// to float64 would make them compare equal.
		hi := int64(1) << 60
		sorted, err := sortgo.SortAny([]any{hi + 1, hi, hi + 2})
		require.NoError(t, err)
		assert.Equal(t, []any{hi, hi + 1, hi + 2}, sorted)
	})

	t.Run("SignedUnsignedBoundary", func(t *testing.T) {
		sorted, err := sortgo.SortAny([]any{uint64(math.MaxUint64), -1, uint64(0)})
		require.NoError(t, err)
		assert.Equal(t, []any{-1, uint64(0), uint64(math.MaxUint64)}, sorted)
	})

	t.Run("IncomparablePair", func(t *testing.T) {
		input := []any{2, "two", 1}

		_, err := sortgo.SortAny(input)

		var cmpErr *sortgo.ComparisonError
		require.ErrorAs(t, err, &cmpErr)

		// The copying entry point never touches the input.
		assert.Equal(t, []any{2, "two", 1}, input)
	})

	t.Run("BoolVersusNumber", func(t *testing.T) {
		_, err := sortgo.SortAny([]any{true, 0})

		var cmpErr *sortgo.ComparisonError
		require.ErrorAs(t, err, &cmpErr)
	})
}

func TestSortAnyInPlace(t *testing.T) {
	t.Run("Sorts", func(t *testing.T) {
		data := []any{3.5, 1, 2.25}
		require.NoError(t, sortgo.SortAnyInPlace(data))
		assert.Equal(t, []any{1, 2.25, 3.5}, data)
	})

	t.Run("ErrorLeavesPermutation", func(t *testing.T) {
		data := []any{9, 7, "x", 5, 3, 8, 1, 6, 2, 4, 0, 10}

		err := sortgo.SortAnyInPlace(data)

		var cmpErr *sortgo.ComparisonError
		require.ErrorAs(t, err, &cmpErr)
		assert.ElementsMatch(t,
			[]any{9, 7, "x", 5, 3, 8, 1, 6, 2, 4, 0, 10}, data)
	})
}
