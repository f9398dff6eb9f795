package sortgo_test

import (
	"testing"

	"github.com/hupe1980/sortgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError_Message(t *testing.T) {
	err := sortgo.SortInPlace([]int{2, 1}, sortgo.WithInsertionThreshold(-3))

	var cfgErr *sortgo.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	assert.Equal(t, "insertion threshold", cfgErr.Option)
	assert.Equal(t, -3, cfgErr.Value)
	assert.Equal(t, "invalid insertion threshold -3: must not be negative", cfgErr.Error())
}

func TestComparisonError_Message(t *testing.T) {
	err := sortgo.SortAnyInPlace([]any{1, "one"})

	var cmpErr *sortgo.ComparisonError
	require.ErrorAs(t, err, &cmpErr)

	assert.Contains(t, cmpErr.Error(), "not comparable")
	assert.Contains(t, cmpErr.Error(), "int")
	assert.Contains(t, cmpErr.Error(), "string")
}
