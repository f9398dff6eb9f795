package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"JSON", "[64, 34, 25]", []int{64, 34, 25}},
		{"JSONNegative", "[-3,0,7]", []int{-3, 0, 7}},
		{"JSONEmpty", "[]", nil},
		{"Comma", "3,1,2", []int{3, 1, 2}},
		{"CommaSpaced", "3, 1, 2", []int{3, 1, 2}},
		{"Spaces", "3 1 2", []int{3, 1, 2}},
		{"Single", "42", []int{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArray(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArray_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		`[1, "two", 3]`,
		"1,two,3",
		"not an array",
	}
	for _, input := range inputs {
		_, err := parseArray(input)
		assert.Error(t, err, "input=%q", input)
	}
}
