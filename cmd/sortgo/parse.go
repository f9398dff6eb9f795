package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// parseArray accepts JSON ("[3,1,2]"), comma-separated ("3,1,2") and
// space-separated ("3 1 2") integer input.
func parseArray(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty array input")
	}

	if strings.HasPrefix(input, "[") {
		parsed := gjson.Parse(input)
		if !parsed.IsArray() {
			return nil, fmt.Errorf("invalid JSON array: %s", input)
		}
		var out []int
		for _, item := range parsed.Array() {
			if item.Type != gjson.Number {
				return nil, fmt.Errorf("non-numeric element: %s", item.Raw)
			}
			out = append(out, int(item.Int()))
		}
		return out, nil
	}

	var fields []string
	if strings.Contains(input, ",") {
		fields = strings.Split(input, ",")
	} else {
		fields = strings.Fields(input)
	}

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid element %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
