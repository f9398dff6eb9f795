package sortgo

import (
	"cmp"
	"slices"
)

// SortAny returns a sorted copy of a dynamically typed sequence. Numeric
// values (all int, uint and float widths) compare with each other; strings
// compare with strings and bools with bools (false before true). Any other
// pairing returns a *ComparisonError.
//
// On error the input copy is abandoned and the original slice is untouched;
// SortAnyInPlace instead leaves the slice in a valid but unspecified order,
// still a permutation of the input.
func SortAny(data []any, optFns ...Option) ([]any, error) {
	out := slices.Clone(data)
	if err := SortAnyInPlace(out, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}

// SortAnyInPlace sorts a dynamically typed sequence in place.
func SortAnyInPlace(data []any, optFns ...Option) error {
	return SortFuncInPlace(data, compareAny, optFns...)
}

// compareAny orders dynamically typed values. Incomparable pairs escape via
// panic with a *ComparisonError; the engine converts the escape back into
// an error at the invocation boundary, which keeps this comparator on the
// plain func(a, b T) int hot path.
func compareAny(a, b any) int {
	if an, ok := numericValue(a); ok {
		if bn, ok := numericValue(b); ok {
			return compareNumeric(an, bn)
		}
		panic(&ComparisonError{A: a, B: b})
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}

	panic(&ComparisonError{A: a, B: b})
}

type numKind int

const (
	intNum numKind = iota
	uintNum
	floatNum
)

// number holds one numeric value in its widest lossless representation.
// Signed integers and the unsigned widths that fit int64 carry i, uint and
// uint64 carry u, floats carry f.
type number struct {
	i    int64
	u    uint64
	f    float64
	kind numKind
}

func (n number) float() float64 {
	switch n.kind {
	case intNum:
		return float64(n.i)
	case uintNum:
		return float64(n.u)
	default:
		return n.f
	}
}

// compareNumeric orders two numbers. Integer kinds compare exactly, so
// distinct integers above 2^53 never collapse to the same value; the float64
// path is taken only when a float is involved.
func compareNumeric(a, b number) int {
	switch {
	case a.kind == intNum && b.kind == intNum:
		return cmp.Compare(a.i, b.i)
	case a.kind == uintNum && b.kind == uintNum:
		return cmp.Compare(a.u, b.u)
	case a.kind == intNum && b.kind == uintNum:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == uintNum && b.kind == intNum:
		return -compareNumeric(b, a)
	default:
		return cmp.Compare(a.float(), b.float())
	}
}

func numericValue(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{i: int64(n), kind: intNum}, true
	case int8:
		return number{i: int64(n), kind: intNum}, true
	case int16:
		return number{i: int64(n), kind: intNum}, true
	case int32:
		return number{i: int64(n), kind: intNum}, true
	case int64:
		return number{i: n, kind: intNum}, true
	case uint:
		return number{u: uint64(n), kind: uintNum}, true
	case uint8:
		return number{i: int64(n), kind: intNum}, true
	case uint16:
		return number{i: int64(n), kind: intNum}, true
	case uint32:
		return number{i: int64(n), kind: intNum}, true
	case uint64:
		return number{u: n, kind: uintNum}, true
	case float32:
		return number{f: float64(n), kind: floatNum}, true
	case float64:
		return number{f: n, kind: floatNum}, true
	default:
		return number{}, false
	}
}
