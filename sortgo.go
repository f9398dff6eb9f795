package sortgo

import (
	"cmp"
	"slices"
)

// Sort returns a sorted copy of data. The input is never mutated.
func Sort[T cmp.Ordered](data []T, optFns ...Option) ([]T, error) {
	return SortFunc(data, cmp.Compare[T], optFns...)
}

// SortInPlace sorts data in place.
func SortInPlace[T cmp.Ordered](data []T, optFns ...Option) error {
	return SortFuncInPlace(data, cmp.Compare[T], optFns...)
}

// SortFunc returns a sorted copy of data ordered by the comparator, which
// must return a negative number when a < b, zero when a == b and a positive
// number when a > b.
func SortFunc[T any](data []T, compare func(a, b T) int, optFns ...Option) ([]T, error) {
	out := slices.Clone(data)
	if err := SortFuncInPlace(out, compare, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}

// SortFuncInPlace sorts data in place ordered by the comparator.
func SortFuncInPlace[T any](data []T, compare func(a, b T) int, optFns ...Option) error {
	if compare == nil {
		return ErrNilComparator
	}
	o, err := applyOptions(optFns)
	if err != nil {
		return err
	}
	return sortWith(data, compare, o)
}

// SortKeyed returns a sorted copy of data ordered by the projection key.
// Elements that project to equal keys keep no particular relative order.
func SortKeyed[T any, K cmp.Ordered](data []T, key func(T) K, optFns ...Option) ([]T, error) {
	out := slices.Clone(data)
	if err := SortKeyedInPlace(out, key, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}

// SortKeyedInPlace sorts data in place ordered by the projection key.
func SortKeyedInPlace[T any, K cmp.Ordered](data []T, key func(T) K, optFns ...Option) error {
	if key == nil {
		return ErrNilKey
	}
	return SortFuncInPlace(data, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}, optFns...)
}
