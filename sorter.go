package sortgo

import (
	"cmp"
	"slices"
)

// Sorter is a reusable, configured sorter for element type T. It pairs a
// comparator with a base configuration; per-call overrides are applied on
// top without touching the base.
//
// A Sorter is safe for concurrent use as long as Configure is not called
// concurrently with sorts.
type Sorter[T any] struct {
	compare func(a, b T) int
	optFns  []Option
}

// NewSorter creates a Sorter using the given comparator.
// Configuration is validated eagerly; no sort is attempted with an invalid
// configuration.
func NewSorter[T any](compare func(a, b T) int, optFns ...Option) (*Sorter[T], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if _, err := applyOptions(optFns); err != nil {
		return nil, err
	}
	return &Sorter[T]{
		compare: compare,
		optFns:  slices.Clone(optFns),
	}, nil
}

// NewOrderedSorter creates a Sorter for an ordered element type using the
// natural ordering.
func NewOrderedSorter[T cmp.Ordered](optFns ...Option) (*Sorter[T], error) {
	return NewSorter[T](cmp.Compare[T], optFns...)
}

// Configure appends options to the base configuration. The merged
// configuration is validated before it is adopted.
func (s *Sorter[T]) Configure(optFns ...Option) error {
	merged := append(slices.Clone(s.optFns), optFns...)
	if _, err := applyOptions(merged); err != nil {
		return err
	}
	s.optFns = merged
	return nil
}

func (s *Sorter[T]) resolve(overrides []Option) (options, error) {
	return applyOptions(append(slices.Clone(s.optFns), overrides...))
}

// Sort returns a sorted copy of data.
func (s *Sorter[T]) Sort(data []T, overrides ...Option) ([]T, error) {
	out := slices.Clone(data)
	if err := s.SortInPlace(out, overrides...); err != nil {
		return nil, err
	}
	return out, nil
}

// SortInPlace sorts data in place.
func (s *Sorter[T]) SortInPlace(data []T, overrides ...Option) error {
	o, err := s.resolve(overrides)
	if err != nil {
		return err
	}
	return sortWith(data, s.compare, o)
}

// Introsort sorts data in place via the depth-limited hybrid path with
// median-of-three pivots, regardless of the configured strategy.
func (s *Sorter[T]) Introsort(data []T) error {
	return s.SortInPlace(data,
		WithPivotStrategy(PivotMedianOfThree),
		WithDepthLimit(0),
	)
}

// ParallelSort sorts data in place with the concurrent dispatcher engaged
// for every partition, regardless of the configured parallel threshold.
// Intended for testing the dispatcher; for production use enable
// WithParallel and keep the threshold.
func (s *Sorter[T]) ParallelSort(data []T, overrides ...Option) error {
	overrides = append(slices.Clone(overrides),
		WithParallel(true),
		WithParallelThreshold(0),
	)
	return s.SortInPlace(data, overrides...)
}
