package sortgo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when an unrecognized pivot strategy is configured.
	ErrUnknownStrategy = errors.New("unknown pivot strategy")

	// ErrNilComparator is returned when a Sorter is constructed without a comparator.
	ErrNilComparator = errors.New("comparator must not be nil")

	// ErrNilKey is returned when a keyed sort is given a nil key function.
	ErrNilKey = errors.New("key function must not be nil")
)

// ConfigError indicates an invalid configuration value.
//
// Configuration is validated eagerly, before any element is touched, so a
// ConfigError is always side-effect free.
type ConfigError struct {
	Option string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Option, e.Value, e.Reason)
}

// ComparisonError indicates that two values are not mutually orderable.
//
// It is only produced by the dynamic SortAny path. The sequence is left in a
// valid but unspecified order: still a permutation of the input, with no
// element lost or duplicated.
type ComparisonError struct {
	A any
	B any
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("values of type %T and %T are not comparable", e.A, e.B)
}

// WorkerError indicates that a concurrent sort unit failed.
//
// All disjoint units are allowed to finish before the first captured failure
// is returned to the caller.
//
// The original underlying error can be accessed via errors.Unwrap.
type WorkerError struct {
	Lo    int
	Hi    int
	cause error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("sort worker failed on range [%d,%d): %v", e.Lo, e.Hi, e.cause)
}

func (e *WorkerError) Unwrap() error { return e.cause }
