package sortgo

import (
	"fmt"
	"slices"
)

// PivotStrategy selects how the driver picks a pivot for each range.
type PivotStrategy int

const (
	// PivotRandom picks a uniform-random index in the range. Seedable via
	// WithSeed for reproducible runs.
	PivotRandom PivotStrategy = iota

	// PivotFirst picks the first element. Degrades to O(n²) partitioning
	// on already-sorted input; the depth limit still caps the total cost.
	PivotFirst

	// PivotLast picks the last element. Degrades to O(n²) partitioning on
	// reverse-sorted input; the depth limit still caps the total cost.
	PivotLast

	// PivotMedianOfThree picks the median of the first, middle and last
	// elements. Ties resolve to the lowest index holding the median value.
	PivotMedianOfThree

	// PivotMedianOfMedians picks a pivot guaranteed to lie between the
	// 30th and 70th percentile of the range, bounding partition imbalance
	// without relying on the heapsort escape. Higher constant cost: it
	// allocates and sorts an index scratch slice per selection.
	PivotMedianOfMedians

	// PivotAdaptive probes the range and chooses between PivotRandom and
	// PivotMedianOfThree per range.
	PivotAdaptive
)

// String implements fmt.Stringer.
func (s PivotStrategy) String() string {
	switch s {
	case PivotRandom:
		return "random"
	case PivotFirst:
		return "first"
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median-of-three"
	case PivotMedianOfMedians:
		return "median-of-medians"
	case PivotAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (s PivotStrategy) valid() bool {
	return s >= PivotRandom && s <= PivotAdaptive
}

// ParsePivotStrategy parses a strategy name as produced by String.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	for s := PivotRandom; s <= PivotAdaptive; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Tunables for the adaptive sortedness probe. The probe samples adjacent
// pairs; a range whose sample is almost fully ordered (or almost fully
// reversed) is treated as nearly sorted.
const (
	adaptiveMinLength  = 64
	adaptiveProbePairs = 32
	adaptiveOrderedPct = 90
)

// selectPivot returns the pivot index for [lo,hi) under the configured
// strategy. Selection only reads elements, it never mutates the sequence.
func (e *engine[T]) selectPivot(lo, hi int) int {
	strategy := e.opts.strategy
	if strategy == PivotAdaptive {
		strategy = e.adaptiveStrategy(lo, hi)
	}

	switch strategy {
	case PivotRandom:
		return lo + e.rng.Intn(hi-lo)
	case PivotFirst:
		return lo
	case PivotLast:
		return hi - 1
	case PivotMedianOfMedians:
		return e.medianOfMedians(lo, hi)
	default:
		return e.medianOfThree(lo, hi)
	}
}

// medianOfThree returns the index of the median of data[lo], data[mid] and
// data[hi-1]. Among equal values the lowest index wins.
func (e *engine[T]) medianOfThree(lo, hi int) int {
	mid := lo + (hi-lo)/2
	idx := [3]int{lo, mid, hi - 1}

	// Insertion-order the three candidates; swapping only on strict
	// inequality keeps equal values in ascending index order.
	if e.compare(e.data[idx[1]], e.data[idx[0]]) < 0 {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if e.compare(e.data[idx[2]], e.data[idx[1]]) < 0 {
		idx[1], idx[2] = idx[2], idx[1]
		if e.compare(e.data[idx[1]], e.data[idx[0]]) < 0 {
			idx[0], idx[1] = idx[1], idx[0]
		}
	}

	if e.compare(e.data[idx[0]], e.data[idx[1]]) == 0 {
		return idx[0]
	}
	return idx[1]
}

// medianOfMedians implements the classic groups-of-5 selection over scratch
// slices of indices, so the sequence itself is never reordered by pivot
// selection. Each group of 5 contributes its median; the pivot is the exact
// median of those group medians, which is what pins the settled pivot inside
// the 30th-70th percentile window. Iterating the grouping over the medians
// list instead would weaken that bound each level and lose the guarantee.
func (e *engine[T]) medianOfMedians(lo, hi int) int {
	n := hi - lo
	if n <= 5 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = lo + i
		}
		e.insertionSortIndices(idx)
		return idx[(n-1)/2]
	}

	var group [5]int
	medians := make([]int, 0, (n+4)/5)
	for i := lo; i < hi; i += 5 {
		j := min(i+5, hi)
		g := group[:j-i]
		for k := range g {
			g[k] = i + k
		}
		e.insertionSortIndices(g)
		medians = append(medians, g[(len(g)-1)/2])
	}

	slices.SortFunc(medians, func(a, b int) int {
		return e.compare(e.data[a], e.data[b])
	})
	return medians[(len(medians)-1)/2]
}

// insertionSortIndices orders idx by the elements it points at. Swapping
// only on strict inequality keeps equal values in their original index
// order.
func (e *engine[T]) insertionSortIndices(idx []int) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && e.compare(e.data[idx[j]], e.data[idx[j-1]]) < 0; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}

// adaptiveStrategy estimates how sorted [lo,hi) already is from a sample of
// adjacent pairs. Nearly sorted and nearly reversed ranges get
// median-of-three, which picks a balanced pivot there; everything else gets
// a random pivot. The exact sampling is a tunable policy, not a contract.
func (e *engine[T]) adaptiveStrategy(lo, hi int) PivotStrategy {
	n := hi - lo
	if n < adaptiveMinLength {
		return PivotMedianOfThree
	}

	step := max(n/adaptiveProbePairs, 1)
	ordered, total := 0, 0
	for i := lo; i+1 < hi && total < adaptiveProbePairs; i += step {
		total++
		if e.compare(e.data[i], e.data[i+1]) <= 0 {
			ordered++
		}
	}
	if total == 0 {
		return PivotMedianOfThree
	}

	if ordered*100 >= total*adaptiveOrderedPct || (total-ordered)*100 >= total*adaptiveOrderedPct {
		return PivotMedianOfThree
	}
	return PivotRandom
}
