// Package sortgo provides a hybrid in-memory comparison sort for Go.
//
// Sortgo is an introsort engine: it starts with partition-exchange sorting,
// escapes to an in-place heapsort when recursion depth exceeds a bound, and
// finishes small ranges with insertion sort. The worst case is O(n log n)
// regardless of pivot strategy or input order. The sort is not stable.
//
// # Quick Start
//
// Package-level entry points cover the common cases:
//
//	sorted, _ := sortgo.Sort([]int{64, 34, 25, 12, 22, 11, 90})
//	// [11 12 22 25 34 64 90]
//
//	_ = sortgo.SortInPlace(data)                       // mutates data
//	byLen, _ := sortgo.SortKeyed(words, func(s string) int { return len(s) })
//	desc, _ := sortgo.Sort(data, sortgo.WithReverse(true))
//
// # Pivot Strategies
//
// Six strategies are available via WithPivotStrategy:
//
//	PivotRandom          uniform random index (seedable via WithSeed)
//	PivotFirst           first element; O(n²) prone on sorted input
//	PivotLast            last element; O(n²) prone on reverse-sorted input
//	PivotMedianOfThree   median of first/middle/last (default)
//	PivotMedianOfMedians guaranteed 30th-70th percentile pivot, higher cost
//	PivotAdaptive        probes the range and picks a strategy per range
//
// Even the adversarial First/Last strategies terminate in O(n log n): the
// depth limit hands the range to the heapsort fallback.
//
// # Advanced Usage
//
// The Sorter type holds a comparator and a reusable configuration:
//
//	s, _ := sortgo.NewOrderedSorter[int](
//	    sortgo.WithPivotStrategy(sortgo.PivotRandom),
//	    sortgo.WithSeed(42),
//	)
//	_ = s.SortInPlace(data)
//	_ = s.Introsort(data)     // forces the depth-limited hybrid path
//	_ = s.ParallelSort(data)  // forces the concurrent dispatcher
//
// ParallelSort splits large partitions across a bounded worker pool. Workers
// own disjoint index ranges of the same slice, so no locking is needed for
// element access; the caller blocks until every worker finishes.
//
// # Instrumentation
//
// A partition hook observes the sort without altering it:
//
//	hook := func(lo, hi, pivot int, comparisons int64) { ... }
//	_ = sortgo.SortInPlace(data, sortgo.WithPartitionHook(hook))
//
// When no hook and no metrics collector are configured, instrumentation is
// disabled entirely and costs nothing.
package sortgo
