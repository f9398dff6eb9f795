package sortgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting sort metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Configuring a non-noop collector enables comparison and swap counting for
// the duration of the sort.
type MetricsCollector interface {
	// RecordSort is called once per top-level sort. n is the sequence
	// length, comparisons and swaps are totals across all fallback paths,
	// duration is the total time taken, err is nil if successful.
	RecordSort(n int, comparisons, swaps int64, duration time.Duration, err error)

	// RecordPartition is called after each partition step with the length
	// of the partitioned range.
	RecordPartition(size int)

	// RecordInsertionFallback is called when a range is delegated to
	// insertion sort.
	RecordInsertionFallback(size int)

	// RecordHeapFallback is called when the depth limit hands a range to
	// heapsort. depth is the recursion depth that triggered the escape.
	RecordHeapFallback(size, depth int)

	// RecordParallelHandoff is called when a partition is handed to a
	// dispatcher worker.
	RecordParallelHandoff(size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSort(int, int64, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordPartition(int)                                {}
func (NoopMetricsCollector) RecordInsertionFallback(int)                        {}
func (NoopMetricsCollector) RecordHeapFallback(int, int)                        {}
func (NoopMetricsCollector) RecordParallelHandoff(int)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SortCount          atomic.Int64
	SortErrors         atomic.Int64
	SortTotalNanos     atomic.Int64
	ElementsSorted     atomic.Int64
	Comparisons        atomic.Int64
	Swaps              atomic.Int64
	Partitions         atomic.Int64
	InsertionFallbacks atomic.Int64
	HeapFallbacks      atomic.Int64
	ParallelHandoffs   atomic.Int64
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(n int, comparisons, swaps int64, duration time.Duration, err error) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
	b.ElementsSorted.Add(int64(n))
	b.Comparisons.Add(comparisons)
	b.Swaps.Add(swaps)
	if err != nil {
		b.SortErrors.Add(1)
	}
}

// RecordPartition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPartition(size int) {
	b.Partitions.Add(1)
}

// RecordInsertionFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsertionFallback(size int) {
	b.InsertionFallbacks.Add(1)
}

// RecordHeapFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHeapFallback(size, depth int) {
	b.HeapFallbacks.Add(1)
}

// RecordParallelHandoff implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParallelHandoff(size int) {
	b.ParallelHandoffs.Add(1)
}

// BasicMetricsStats is a snapshot of collected metrics.
type BasicMetricsStats struct {
	SortCount          int64
	SortErrors         int64
	SortAvgNanos       int64
	ElementsSorted     int64
	Comparisons        int64
	Swaps              int64
	Partitions         int64
	InsertionFallbacks int64
	HeapFallbacks      int64
	ParallelHandoffs   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SortCount:          b.SortCount.Load(),
		SortErrors:         b.SortErrors.Load(),
		SortAvgNanos:       b.getAvgSortNanos(),
		ElementsSorted:     b.ElementsSorted.Load(),
		Comparisons:        b.Comparisons.Load(),
		Swaps:              b.Swaps.Load(),
		Partitions:         b.Partitions.Load(),
		InsertionFallbacks: b.InsertionFallbacks.Load(),
		HeapFallbacks:      b.HeapFallbacks.Load(),
		ParallelHandoffs:   b.ParallelHandoffs.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSortNanos() int64 {
	count := b.SortCount.Load()
	if count == 0 {
		return 0
	}
	return b.SortTotalNanos.Load() / count
}
