package sortgo

import (
	"log/slog"
)

const (
	// DefaultInsertionThreshold is the range length below which the driver
	// delegates to insertion sort.
	DefaultInsertionThreshold = 10

	// DefaultParallelThreshold is the range length at or above which the
	// driver may hand partitions to the concurrent dispatcher.
	DefaultParallelThreshold = 10000
)

// PartitionFunc observes a completed partition step. It receives the
// half-open range that was partitioned, the index at which the pivot
// settled, and the number of comparisons performed so far.
//
// The hook must not mutate the sequence. Under ParallelSort it may be
// invoked from multiple goroutines and must be safe for concurrent use.
type PartitionFunc func(lo, hi, pivot int, comparisons int64)

type options struct {
	strategy           PivotStrategy
	reverse            bool
	seed               int64
	seeded             bool
	insertionThreshold int
	depthLimit         int // 0 means 2*floor(log2(n)), derived per call
	parallelThreshold  int
	maxWorkers         int // 0 means GOMAXPROCS
	parallel           bool
	logger             *Logger
	metrics            MetricsCollector
	hook               PartitionFunc
}

// Option configures sort behavior.
//
// Options are applied and validated once per top-level call; the resulting
// configuration is read-only for the duration of the sort.
type Option func(*options)

// WithPivotStrategy selects the pivot strategy. Default: PivotMedianOfThree.
func WithPivotStrategy(strategy PivotStrategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

// WithReverse inverts the comparison order, producing a descending sort.
func WithReverse(reverse bool) Option {
	return func(o *options) {
		o.reverse = reverse
	}
}

// WithSeed fixes the seed of the randomness source used by PivotRandom and
// PivotAdaptive. Use a fixed seed for reproducible tests. Without this
// option every sort derives a fresh seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithInsertionThreshold sets the range length below which insertion sort
// runs. Must not be negative. Default: DefaultInsertionThreshold.
func WithInsertionThreshold(threshold int) Option {
	return func(o *options) {
		o.insertionThreshold = threshold
	}
}

// WithDepthLimit sets the recursion depth above which the heapsort fallback
// runs. Zero derives the limit as 2*floor(log2(n)) per call. Must not be
// negative.
func WithDepthLimit(limit int) Option {
	return func(o *options) {
		o.depthLimit = limit
	}
}

// WithParallelThreshold sets the range length at or above which the driver
// may hand partitions to the dispatcher. Only relevant when the parallel
// path is enabled. Must not be negative. Default: DefaultParallelThreshold.
func WithParallelThreshold(threshold int) Option {
	return func(o *options) {
		o.parallelThreshold = threshold
	}
}

// WithMaxWorkers bounds the number of concurrent sort workers in addition to
// the calling goroutine. Zero means GOMAXPROCS. Must not be negative.
//
// The bound is a work-admission limit, not one worker per range: partitions
// that find no free worker slot are sorted inline by the goroutine that
// produced them, so deeply recursive inputs cannot oversubscribe the pool.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithParallel enables the concurrent dispatcher for ranges at or above the
// parallel threshold. Disabled by default; Sorter.ParallelSort enables it
// unconditionally.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithLogger configures structured logging for fallback transitions and
// dispatcher hand-offs. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable
// metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithPartitionHook installs a callback invoked after each partition step.
// A nil hook disables instrumentation entirely.
func WithPartitionHook(hook PartitionFunc) Option {
	return func(o *options) {
		o.hook = hook
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		strategy:           PivotMedianOfThree,
		insertionThreshold: DefaultInsertionThreshold,
		parallelThreshold:  DefaultParallelThreshold,
		logger:             NoopLogger(),
		metrics:            NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func (o *options) validate() error {
	if !o.strategy.valid() {
		return ErrUnknownStrategy
	}
	if o.insertionThreshold < 0 {
		return &ConfigError{Option: "insertion threshold", Value: o.insertionThreshold, Reason: "must not be negative"}
	}
	if o.depthLimit < 0 {
		return &ConfigError{Option: "depth limit", Value: o.depthLimit, Reason: "must not be negative"}
	}
	if o.parallelThreshold < 0 {
		return &ConfigError{Option: "parallel threshold", Value: o.parallelThreshold, Reason: "must not be negative"}
	}
	if o.maxWorkers < 0 {
		return &ConfigError{Option: "max workers", Value: o.maxWorkers, Reason: "must not be negative"}
	}
	return nil
}

// instrumented reports whether comparison/swap counting is enabled.
func (o *options) instrumented() bool {
	if o.hook != nil {
		return true
	}
	_, noop := o.metrics.(NoopMetricsCollector)
	return !noop
}
