package sortgo

import (
	"math/bits"
	"sync/atomic"
	"time"

	"github.com/hupe1980/sortgo/util"
)

// engine carries one top-level sort invocation: the sequence, the resolved
// comparator (key and reverse already folded in), the read-only
// configuration, and the instrumentation counters.
type engine[T any] struct {
	data []T
	cmp  func(a, b T) int
	opts options
	rng  *util.RNG

	depthLimit int
	counting   bool

	// Touched only when counting is enabled. Atomic because dispatcher
	// workers share the counters.
	comparisons atomic.Int64
	swaps       atomic.Int64

	disp *dispatcher
}

func newEngine[T any](data []T, compare func(a, b T) int, o options) *engine[T] {
	if o.reverse {
		forward := compare
		compare = func(a, b T) int { return forward(b, a) }
	}

	seed := o.seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}

	depthLimit := o.depthLimit
	if depthLimit == 0 {
		depthLimit = defaultDepthLimit(len(data))
	}

	return &engine[T]{
		data:       data,
		cmp:        compare,
		opts:       o,
		rng:        util.NewRNG(seed),
		depthLimit: depthLimit,
		counting:   o.instrumented(),
	}
}

// defaultDepthLimit is 2*floor(log2(n)): generous enough that balanced
// partitioning never trips it, tight enough to cap degenerate pivot runs.
func defaultDepthLimit(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * (bits.Len(uint(n)) - 1)
}

func (e *engine[T]) compare(a, b T) int {
	if e.counting {
		e.comparisons.Add(1)
	}
	return e.cmp(a, b)
}

func (e *engine[T]) swap(i, j int) {
	e.data[i], e.data[j] = e.data[j], e.data[i]
	if e.counting {
		e.swaps.Add(1)
	}
}

// run executes the sort over the whole sequence.
func (e *engine[T]) run() error {
	if e.opts.parallel {
		return e.runParallel()
	}
	return e.runRange(0, len(e.data), 0)
}

// runRange drives [lo,hi) and converts comparator escapes back into errors.
// On error the sequence is an unspecified-but-valid permutation: elements
// are only ever swapped, never dropped or duplicated.
func (e *engine[T]) runRange(lo, hi, depth int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ComparisonError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	e.sort(lo, hi, depth)
	return nil
}

// sort is the hybrid driver. Per iteration it either terminates the range
// via a fallback or partitions it, recurses into the smaller child and
// loops on the larger one in the same frame. Iterating the larger side
// bounds the call stack to O(log n) even when partitioning degenerates.
func (e *engine[T]) sort(lo, hi, depth int) {
	for hi-lo > 1 && hi-lo >= e.opts.insertionThreshold {
		if depth > e.depthLimit {
			e.opts.metrics.RecordHeapFallback(hi-lo, depth)
			e.opts.logger.LogHeapFallback(lo, hi, depth, e.depthLimit)
			e.heapSort(lo, hi)
			return
		}

		p := e.partitionStep(lo, hi)

		// Hand the larger partition to the dispatcher when eligible; this
		// goroutine keeps the smaller one.
		if e.disp != nil && hi-lo >= e.opts.parallelThreshold {
			if p-lo < hi-p-1 {
				if e.spawn(p+1, hi, depth+1) {
					hi = p
					depth++
					continue
				}
			} else if e.spawn(lo, p, depth+1) {
				lo = p + 1
				depth++
				continue
			}
		}

		if p-lo < hi-p-1 {
			e.sort(lo, p, depth+1)
			lo = p + 1
		} else {
			e.sort(p+1, hi, depth+1)
			hi = p
		}
		depth++
	}

	if hi-lo > 1 {
		e.opts.metrics.RecordInsertionFallback(hi - lo)
		e.insertionSort(lo, hi)
	}
}

// partitionStep runs one pivot selection + partition over [lo,hi) and
// notifies the hook and metrics.
func (e *engine[T]) partitionStep(lo, hi int) int {
	pivotIdx := e.selectPivot(lo, hi)
	p := e.partition(lo, hi, pivotIdx)

	e.opts.metrics.RecordPartition(hi - lo)
	if e.opts.hook != nil {
		e.opts.hook(lo, hi, p, e.comparisons.Load())
	}
	return p
}

// sortWith is the shared top-level entry: builds the engine, runs it, and
// reports to the configured logger and metrics collector.
func sortWith[T any](data []T, compare func(a, b T) int, o options) error {
	start := time.Now()
	e := newEngine(data, compare, o)

	var err error
	if len(data) > 1 {
		err = e.run()
	}

	o.metrics.RecordSort(len(data), e.comparisons.Load(), e.swaps.Load(), time.Since(start), err)
	o.logger.LogSort(len(data), time.Since(start), err)
	return err
}
