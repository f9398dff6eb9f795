package sortgo

import (
	"fmt"

	"github.com/hupe1980/sortgo/resource"
	"golang.org/x/sync/errgroup"
)

// dispatcher fans partitions out to a bounded worker pool. Safety rests on
// a single invariant: the driver only ever hands out disjoint index ranges
// of the one shared slice, so workers mutate without locks on element
// access. The join barrier in wait is the only synchronization point.
type dispatcher struct {
	group errgroup.Group
	ctrl  *resource.Controller
}

func newDispatcher(maxWorkers int) *dispatcher {
	return &dispatcher{
		ctrl: resource.NewController(resource.Config{MaxWorkers: int64(maxWorkers)}),
	}
}

// wait blocks until every spawned worker has finished and returns the first
// captured failure. The group carries no cancellation context: a failing
// worker never interrupts its siblings, they operate on disjoint memory and
// are allowed to run to completion.
func (d *dispatcher) wait() error {
	return d.group.Wait()
}

// runParallel drives the whole sequence with dispatcher participation. The
// calling goroutine works too; it is not merely a coordinator.
func (e *engine[T]) runParallel() error {
	e.disp = newDispatcher(e.opts.maxWorkers)

	err := e.runRange(0, len(e.data), 0)
	if werr := e.disp.wait(); err == nil {
		err = werr
	}
	return err
}

// spawn tries to hand [lo,hi) to a worker. Returns false when the pool is
// saturated, in which case the caller sorts the range inline.
func (e *engine[T]) spawn(lo, hi, depth int) bool {
	if !e.disp.ctrl.TryAcquireWorker() {
		return false
	}

	e.opts.metrics.RecordParallelHandoff(hi - lo)
	e.opts.logger.LogParallelHandoff(lo, hi, depth)

	e.disp.group.Go(func() (err error) {
		defer e.disp.ctrl.ReleaseWorker()
		defer func() {
			if r := recover(); r != nil {
				err = &WorkerError{Lo: lo, Hi: hi, cause: recoveredError(r)}
			}
		}()
		e.sort(lo, hi, depth)
		return nil
	})
	return true
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
