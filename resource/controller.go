// Package resource bounds the concurrency of parallel sorts.
package resource

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent sort workers in
	// addition to the calling goroutine. If 0, defaults to GOMAXPROCS.
	MaxWorkers int64
}

// Controller manages worker admission for the concurrent dispatcher.
//
// Admission is non-blocking on purpose: a partition that finds no free slot
// is sorted inline by the goroutine that produced it. The pool is therefore
// a work-admission bound, not one worker per range, and deeply recursive
// inputs cannot oversubscribe it.
type Controller struct {
	cfg Config

	sem    *semaphore.Weighted
	active atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	return &Controller{
		cfg: cfg,
		sem: semaphore.NewWeighted(cfg.MaxWorkers),
	}
}

// TryAcquireWorker claims a worker slot without blocking.
// Returns false when the pool is saturated.
func (c *Controller) TryAcquireWorker() bool {
	if !c.sem.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseWorker returns a previously acquired slot.
func (c *Controller) ReleaseWorker() {
	c.active.Add(-1)
	c.sem.Release(1)
}

// ActiveWorkers returns the number of currently claimed slots.
func (c *Controller) ActiveWorkers() int64 {
	return c.active.Load()
}

// MaxWorkers returns the configured worker bound.
func (c *Controller) MaxWorkers() int64 {
	return c.cfg.MaxWorkers
}
