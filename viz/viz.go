// Package viz renders the partition-by-partition progress of a sort as
// styled terminal output. It drives itself entirely through the partition
// hook and never touches the sequence.
package viz

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/hupe1980/sortgo"
)

// DefaultMaxSteps bounds how many states a Recorder keeps; recording whole
// sequence snapshots per partition is O(n) each.
const DefaultMaxSteps = 64

// Step is one captured partition state.
type Step[T any] struct {
	Lo          int
	Hi          int
	Pivot       int
	Comparisons int64
	State       []T // snapshot of the whole sequence after this partition
}

// Recorder captures sequence states through the partition hook.
//
// Each snapshot reads the whole sequence, so recording requires a sequential
// sort: dispatcher workers swapping elements in their own ranges during a
// snapshot would race with it. The recorder serializes its own state, but it
// cannot serialize the sort.
type Recorder[T any] struct {
	data     []T
	maxSteps int

	mu        sync.Mutex
	steps     []Step[T]
	truncated bool
}

// NewRecorder creates a Recorder over the sequence that will be sorted.
// maxSteps <= 0 means DefaultMaxSteps.
func NewRecorder[T any](data []T, maxSteps int) *Recorder[T] {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Recorder[T]{
		data:     data,
		maxSteps: maxSteps,
	}
}

// Hook returns the partition hook to pass to sortgo.WithPartitionHook.
func (r *Recorder[T]) Hook() sortgo.PartitionFunc {
	return func(lo, hi, pivot int, comparisons int64) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if len(r.steps) >= r.maxSteps {
			r.truncated = true
			return
		}
		r.steps = append(r.steps, Step[T]{
			Lo:          lo,
			Hi:          hi,
			Pivot:       pivot,
			Comparisons: comparisons,
			State:       slices.Clone(r.data),
		})
	}
}

// Steps returns the captured states in capture order.
func (r *Recorder[T]) Steps() []Step[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.steps)
}

// Truncated reports whether steps were dropped because maxSteps was reached.
func (r *Recorder[T]) Truncated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.truncated
}

var (
	pivotStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	rangeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	outsideStyle = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Render formats captured steps, one row per step. Elements inside the
// partitioned range are highlighted and the settled pivot is accented.
func Render[T any](steps []Step[T]) string {
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "%s  ", headerStyle.Render(fmt.Sprintf("step %3d", i+1)))
		fmt.Fprintf(&b, "[%d,%d) pivot=%d cmp=%d  ", step.Lo, step.Hi, step.Pivot, step.Comparisons)

		parts := make([]string, len(step.State))
		for j, v := range step.State {
			s := fmt.Sprint(v)
			switch {
			case j == step.Pivot:
				parts[j] = pivotStyle.Render(s)
			case j >= step.Lo && j < step.Hi:
				parts[j] = rangeStyle.Render(s)
			default:
				parts[j] = outsideStyle.Render(s)
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
