package sortgo

// partition rearranges [lo,hi) around the element at pivotIdx using Lomuto
// exchange partitioning: the pivot is parked at the top of the range, a
// single pass swaps not-greater elements to the front, and a final swap
// settles the pivot between the two groups. Returns the settled pivot index,
// which is excluded from both child ranges.
//
// Equal-to-pivot elements may land on either side; the sort is not stable.
// Ranges of length 0 or 1 are no-ops.
func (e *engine[T]) partition(lo, hi, pivotIdx int) int {
	if hi-lo < 2 {
		return lo
	}

	last := hi - 1
	if pivotIdx != last {
		e.swap(pivotIdx, last)
	}
	pivot := e.data[last]

	i := lo
	for j := lo; j < last; j++ {
		if e.compare(e.data[j], pivot) <= 0 {
			if i != j {
				e.swap(i, j)
			}
			i++
		}
	}
	if i != last {
		e.swap(i, last)
	}
	return i
}
