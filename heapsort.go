package sortgo

// heapSort sorts [lo,hi) in place with a sift-down binary heap. This is the
// depth-limit escape: once triggered it fully resolves the range without
// re-entering the driver, capping the worst case at O(k log k).
//
// The comparator already encodes reverse ordering, so the heap keeps the
// extremum under the active ordering at the top.
func (e *engine[T]) heapSort(lo, hi int) {
	first := lo
	n := hi - lo

	// Build the heap, greatest element at the root.
	for i := n/2 - 1; i >= 0; i-- {
		e.siftDown(first, i, n)
	}

	// Repeatedly move the root to the tail of the shrinking range.
	for i := n - 1; i > 0; i-- {
		e.swap(first, first+i)
		e.siftDown(first, 0, i)
	}
}

// siftDown restores the heap property for the subtree rooted at root within
// the first n elements of the range starting at first.
func (e *engine[T]) siftDown(first, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && e.compare(e.data[first+child], e.data[first+child+1]) < 0 {
			child++
		}
		if e.compare(e.data[first+root], e.data[first+child]) >= 0 {
			return
		}
		e.swap(first+root, first+child)
		root = child
	}
}
