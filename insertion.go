package sortgo

// insertionSort sorts [lo,hi) in place. Quadratic, but with a constant
// factor that wins below the insertion threshold. Stable within the range;
// correct for lengths 0 and 1 as no-ops.
func (e *engine[T]) insertionSort(lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && e.compare(e.data[j], e.data[j-1]) < 0; j-- {
			e.swap(j, j-1)
		}
	}
}
