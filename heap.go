package sortkit

import (
	"github.com/lanrat/sortkit/biheap"
)

// HeapSorter sorts a slice in place with binary heap sort.
// It runs in O(n log n) time with O(1) extra space and is not stable.
type HeapSorter[E any] []E

// Heap wraps s in a HeapSorter.
func Heap[E any](s []E) HeapSorter[E] {
	return HeapSorter[E](s)
}

// SortBy sorts the wrapped slice so that compare holds between neighbours.
// compare plays the role of "less" for the max-heap: the root is an element
// that compare never places before another.
func (s HeapSorter[E]) SortBy(compare Compare[E]) {
	if len(s) < 2 {
		return
	}
	h := []E(s)
	biheap.BuildMax[E](h, compare)
	for i := len(h) - 1; i > 0; i-- {
		swap(h, 0, i)
		biheap.MaxHeapify[E](h, compare, 0, i)
	}
}
