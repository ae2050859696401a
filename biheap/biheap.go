// Package biheap implements binary max-heap primitives over a slice.
// The children of index i are 2i+1 and 2i+2. The heap is ordered by a less
// function: no live node is less than either of its live children.
package biheap

// Parent returns the index of the parent of i. i must be positive.
func Parent(i int) int { return (i - 1) / 2 }

// Left returns the index of the left child of i.
func Left(i int) int { return 2*i + 1 }

// Right returns the index of the right child of i.
func Right(i int) int { return 2*i + 2 }

// MaxHeapify restores the heap property at i within h[:size], assuming both
// subtrees of i already satisfy it. Only swaps are used to move elements.
// Complexity is O(log size).
func MaxHeapify[E any](h []E, less func(a, b E) bool, i, size int) {
	for {
		l, r := Left(i), Right(i)
		largest := i
		if l < size && less(h[largest], h[l]) {
			largest = l
		}
		if r < size && less(h[largest], h[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		h[i], h[largest] = h[largest], h[i]
		i = largest
	}
}

// BuildMax turns h into a max-heap, heapifying every internal node from the
// last to the root. Runs in O(n).
func BuildMax[E any](h []E, less func(a, b E) bool) {
	for i := len(h)/2 - 1; i >= 0; i-- {
		MaxHeapify(h, less, i, len(h))
	}
}

// SiftUp moves h[i] towards the root while its parent is less than it.
func SiftUp[E any](h []E, less func(a, b E) bool, i int) {
	for i > 0 {
		p := Parent(i)
		if !less(h[p], h[i]) {
			return
		}
		h[i], h[p] = h[p], h[i]
		i = p
	}
}

// IsMaxHeap reports whether h[:size] satisfies the heap property.
func IsMaxHeap[E any](h []E, less func(a, b E) bool, size int) bool {
	for i := 1; i < size; i++ {
		if less(h[Parent(i)], h[i]) {
			return false
		}
	}
	return true
}
