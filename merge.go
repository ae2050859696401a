package sortkit

// MergeSorter sorts a slice with top-down merge sort over auxiliary buffers.
// It is stable, performs O(n log n) comparisons and uses O(n) extra space.
type MergeSorter[E any] []E

// Merge wraps s in a MergeSorter.
func Merge[E any](s []E) MergeSorter[E] {
	return MergeSorter[E](s)
}

// SortBy sorts the wrapped slice so that compare holds between neighbours.
func (s MergeSorter[E]) SortBy(compare Compare[E]) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, s, compare)
}

type mergePhase int

const (
	sortingLeft mergePhase = iota
	sortingRight
	merging
	merged
)

// mergeRun is one level of the recursion. It records where every element of
// src currently lives so that a panicking compare can hand them all back.
type mergeRun[E any] struct {
	dst, src    []E
	left, right []E
	phase       mergePhase
	i, j, k     int // next unread of left, right; next empty slot of dst
}

// mergeSort moves the elements of src into dst in sorted order.
// dst is either an empty buffer of the same length or src itself.
func mergeSort[E any](dst, src []E, compare Compare[E]) {
	if len(src) == 1 {
		place(dst, 0, take(src, 0))
		return
	}

	// the left half takes the extra element
	mid := (len(src) + 1) / 2

	r := &mergeRun[E]{dst: dst, src: src}
	defer r.unwind()

	r.left = make([]E, mid)
	mergeSort(r.left, src[:mid], compare)
	r.phase = sortingRight

	r.right = make([]E, len(src)-mid)
	mergeSort(r.right, src[mid:], compare)
	r.phase = merging

	r.merge(compare)
	r.phase = merged
}

// merge moves the fronts of left and right into dst, preferring left
// whenever compare allows it.
func (r *mergeRun[E]) merge(compare Compare[E]) {
	for r.i < len(r.left) && r.j < len(r.right) {
		if compare(r.left[r.i], r.right[r.j]) {
			place(r.dst, r.k, take(r.left, r.i))
			r.i++
		} else {
			place(r.dst, r.k, take(r.right, r.j))
			r.j++
		}
		r.k++
	}

	// at most one of these moves anything
	r.k += drain(r.dst[r.k:], r.left[r.i:])
	r.i = len(r.left)
	r.k += drain(r.dst[r.k:], r.right[r.j:])
	r.j = len(r.right)
}

// unwind runs on the way out of mergeSort. It does nothing after a complete
// merge; otherwise compare panicked and every element of this level is moved
// back into src, in no particular order, before the panic continues upward.
func (r *mergeRun[E]) unwind() {
	switch r.phase {
	case sortingLeft:
		// the left half already put its elements back into src[:mid]
	case sortingRight:
		drain(r.src, r.left)
	case merging:
		n := r.k
		if !sameBacking(r.dst, r.src) {
			n = drain(r.src, r.dst[:r.k])
		}
		n += drain(r.src[n:], r.left[r.i:])
		drain(r.src[n:], r.right[r.j:])
	}
}

// sameBacking reports whether a and b start at the same slot.
func sameBacking[E any](a, b []E) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
