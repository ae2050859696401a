// Package sortkit implements a family of generic comparison sorters that
// relocate elements without duplicating them, plus key-bounded sorts
// (counting, radix, bucket) that run in near linear time.
package sortkit

// InsertionSorter sorts a slice in place with binary insertion sort.
// It performs O(n log n) comparisons and O(n^2) moves, and is stable when
// the comparison function includes equality.
type InsertionSorter[E any] []E

// Insertion wraps s in an InsertionSorter.
func Insertion[E any](s []E) InsertionSorter[E] {
	return InsertionSorter[E](s)
}

// SortBy sorts the wrapped slice so that compare holds between neighbours.
func (s InsertionSorter[E]) SortBy(compare Compare[E]) {
	if len(s) < 2 {
		return
	}
	for i := 1; i < len(s); i++ {
		insertAt(s, i, compare)
	}
}

// insertAt moves s[i] into its place within the sorted prefix s[:i].
func insertAt[E any](s []E, i int, compare Compare[E]) {
	e := take(s, i)
	hole := i
	// the element goes back into whichever slot is empty, even if compare panics
	defer func() { place(s, hole, e) }()

	left, right := 0, i
	for left < right {
		mid := int(uint(left+right) >> 1)
		// s[mid] may stay before e: everything up to mid is before e
		if compare(s[mid], e) {
			left = mid + 1
		} else {
			right = mid
		}
	}

	shiftRight(s, left, i)
	hole = left
}
