package sortkit

// QuickSorter sorts a slice in place with quicksort using Lomuto partitioning
// around the last element of each range. The pivot choice is deterministic,
// so sorted input and inputs with many equal keys take O(n^2) time.
// It is not stable.
type QuickSorter[E any] []E

// Quick wraps s in a QuickSorter.
func Quick[E any](s []E) QuickSorter[E] {
	return QuickSorter[E](s)
}

// SortBy sorts the wrapped slice so that compare holds between neighbours.
func (s QuickSorter[E]) SortBy(compare Compare[E]) {
	if len(s) < 2 {
		return
	}
	quickSort(s, compare, 0, len(s))
}

// quickSort sorts s[first:end]. It recurses into the shorter side and loops
// on the longer one, which keeps the stack depth at O(log n).
func quickSort[E any](s []E, compare Compare[E], first, end int) {
	for end-first > 1 {
		p := partition(s, compare, first, end)
		if p-first < end-p-1 {
			quickSort(s, compare, first, p)
			first = p + 1
		} else {
			quickSort(s, compare, p+1, end)
			end = p
		}
	}
}

// partition rearranges s[first:end] around the pivot s[end-1] and returns
// the pivot's final index i: compare(x, pivot) holds for every x in s[first:i].
func partition[E any](s []E, compare Compare[E], first, end int) int {
	last := end - 1
	i := first
	for j := first; j < last; j++ {
		if compare(s[j], s[last]) {
			swap(s, i, j)
			i++
		}
	}
	swap(s, i, last)
	return i
}
