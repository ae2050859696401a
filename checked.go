package sortkit

import (
	"fmt"
)

// SortChecked runs sorter.SortBy(compare) and turns a panic raised by
// compare into a *ComparisonError. Whatever the outcome, the sorted slice
// still holds exactly the elements it held before the call.
func SortChecked[E any](sorter Sorter[E], compare Compare[E]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, fmt.Sprintf("%T.SortBy", sorter))
		}
	}()
	sorter.SortBy(compare)
	return nil
}

// IsSortedBy reports whether compare holds for every adjacent pair of s.
func IsSortedBy[E any](s []E, compare Compare[E]) bool {
	for i := 1; i < len(s); i++ {
		if !compare(s[i-1], s[i]) {
			return false
		}
	}
	return true
}
