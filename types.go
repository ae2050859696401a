package sortkit

// Sorter is the interface that all comparison sorters must satisfy.
// A Sorter wraps exactly one slice and reorders it in place.
type Sorter[E any] interface {
	// SortBy reorders the wrapped slice so that compare(s[i-1], s[i]) holds
	// for every adjacent pair. Slices of length 0 or 1 are left untouched.
	SortBy(compare Compare[E])
}

// Compare is a function type describing the order two neighbouring elements
// must satisfy after sorting. It reports whether prev may be placed directly
// before next, so a < function yields ascending output and a > function
// yields descending output.
// Including equality (<= or >=) makes the stable sorters keep equal elements
// in their input order, and makes a second sort of already sorted output a
// no-op for every comparison sorter but HeapSorter.
// The function must be pure; a panic inside it is never allowed to drop or
// duplicate an element of the slice being sorted.
type Compare[E any] func(prev, next E) bool

// KeyFunc extracts the integer key counting sort classifies an element by.
// Valid keys lie in [0, maxKey).
type KeyFunc[E any] func(E) int

// FractionFunc extracts the key bucket sort classifies an element by.
// Valid keys lie in [0, 1).
type FractionFunc[E any] func(E) float64

// Unsigned is the set of integer types radix sort accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
