package sortkit

import (
	"cmp"
)

// Ascending orders cmp.Ordered values smallest first. It includes equality,
// so the stable sorters keep equal values in input order.
func Ascending[T cmp.Ordered](prev, next T) bool {
	return prev <= next
}

// Descending orders cmp.Ordered values largest first, including equality.
func Descending[T cmp.Ordered](prev, next T) bool {
	return prev >= next
}

// Less is the strict ascending order.
func Less[T cmp.Ordered](prev, next T) bool {
	return prev < next
}

// Greater is the strict descending order.
func Greater[T cmp.Ordered](prev, next T) bool {
	return prev > next
}

// By returns a non-strict ascending Compare over the key extracted by key.
func By[E any, K cmp.Ordered](key func(E) K) Compare[E] {
	return func(prev, next E) bool {
		return key(prev) <= key(next)
	}
}
