package sortkit

import (
	"github.com/lanrat/sortkit/bucket"
)

// BucketSort stably sorts seq by the keys keyOf extracts, which must lie in
// [0, 1). Elements are spread over len(seq) buckets by floor(key*n); each
// bucket keeps its elements ordered by insertion into a linked list, and the
// buckets are concatenated in order. Expected time is O(n) for uniformly
// distributed keys and O(n^2) when every key lands in one bucket.
//
// A key outside [0, 1), NaN included, yields a *DomainError before seq is
// touched. On success seq is consumed like CountingSort.
func BucketSort[E any](seq []E, keyOf FractionFunc[E]) ([]E, error) {
	n := len(seq)

	keys := make([]float64, n)
	for i := range seq {
		key := keyOf(seq[i])
		if !(key >= 0 && key < 1) {
			return nil, NewDomainError(key, i, "BucketSort")
		}
		keys[i] = key
	}

	buckets := make([]bucket.List[E], n)
	for i := range seq {
		b := int(keys[i] * float64(n))
		// key*n can round up to n for keys just below 1
		if b >= n {
			b = n - 1
		}
		buckets[b].Insert(keys[i], take(seq, i))
	}

	result := make([]E, 0, n)
	for i := range buckets {
		result = buckets[i].AppendTo(result)
	}
	return result, nil
}
