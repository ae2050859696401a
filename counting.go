package sortkit

// CountingSort stably sorts seq by the integer keys keyOf extracts, which
// must lie in [0, maxKey). It runs in O(n + maxKey) time and space.
//
// seq is consumed: on success its elements have been moved into the
// returned slice and every slot of seq is cleared. If any key is out of
// range an *OverflowError is returned before seq is touched.
func CountingSort[E any](seq []E, maxKey int, keyOf KeyFunc[E]) ([]E, error) {
	if maxKey < 0 {
		return nil, NewConfigError("maxKey", maxKey, "must not be negative")
	}

	// tally, remembering each key so keyOf runs once per element
	keys := make([]int, len(seq))
	rank := make([]int, maxKey)
	for i := range seq {
		key := keyOf(seq[i])
		if key < 0 || key >= maxKey {
			return nil, newKeyOverflowError(key, maxKey, "CountingSort")
		}
		keys[i] = key
		rank[key]++
	}

	// rank[k] becomes the number of elements with a key <= k
	for k := 1; k < len(rank); k++ {
		rank[k] += rank[k-1]
	}

	// walking backwards while filling each key's run from its end keeps
	// equal keys in input order
	result := make([]E, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		key := keys[i]
		rank[key]--
		place(result, rank[key], take(seq, i))
	}
	return result, nil
}
