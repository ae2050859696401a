package sortkit

import (
	"fmt"
	"slices"

	"github.com/zeebo/errs/v2"
)

const (
	// integers below this convert to float64 exactly
	exactFloat = 1 << 53
	lowBits    = 32
	lowMask    = 1<<lowBits - 1
)

// Ints sorts a copy of values with the algorithm named by config and returns
// it; values itself is not modified. A nil config uses DefaultConfig.
//
// The key-bounded algorithms need non-negative values: counting sort keys
// each value by itself, radix sort reads its base config.Scale digits, and
// bucket sort keys each value by value/(max+1). They always sort ascending
// and reverse the result when config.Descending is set. Counting tables are
// never larger than config.KeyLimit; a larger key range is reported as an
// error instead of being allocated.
func Ints(values []int, config *Config) ([]int, error) {
	c := mergeConfig(config)
	out := slices.Clone(values)

	compare := Compare[int](Ascending[int])
	if c.Descending {
		compare = Descending[int]
	}

	var err error
	switch c.Algorithm {
	case AlgorithmInsertion:
		Insertion(out).SortBy(compare)
		return out, nil
	case AlgorithmMerge:
		Merge(out).SortBy(compare)
		return out, nil
	case AlgorithmQuick:
		Quick(out).SortBy(compare)
		return out, nil
	case AlgorithmHeap:
		Heap(out).SortBy(compare)
		return out, nil
	case AlgorithmCounting:
		out, err = countingInts(out, c.MaxKey, c.KeyLimit)
	case AlgorithmRadix:
		out, err = radixInts(out, c.Scale, c.Digits, c.KeyLimit)
	case AlgorithmBucket:
		out, err = bucketInts(out)
	default:
		return nil, errs.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if c.Descending {
		slices.Reverse(out)
	}
	return out, nil
}

func countingInts(values []int, maxKey, limit int) ([]int, error) {
	if maxKey > limit {
		return nil, NewConfigError("MaxKey", maxKey, fmt.Sprintf("exceeds key limit %d", limit))
	}
	if maxKey == 0 && len(values) > 0 {
		largest := slices.Max(values)
		if largest >= limit {
			return nil, newKeyOverflowError(largest, limit, "CountingSort")
		}
		// an all negative input leaves no valid key; CountingSort reports the first one
		maxKey = max(largest+1, 0)
	}
	return CountingSort(values, maxKey, func(v int) int { return v })
}

func radixInts(values []int, scale, digits, limit int) ([]int, error) {
	if scale > limit {
		return nil, NewConfigError("Scale", scale, fmt.Sprintf("exceeds key limit %d", limit))
	}
	unsigned := make([]uint64, len(values))
	var largest uint64
	for i, v := range values {
		if v < 0 {
			return nil, &OverflowError{Kind: ElementOverflow, Key: uint64(-int64(v)), Negative: true, Context: "RadixSort"}
		}
		unsigned[i] = uint64(v)
		largest = max(largest, unsigned[i])
	}
	if digits == 0 {
		digits = digitsFor(largest, scale)
	}

	sorted, err := RadixSort(unsigned, scale, digits)
	if err != nil {
		return nil, err
	}
	out := values[:0]
	for _, v := range sorted {
		out = append(out, int(v))
	}
	return out, nil
}

func bucketInts(values []int) ([]int, error) {
	if len(values) == 0 {
		return values, nil
	}
	largest := slices.Max(values)
	span := float64(largest) + 1
	if largest >= 0 && uint64(largest) < exactFloat {
		// v/span is exact enough that distinct values get distinct keys below 1
		return BucketSort(values, func(v int) float64 { return float64(v) / span })
	}

	for i, v := range values {
		if v < 0 {
			return nil, NewDomainError(float64(v)/max(span, 1), i, "BucketSort")
		}
	}

	// neighbouring large values share a float64, so sort by the low bits and
	// then stably by the high bits, each of which converts exactly
	low, err := BucketSort(values, func(v int) float64 {
		return float64(uint64(v)&lowMask) / (lowMask + 1)
	})
	if err != nil {
		return nil, err
	}
	high := float64(uint64(largest)>>lowBits) + 1
	return BucketSort(low, func(v int) float64 {
		return float64(uint64(v)>>lowBits) / high
	})
}
