package sortkit

import (
	"math/bits"
)

// RadixSort sorts non-negative integers that have at most digits digits in
// base scale, applying one stable counting sort pass per digit from the
// least significant up.
//
// Every element must be below scale^digits. Bounds are checked before any
// pass runs: a bound that does not fit in 64 bits yields an *OverflowError of
// Kind BoundOverflow, an element at or above it one of Kind ElementOverflow.
// On failure seq is untouched; on success it is consumed like CountingSort.
func RadixSort[U Unsigned](seq []U, scale, digits int) ([]U, error) {
	if scale < 2 {
		return nil, NewConfigError("scale", scale, "must be at least 2")
	}
	if digits < 0 {
		return nil, NewConfigError("digits", digits, "must not be negative")
	}

	bound, ok := checkedPow(uint64(scale), digits)
	if !ok {
		return nil, &OverflowError{Kind: BoundOverflow, Context: "RadixSort"}
	}
	for _, v := range seq {
		if uint64(v) >= bound {
			return nil, NewOverflowError(ElementOverflow, uint64(v), bound, "RadixSort")
		}
	}

	result := make([]U, len(seq))
	drain(result, seq)

	base := uint64(scale)
	weight := uint64(1)
	for d := 0; d < digits; d++ {
		w := weight
		var err error
		result, err = CountingSort(result, scale, func(v U) int {
			return int(uint64(v) / w % base)
		})
		if err != nil {
			return nil, err
		}
		// scale^(d+1) <= bound, so this cannot wrap
		weight *= base
	}
	return result, nil
}

// checkedPow returns base^exp, or false if the result does not fit in 64 bits.
func checkedPow(base uint64, exp int) (uint64, bool) {
	result := uint64(1)
	for ; exp > 0; exp-- {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}

// digitsFor returns how many base scale digits v needs; at least one.
func digitsFor(v uint64, scale int) int {
	n := 1
	for b := uint64(scale); v >= b; v /= b {
		n++
	}
	return n
}
