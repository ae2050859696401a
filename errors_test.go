package sortkit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zeebo/assert"

	"github.com/lanrat/sortkit"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "key overflow",
			err:  sortkit.NewOverflowError(sortkit.KeyOverflow, 12, 10, "CountingSort"),
			want: "key overflow in CountingSort: 12 is not below 10",
		},
		{
			name: "negative element",
			err:  &sortkit.OverflowError{Kind: sortkit.ElementOverflow, Key: 4, Negative: true, Context: "RadixSort"},
			want: "element overflow in RadixSort: key -4 is below 0",
		},
		{
			name: "bound overflow",
			err:  &sortkit.OverflowError{Kind: sortkit.BoundOverflow, Context: "RadixSort"},
			want: "bound overflow in RadixSort: bound does not fit in 64 bits",
		},
		{
			name: "domain",
			err:  sortkit.NewDomainError(1.5, 3, "BucketSort"),
			want: "domain error in BucketSort: key 1.5 at index 3 is outside [0, 1)",
		},
		{
			name: "underflow",
			err:  sortkit.NewUnderflowError("Maximum"),
			want: "heap underflow in Maximum",
		},
		{
			name: "key order",
			err:  sortkit.NewKeyOrderError(2, 9, 4),
			want: "new key 4 is smaller than current key 9 at index 2",
		},
		{
			name: "index",
			err:  sortkit.NewIndexError(5, 3),
			want: "index 5 out of range [0, 3)",
		},
		{
			name: "config",
			err:  sortkit.NewConfigError("scale", 1, "must be at least 2"),
			want: "config error in field scale (value: 1): must be at least 2",
		},
		{
			name: "comparison without context",
			err:  sortkit.NewComparisonError("boom", ""),
			want: "comparison panic: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err.Error(), tt.want)
		})
	}
}

func TestOverflowKindString(t *testing.T) {
	assert.Equal(t, sortkit.KeyOverflow.String(), "key overflow")
	assert.Equal(t, sortkit.OverflowKind(7).String(), "OverflowKind(7)")
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := sortkit.NewDomainError(2, 0, "BucketSort")
	wrapped := fmt.Errorf("sorting readings: %w", base)

	var domain *sortkit.DomainError
	assert.That(t, errors.As(wrapped, &domain))
	assert.Equal(t, domain.Key, 2.0)

	var overflow *sortkit.OverflowError
	assert.False(t, errors.As(wrapped, &overflow))
}

func TestComparisonErrorUnwrap(t *testing.T) {
	cause := errors.New("bad compare")
	err := sortkit.NewComparisonError(cause, "MergeSorter.SortBy")
	assert.That(t, errors.Is(err, cause))
}
