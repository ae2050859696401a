package sortkit_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"github.com/lanrat/sortkit"
)

const maxValue = 10

func identity(v int) int { return v }

func TestCountingSortAscending(t *testing.T) {
	v := []int{2, 4, 1, 7, 9, 9, 5, 5, 2, 4, 2, 3}
	expected := slices.Clone(v)
	sortkit.Insertion(expected).SortBy(sortkit.Ascending[int])

	result, err := sortkit.CountingSort(v, maxValue, identity)
	assert.NoError(t, err)
	assert.DeepEqual(t, result, expected)

	// the input was consumed
	for i := range v {
		assert.Equal(t, v[i], 0)
	}
}

func TestCountingSortOverflow(t *testing.T) {
	v := []int{2, 4, 1, 7, 10}
	result, err := sortkit.CountingSort(v, maxValue, identity)
	assert.Error(t, err)
	assert.Nil(t, result)

	var overflow *sortkit.OverflowError
	assert.That(t, errors.As(err, &overflow))
	assert.Equal(t, overflow.Kind, sortkit.KeyOverflow)
	assert.Equal(t, overflow.Key, uint64(10))
	assert.Equal(t, overflow.Bound, uint64(maxValue))
	assert.False(t, overflow.Negative)

	// nothing was moved
	assert.DeepEqual(t, v, []int{2, 4, 1, 7, 10})
}

func TestCountingSortNegativeKey(t *testing.T) {
	v := []int{2, -3, 1}
	_, err := sortkit.CountingSort(v, maxValue, identity)

	var overflow *sortkit.OverflowError
	assert.That(t, errors.As(err, &overflow))
	assert.That(t, overflow.Negative)
	assert.Equal(t, overflow.Key, uint64(3))
	assert.DeepEqual(t, v, []int{2, -3, 1})
}

func TestCountingSortNegativeMaxKey(t *testing.T) {
	_, err := sortkit.CountingSort([]int{1}, -1, identity)

	var configErr *sortkit.ConfigError
	assert.That(t, errors.As(err, &configErr))
	assert.Equal(t, configErr.Field, "maxKey")
}

func TestCountingSortEmpty(t *testing.T) {
	result, err := sortkit.CountingSort([]int{}, 0, identity)
	assert.NoError(t, err)
	assert.Equal(t, len(result), 0)

	// with no elements there is no key to overflow a zero bound
	result, err = sortkit.CountingSort(nil, maxValue, identity)
	assert.NoError(t, err)
	assert.Equal(t, len(result), 0)
}

type bar struct {
	id   int
	name string
}

func barInput() []bar {
	return []bar{
		{9, "ZS"},
		{0, "LS"},
		{2, "WW"},
		{1, "ZL"},
		{3, "SQ"},
	}
}

func TestCountingSortStruct(t *testing.T) {
	result, err := sortkit.CountingSort(barInput(), maxValue, func(b bar) int { return b.id })
	assert.NoError(t, err)
	assert.DeepEqual(t, result, []bar{
		{0, "LS"},
		{1, "ZL"},
		{2, "WW"},
		{3, "SQ"},
		{9, "ZS"},
	})
}

func TestCountingSortStructPointer(t *testing.T) {
	in := barInput()
	v := make([]*bar, len(in))
	for i := range in {
		v[i] = &in[i]
	}
	result, err := sortkit.CountingSort(v, maxValue, func(b *bar) int { return b.id })
	assert.NoError(t, err)
	assert.Equal(t, result[0], &in[1])
	assert.Equal(t, result[1], &in[3])
	assert.Equal(t, result[2], &in[2])
	assert.Equal(t, result[3], &in[4])
	assert.Equal(t, result[4], &in[0])

	for i := range v {
		assert.Nil(t, v[i])
	}
}

func TestCountingSortIdempotence(t *testing.T) {
	v := append(barInput(), bar{0, "LS2"})
	keyOf := func(b bar) int { return b.id }

	expected := slices.Clone(v)
	sortkit.Insertion(expected).SortBy(func(prev, next bar) bool { return prev.id <= next.id })

	result1, err := sortkit.CountingSort(v, maxValue, keyOf)
	assert.NoError(t, err)
	assert.DeepEqual(t, result1, expected)

	result2, err := sortkit.CountingSort(result1, maxValue, keyOf)
	assert.NoError(t, err)
	assert.DeepEqual(t, result2, expected)
}

func TestCountingSortRandomStable(t *testing.T) {
	rng := mwc.Rand()
	for c := 0; c < 100; c++ {
		v := randomKeyed(rng, int(rng.Uint64n(500)), 16)
		expected := slices.Clone(v)
		sortkit.Merge(expected).SortBy(func(prev, next keyed) bool { return prev.key <= next.key })

		result, err := sortkit.CountingSort(v, 16, func(k keyed) int { return int(k.key) })
		assert.NoError(t, err)
		assert.DeepEqual(t, result, expected)
	}
}
