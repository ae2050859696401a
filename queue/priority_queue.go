// Package queue provides a generic max-priority queue backed by a binary heap
package queue

import (
	"fmt"

	"github.com/lanrat/sortkit"
	"github.com/lanrat/sortkit/biheap"
)

// PriorityQueue is a max-priority queue: the item no other item is less than
// is always at the front. The zero value is not usable; use NewPriorityQueue.
type PriorityQueue[E any] struct {
	items    []E
	lessFunc func(E, E) bool
}

// NewPriorityQueue creates a new empty PriorityQueue ordered by lessFunc
func NewPriorityQueue[E any](lessFunc func(E, E) bool) *PriorityQueue[E] {
	return &PriorityQueue[E]{
		items:    make([]E, 0),
		lessFunc: lessFunc,
	}
}

// NewPriorityQueueFrom creates a PriorityQueue that takes ownership of items
// and heapifies them in O(n)
func NewPriorityQueueFrom[E any](items []E, lessFunc func(E, E) bool) *PriorityQueue[E] {
	biheap.BuildMax(items, lessFunc)
	return &PriorityQueue[E]{
		items:    items,
		lessFunc: lessFunc,
	}
}

// Len returns the number of items in the queue
func (pq *PriorityQueue[E]) Len() int {
	return len(pq.items)
}

// Maximum returns the front item without removing it
func (pq *PriorityQueue[E]) Maximum() (E, error) {
	if len(pq.items) == 0 {
		var zero E
		return zero, sortkit.NewUnderflowError("Maximum")
	}
	return pq.items[0], nil
}

// ExtractMax removes and returns the front item
func (pq *PriorityQueue[E]) ExtractMax() (E, error) {
	n := len(pq.items)
	if n == 0 {
		var zero E
		return zero, sortkit.NewUnderflowError("ExtractMax")
	}
	last := n - 1
	pq.items[0], pq.items[last] = pq.items[last], pq.items[0]
	max := pq.items[last]
	var zero E
	pq.items[last] = zero // drop the reference held by the backing array
	pq.items = pq.items[:last]
	biheap.MaxHeapify(pq.items, pq.lessFunc, 0, last)
	return max, nil
}

// IncreaseKey replaces the item at heap index i with key and moves it towards
// the front as far as needed. key must not be less than the current item; a
// key equal to it is accepted whether lessFunc is strict or not.
func (pq *PriorityQueue[E]) IncreaseKey(i int, key E) error {
	if i < 0 || i >= len(pq.items) {
		return sortkit.NewIndexError(i, len(pq.items))
	}
	if cur := pq.items[i]; pq.lessFunc(key, cur) && !pq.lessFunc(cur, key) {
		return sortkit.NewKeyOrderError(i, pq.items[i], key)
	}
	pq.items[i] = key
	biheap.SiftUp(pq.items, pq.lessFunc, i)
	return nil
}

// Insert adds key to the queue
func (pq *PriorityQueue[E]) Insert(key E) {
	pq.items = append(pq.items, key)
	biheap.SiftUp(pq.items, pq.lessFunc, len(pq.items)-1)
}

// Index returns the heap index of the first item match reports true for,
// or -1. It is meant for locating an item before IncreaseKey.
func (pq *PriorityQueue[E]) Index(match func(E) bool) int {
	for i := range pq.items {
		if match(pq.items[i]) {
			return i
		}
	}
	return -1
}

// String prints the backing heap in array order
func (pq *PriorityQueue[E]) String() string {
	return fmt.Sprint(pq.items)
}
