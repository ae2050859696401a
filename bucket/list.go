// Package bucket implements the ordered singly linked list used as a bin by
// bucket sort. Nodes are kept in non-decreasing key order and an inserted
// node goes after every node with an equal key, so draining a list yields
// its elements stably ordered by key.
package bucket

import (
	"iter"
)

type node[E any] struct {
	key  float64
	elem E
	next *node[E]
}

// List is an ordered singly linked list of (key, element) pairs.
// The zero value is an empty list ready to use.
type List[E any] struct {
	head *node[E]
	size int
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.size
}

// Insert links elem in before the first node whose key is greater than key.
// It walks the list linearly.
func (l *List[E]) Insert(key float64, elem E) {
	link := &l.head
	for *link != nil && (*link).key <= key {
		link = &(*link).next
	}
	*link = &node[E]{key: key, elem: elem, next: *link}
	l.size++
}

// AppendTo drains the list in key order onto dst and returns the extended
// slice. The list is empty afterwards.
func (l *List[E]) AppendTo(dst []E) []E {
	for _, elem := range l.All() {
		dst = append(dst, elem)
	}
	l.Reset()
	return dst
}

// All iterates over the list in key order without removing anything.
func (l *List[E]) All() iter.Seq2[float64, E] {
	return func(yield func(float64, E) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.key, n.elem) {
				return
			}
		}
	}
}

// Reset drops every element. Nodes are unlinked one at a time in a loop, so
// arbitrarily long lists are released without deep call chains.
func (l *List[E]) Reset() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.size = 0
}
