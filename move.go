package sortkit

// The helpers below are the only way the sorters relocate elements between
// slots. A slot that has been taken from holds the zero value and is treated
// as empty until something is placed into it again, so at any point every
// element is owned by exactly one slot or one local variable.

// take moves s[i] out of the slice and leaves the slot empty.
func take[E any](s []E, i int) E {
	e := s[i]
	var zero E
	s[i] = zero
	return e
}

// place moves e into the empty slot s[i].
func place[E any](s []E, i int, e E) {
	s[i] = e
}

// shiftRight relocates the block s[lo:hi] to s[lo+1:hi+1] with a single
// block move. s[hi] must be empty; s[lo] is empty afterwards.
func shiftRight[E any](s []E, lo, hi int) {
	if hi <= lo {
		return
	}
	copy(s[lo+1:hi+1], s[lo:hi])
	clear(s[lo : lo+1])
}

// drain moves every element of src into dst, in order, and empties src.
// It returns the number of elements moved.
func drain[E any](dst, src []E) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}

// swap exchanges two slots.
func swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
