package vector

// The tail is the rightmost, not yet full leaf of a vector. It is a node of
// fixed size with its `size` live elements right-aligned, i.e. the live range is
// [branchFactor-size, branchFactor). A full tail is a valid leaf as it stands, and
// it is moved into the trie without copying.
//
// Functions in this file take the tail's size as a parameter, as it is not
// stored in the node itself.

// tailLive returns the live elements of tail t. The slice shares memory with t
// and must not be written to.
func tailLive[T any](t *node[T], size int) []T {
	if size == 0 {
		return nil
	}
	return t[branchFactor-size:]
}

func tailAt[T any](t *node[T], size, i int) T {
	return t[branchFactor-size+i]
}

func tailWith[T any](t *node[T], size, i int, x T) *node[T] {
	return t.with(branchFactor-size+i, x)
}

func tailUpdate[T any](t *node[T], size, i int, f func(T) T) *node[T] {
	return t.update(branchFactor-size+i, f)
}

// tailAppend returns a copy of t with x appended. t must not be full.
func tailAppend[T any](t *node[T], size int, x T) *node[T] {
	assertThat(size < branchFactor, "attempt to append to full tail")
	var cow node[T]
	if size > 0 {
		copy(cow[branchFactor-size-1:branchFactor-1], t[branchFactor-size:])
	}
	cow[branchFactor-1] = x
	return &cow
}

// tailPop removes the last element from t. The vacated slot is reset to the
// zero value.
func tailPop[T any](t *node[T], size int) (T, *node[T]) {
	assertThat(size > 0, "attempt to pop from empty tail")
	x := t[branchFactor-1]
	var cow node[T]
	copy(cow[branchFactor-size+1:], t[branchFactor-size:branchFactor-1])
	return x, &cow
}

// tailTake returns a tail holding the first k live elements of t.
func tailTake[T any](t *node[T], size, k int) *node[T] {
	if k == size {
		return t
	}
	return partialRight(tailLive(t, size)[:k])
}

// completeTail fills t up to capacity with items pulled from next. It returns
// the new tail, the number of items consumed and the remainder of the sequence.
// If the sequence has been exhausted, the remainder is nil; in this case the
// new tail may still be partially filled.
func completeTail[T any](t *node[T], size int, next func() (T, bool)) (*node[T], int, func() (T, bool)) {
	live := make([]T, size, branchFactor)
	copy(live, tailLive(t, size))
	for len(live) < branchFactor {
		x, ok := next()
		if !ok {
			return partialRight(live), len(live) - size, nil
		}
		live = append(live, x)
	}
	consumed := branchFactor - size
	filled := t
	if consumed > 0 {
		filled = fullNode(live)
	}
	x, ok := next()
	if !ok {
		return filled, consumed, nil
	}
	return filled, consumed, unread(x, next)
}

// tailFold folds the live elements of t from left to right.
func tailFold[T, A any](t *node[T], size int, acc A, f func(A, T) A) A {
	for _, x := range tailLive(t, size) {
		acc = f(acc, x)
	}
	return acc
}

// tailMap maps the live elements of t, keeping their alignment.
func tailMap[T, U any](t *node[T], size int, f func(T) U) *node[U] {
	var n node[U]
	for i := branchFactor - size; i < branchFactor; i++ {
		n[i] = f(t[i])
	}
	return &n
}

// unread pushes x back in front of a pull-style sequence.
func unread[T any](x T, next func() (T, bool)) func() (T, bool) {
	pending := true
	return func() (T, bool) {
		if pending {
			pending = false
			return x, true
		}
		return next()
	}
}
