package vector

import "slices"

/*
Truncating a vector at its end is structural: subtrees contained in the result are
shared, only nodes on the new right edge are copied. Removing elements at the front
or in the middle misaligns every subsequent element with respect to the leaves, so
these operations rebuild the affected suffix in O(n).
*/

// Take returns the first n elements of v. If n is negative, the last |n| elements
// are returned.
func (v Vector[T]) Take(n int) Vector[T] {
	if n < 0 {
		if -n >= v.size {
			return v
		}
		return v.drop(v.size + n)
	}
	return v.take(n)
}

// Drop returns v without its first n elements. If n is negative, the last |n|
// elements are dropped.
func (v Vector[T]) Drop(n int) Vector[T] {
	if n < 0 {
		if -n >= v.size {
			return Vector[T]{}
		}
		return v.take(v.size + n)
	}
	return v.drop(n)
}

// Slice returns the elements from index first up to and including index last.
// Negative indices count from the end, so
//
//	vector.FromSlice(xs).Slice(-3, -1)
//
// returns the last three elements. Indices are clamped to the bounds of v.
func (v Vector[T]) Slice(first, last int) Vector[T] {
	if first < 0 {
		first += v.size
	}
	if last < 0 {
		last += v.size
	}
	first, last = max(first, 0), min(last, v.size-1)
	if first > last {
		return Vector[T]{}
	}
	return v.take(last + 1).drop(first)
}

// SliceN returns up to amount elements, starting at index start. A negative start
// counts from the end; if start is out of range, the result is empty.
func (v Vector[T]) SliceN(start, amount int) Vector[T] {
	start, ok := v.index(start)
	if !ok || amount <= 0 {
		return Vector[T]{}
	}
	end := v.size
	if amount < v.size-start { // no overflow for huge amounts
		end = start + amount
	}
	return v.take(end).drop(start)
}

func (v Vector[T]) take(n int) Vector[T] {
	switch {
	case n >= v.size:
		return v
	case n <= 0:
		return Vector[T]{}
	case v.shape() == smallShape:
		return small(tailTake(v.tail, v.size, n), n)
	}
	to := v.tailOffset()
	if n > to { // truncation within the tail
		w := v
		w.size = n
		w.tail = tailTake(v.tail, v.size-to, n-to)
		return w
	}
	count := (n - 1) &^ mask // elements remaining in the trie
	leaf := lookupLeaf(v.root, v.shift, n-1)
	ts := n - count
	tail := tailTake(leaf, branchFactor, ts)
	if count == 0 {
		return small(tail, ts)
	}
	root, shift := shrink(takeTrie(v.root, v.shift, count), v.shift)
	return Vector[T]{size: n, shift: shift, root: root, tail: tail, first: v.first}
}

func (v Vector[T]) drop(n int) Vector[T] {
	switch {
	case n <= 0:
		return v
	case n >= v.size:
		return Vector[T]{}
	}
	tracer().Debugf("drop: rebuilding %d elements", v.size-n)
	return fromPull(v.puller(n))
}

// Reverse returns a vector with the elements of v in reverse order.
func (v Vector[T]) Reverse() Vector[T] {
	s := v.ToSlice()
	slices.Reverse(s)
	return FromSlice(s)
}

// Prepend returns a copy of v with x inserted at index 0. This rebuilds the vector
// and is therefore O(n).
func (v Vector[T]) Prepend(x T) Vector[T] {
	return v.InsertAt(0, x)
}

// InsertAt returns a copy of v with x inserted at index i. A negative i counts from
// the end, with -1 denoting the position after the last element. Indices beyond the
// end append x. Elements after i are rebuilt, making this O(n).
func (v Vector[T]) InsertAt(i int, x T) Vector[T] {
	if i < 0 {
		i = max(i+v.size+1, 0)
	}
	if i >= v.size {
		return v.Append(x)
	}
	tracer().Debugf("insert at %d: rebuilding %d elements", i, v.size-i)
	return v.take(i).concatPull(unread(x, v.puller(i)))
}

// DeleteAt returns a copy of v without the element at index i. Negative indices
// count from the end. If i is out of range, v is returned unchanged. Elements after
// i are rebuilt, making this O(n).
func (v Vector[T]) DeleteAt(i int) Vector[T] {
	_, w, _ := v.PopAt(i)
	return w
}

// PopAt is like DeleteAt, but additionally returns the removed element. If i is out
// of range, PopAt returns false.
func (v Vector[T]) PopAt(i int) (T, Vector[T], bool) {
	j, ok := v.index(i)
	if !ok {
		var zero T
		return zero, v, false
	}
	if j == v.size-1 {
		return v.PopLast()
	}
	tracer().Debugf("delete at %d: rebuilding %d elements", j, v.size-j-1)
	return v.at(j), v.take(j).concatPull(v.puller(j + 1)), true
}
