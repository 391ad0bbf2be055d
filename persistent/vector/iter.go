package vector

import "iter"

// All returns an iterator over index-value pairs of v, in order.
//
//	for i, x := range v.All() {
//	    …
//	}
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		v.eachLeaf(func(elems []T) bool {
			for _, x := range elems {
				if !yield(i, x) {
					return false
				}
				i++
			}
			return true
		})
	}
}

// Values returns an iterator over the elements of v, in order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.eachLeaf(func(elems []T) bool {
			for _, x := range elems {
				if !yield(x) {
					return false
				}
			}
			return true
		})
	}
}

// Backward returns an iterator over index-value pairs of v, from the last
// element to the first.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := v.size - 1
		v.eachLeafBackward(func(elems []T) bool {
			for j := len(elems) - 1; j >= 0; j-- {
				if !yield(i, elems[j]) {
					return false
				}
				i--
			}
			return true
		})
	}
}

// eachLeaf calls f with the live elements of every leaf, including the tail, as
// long as f returns true. The slices passed to f must not be modified.
func (v Vector[T]) eachLeaf(f func([]T) bool) bool {
	if v.shape() == largeShape {
		if !v.root.walk(v.shift, func(leaf *node[T]) bool { return f(leaf[:]) }) {
			return false
		}
	}
	if v.size == 0 {
		return true
	}
	return f(tailLive(v.tail, v.tailSize()))
}

func (v Vector[T]) eachLeafBackward(f func([]T) bool) bool {
	if v.size == 0 {
		return true
	}
	if !f(tailLive(v.tail, v.tailSize())) {
		return false
	}
	if v.shape() == largeShape {
		return v.root.walkBackward(v.shift, func(leaf *node[T]) bool { return f(leaf[:]) })
	}
	return true
}

// puller returns a pull-style sequence of the elements of v, starting at index
// from. Leaves are located once per 16 elements.
func (v Vector[T]) puller(from int) func() (T, bool) {
	i, to := from, v.tailOffset()
	var leaf *node[T]
	return func() (T, bool) {
		switch {
		case i >= v.size:
			var zero T
			return zero, false
		case i >= to:
			i++
			return tailAt(v.tail, v.size-to, i-1-to), true
		case leaf == nil || i&mask == 0:
			leaf = lookupLeaf(v.root, v.shift, i)
		}
		i++
		return leaf[(i-1)&mask], true
	}
}
