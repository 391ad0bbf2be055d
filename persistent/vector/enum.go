package vector

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/pvec/fp"
	"github.com/npillmayer/pvec/maybe"
	"golang.org/x/exp/constraints"
)

// Number is the constraint for Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// --- Mapping ---------------------------------------------------------------

// Map returns a vector holding f(x) for every element x of v. The trie of the
// result has the same shape as the trie of v. f is called for elements in order.
func Map[T, U any](v Vector[T], f func(T) U) Vector[U] {
	switch v.shape() {
	case emptyShape:
		return Vector[U]{}
	case smallShape:
		return Vector[U]{size: v.size, tail: tailMap(v.tail, v.size, f)}
	}
	root := mapTrie(v.root, v.shift, f) // trie before tail, to keep order of calls
	return Vector[U]{
		size:  v.size,
		shift: v.shift,
		root:  root,
		tail:  tailMap(v.tail, v.tailSize(), f),
		first: lookup(root, v.shift, 0),
	}
}

// Map is like the package-level Map, restricted to functions which do not
// change the element type.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	return Map(v, f)
}

// MapReduce maps every element of v while threading an accumulator from left
// to right. It returns the mapped vector and the final accumulator.
func MapReduce[T, U, A any](v Vector[T], acc A, f func(A, T) (U, A)) (Vector[U], A) {
	w := Map(v, func(x T) U {
		var u U
		u, acc = f(acc, x)
		return u
	})
	return w, acc
}

// WithIndex pairs every element with its index, counting from offset.
func WithIndex[T any](v Vector[T], offset int) Vector[fp.Pair[T, int]] {
	i := offset - 1
	return Map(v, func(x T) fp.Pair[T, int] {
		i++
		return fp.P(x, i)
	})
}

// ScanFrom returns the successive accumulators of folding v from the left,
// starting with acc. The result has the same length as v.
func ScanFrom[T, A any](v Vector[T], acc A, f func(A, T) A) Vector[A] {
	return Map(v, func(x T) A {
		acc = f(acc, x)
		return acc
	})
}

// Scan is like ScanFrom, using the first element as the initial accumulator.
func (v Vector[T]) Scan(f func(T, T) T) Vector[T] {
	var acc T
	started := false
	return Map(v, func(x T) T {
		if started {
			acc = f(acc, x)
		} else {
			acc, started = x, true
		}
		return acc
	})
}

// --- Filtering -------------------------------------------------------------

// Filter returns a vector holding the elements of v for which pred is true.
func (v Vector[T]) Filter(pred func(T) bool) Vector[T] {
	next := v.puller(0)
	return fromPull(func() (T, bool) {
		for x, ok := next(); ok; x, ok = next() {
			if pred(x) {
				return x, true
			}
		}
		var zero T
		return zero, false
	})
}

// Reject returns a vector holding the elements of v for which pred is false.
func (v Vector[T]) Reject(pred func(T) bool) Vector[T] {
	return v.Filter(fp.Compose(pred, not))
}

func not(b bool) bool { return !b }

// Intersperse returns a vector with sep inserted between adjacent elements of v.
func (v Vector[T]) Intersperse(sep T) Vector[T] {
	if v.size < 2 {
		return v
	}
	next := v.puller(0)
	var held T
	pending, started := false, false
	return fromPull(func() (T, bool) {
		if pending {
			pending = false
			return held, true
		}
		x, ok := next()
		switch {
		case !ok:
			return x, false
		case !started:
			started = true
			return x, true
		}
		held, pending = x, true
		return sep, true
	})
}

// Dedup removes consecutive duplicate elements.
func Dedup[T comparable](v Vector[T]) Vector[T] {
	next := v.puller(0)
	var prev T
	started := false
	return fromPull(func() (T, bool) {
		for x, ok := next(); ok; x, ok = next() {
			if !started || x != prev {
				prev, started = x, true
				return x, true
			}
		}
		var zero T
		return zero, false
	})
}

// Uniq removes all duplicate elements, keeping the first occurrence of each.
func Uniq[T comparable](v Vector[T]) Vector[T] {
	seen := make(map[T]struct{}, v.size)
	return v.Filter(func(x T) bool {
		if _, ok := seen[x]; ok {
			return false
		}
		seen[x] = struct{}{}
		return true
	})
}

// --- Folding ---------------------------------------------------------------

// FoldL folds the elements of v from left to right.
func FoldL[T, A any](v Vector[T], acc A, f func(A, T) A) A {
	if v.shape() == largeShape {
		v.root.walk(v.shift, func(leaf *node[T]) bool {
			for _, x := range leaf {
				acc = f(acc, x)
			}
			return true
		})
	}
	return tailFold(v.tail, v.tailSize(), acc, f)
}

// FoldR folds the elements of v from right to left.
func FoldR[T, A any](v Vector[T], acc A, f func(T, A) A) A {
	v.eachLeafBackward(func(elems []T) bool {
		for i := len(elems) - 1; i >= 0; i-- {
			acc = f(elems[i], acc)
		}
		return true
	})
	return acc
}

// Reduce folds v from the left, using the first element as the initial
// accumulator. It returns false for an empty vector.
func (v Vector[T]) Reduce(f func(T, T) T) (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	acc, next := v.head(), v.puller(1)
	for x, ok := next(); ok; x, ok = next() {
		acc = f(acc, x)
	}
	return acc, true
}

// Each calls f for every element of v, in order.
func (v Vector[T]) Each(f func(T)) {
	v.eachLeaf(func(elems []T) bool {
		for _, x := range elems {
			f(x)
		}
		return true
	})
}

// Sum returns the sum of the elements of v, 0 for an empty vector.
func Sum[T Number](v Vector[T]) T {
	return FoldL(v, T(0), func(acc, x T) T { return acc + x })
}

// Product returns the product of the elements of v, 1 for an empty vector.
func Product[T Number](v Vector[T]) T {
	return FoldL(v, T(1), func(acc, x T) T { return acc * x })
}

// Max returns the maximum element of v. It panics with an *EmptyError if v is empty.
func Max[T constraints.Ordered](v Vector[T]) T {
	m, ok := v.Reduce(func(a, b T) T { return max(a, b) })
	if !ok {
		panic(&EmptyError{Op: "max"})
	}
	return m
}

// Min returns the minimum element of v. It panics with an *EmptyError if v is empty.
func Min[T constraints.Ordered](v Vector[T]) T {
	m, ok := v.Reduce(func(a, b T) T { return min(a, b) })
	if !ok {
		panic(&EmptyError{Op: "min"})
	}
	return m
}

// Join formats the elements of v with %v and joins them with sep.
func (v Vector[T]) Join(sep string) string {
	b := strings.Builder{}
	for i, x := range v.All() {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	return b.String()
}

// --- Searching -------------------------------------------------------------

// FindIndex returns the index of the first element satisfying pred.
func (v Vector[T]) FindIndex(pred func(T) bool) (int, bool) {
	for i, x := range v.All() {
		if pred(x) {
			return i, true
		}
	}
	return -1, false
}

// Find returns the first element satisfying pred, if any.
func (v Vector[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	i, ok := v.FindIndex(pred)
	if !ok {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.at(i))
}

// Any returns true if at least one element satisfies pred.
func (v Vector[T]) Any(pred func(T) bool) bool {
	_, ok := v.FindIndex(pred)
	return ok
}

// Every returns true if all elements satisfy pred. It is true for an empty vector.
func (v Vector[T]) Every(pred func(T) bool) bool {
	_, ok := v.FindIndex(func(x T) bool { return !pred(x) })
	return !ok
}

// Count returns the number of elements satisfying pred.
func (v Vector[T]) Count(pred func(T) bool) int {
	return FoldL(v, 0, func(n int, x T) int {
		if pred(x) {
			return n + 1
		}
		return n
	})
}

// Member returns true if x is an element of v.
func Member[T comparable](v Vector[T], x T) bool {
	return v.Any(func(y T) bool { return x == y })
}

// --- Zipping ---------------------------------------------------------------

// ZipWith combines corresponding elements of a and b with f. The result is as
// long as the shorter of the two vectors.
func ZipWith[A, B, C any](a Vector[A], b Vector[B], f func(A, B) C) Vector[C] {
	nexta, nextb := a.puller(0), b.puller(0)
	return fromPull(func() (C, bool) {
		x, oka := nexta()
		y, okb := nextb()
		if !oka || !okb {
			var zero C
			return zero, false
		}
		return f(x, y), true
	})
}

// Zip pairs corresponding elements of a and b. The result is as long as the
// shorter of the two vectors.
func Zip[A, B any](a Vector[A], b Vector[B]) Vector[fp.Pair[A, B]] {
	return ZipWith(a, b, fp.P[A, B])
}

// Unzip is the inverse of Zip.
func Unzip[A, B any](v Vector[fp.Pair[A, B]]) (Vector[A], Vector[B]) {
	left := Map(v, func(p fp.Pair[A, B]) A { return p.Left })
	right := Map(v, func(p fp.Pair[A, B]) B { return p.Right })
	return left, right
}

// --- Ordering & equality ---------------------------------------------------

// SortFunc returns a vector with the elements of v sorted by cmp. The sort is stable.
func (v Vector[T]) SortFunc(cmp func(a, b T) int) Vector[T] {
	s := v.ToSlice()
	slices.SortStableFunc(s, cmp)
	return FromSlice(s)
}

// Sort returns a vector with the elements of v in ascending order.
func Sort[T constraints.Ordered](v Vector[T]) Vector[T] {
	s := v.ToSlice()
	slices.Sort(s)
	return FromSlice(s)
}

// EqualFunc returns true if v and w hold the same sequence of elements, compared
// by eq. Equality does not depend on the internal structure of the vectors.
func (v Vector[T]) EqualFunc(w Vector[T], eq func(T, T) bool) bool {
	if v.size != w.size {
		return false
	}
	next := w.puller(0)
	return v.Every(func(x T) bool {
		y, _ := next()
		return eq(x, y)
	})
}

// Equal returns true if a and b hold the same sequence of elements.
func Equal[T comparable](a, b Vector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
