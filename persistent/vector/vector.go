package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/pvec/maybe"
	"github.com/npillmayer/pvec/result"
)

// Vector is an immutable persistent vector. Vectors are values: every operation
// returning a Vector leaves the receiver unchanged.
//
// The zero value is an empty vector, ready to use.
//
// Vectors are not comparable with ==, as two vectors holding equal elements may
// be built from different nodes. Use Equal or EqualFunc.
type Vector[T any] struct {
	_     [0]func() // prevent ==
	size  int
	shift uint      // large vectors only: height of the trie × bits
	root  *vnode[T] // large vectors only
	tail  *node[T]  // live elements are right-aligned
	first T         // large vectors only: element at index 0
}

// A vector is either empty, small (tail only) or large (trie + tail). The
// shape is a function of the vector's size.
type shape uint8

const (
	emptyShape shape = iota
	smallShape
	largeShape
)

func (v Vector[T]) shape() shape {
	switch {
	case v.size == 0:
		return emptyShape
	case v.size <= branchFactor:
		return smallShape
	}
	return largeShape
}

func small[T any](tail *node[T], size int) Vector[T] {
	if size == 0 {
		return Vector[T]{}
	}
	return Vector[T]{size: size, tail: tail}
}

// tailOffset is the number of elements stored in the trie.
func (v Vector[T]) tailOffset() int {
	if v.size <= branchFactor {
		return 0
	}
	return (v.size - 1) &^ mask
}

func (v Vector[T]) tailSize() int {
	return v.size - v.tailOffset()
}

// --- Construction ----------------------------------------------------------

// Empty returns an empty vector. It is equivalent to the zero value of Vector.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// New creates a vector holding elems, in order.
//
//	v := vector.New(1, 2, 3)
func New[T any](elems ...T) Vector[T] {
	return FromSlice(elems)
}

// FromSlice creates a vector holding a copy of elems. ToSlice is its inverse.
func FromSlice[T any](elems []T) Vector[T] {
	n := len(elems)
	if n == 0 {
		return Vector[T]{}
	}
	ts := n - (n-1)&^mask
	b := &builder[T]{}
	for i := 0; i < n-ts; i += branchFactor {
		b.addLeaf(fullNode(elems[i : i+branchFactor]))
	}
	return b.vector(partialRight(elems[n-ts:]), ts)
}

// FromSeq creates a vector from the values of an iterator. seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) Vector[T] {
	next, stop := iter.Pull(seq)
	defer stop()
	return fromPull(next)
}

// NewMapped creates a vector holding f(x) for every x of elems.
func NewMapped[S, T any](elems []S, f func(S) T) Vector[T] {
	i := 0
	return fromPull(func() (T, bool) {
		if i >= len(elems) {
			var zero T
			return zero, false
		}
		i++
		return f(elems[i-1]), true
	})
}

// Duplicate creates a vector holding n copies of x. Leaves are shared.
func Duplicate[T any](x T, n int) Vector[T] {
	if n <= 0 {
		return Vector[T]{}
	}
	leaf := fill(x)
	ts := n - (n-1)&^mask
	b := &builder[T]{}
	for i := 0; i < n-ts; i += branchFactor {
		b.addLeaf(leaf)
	}
	return b.vector(tailTake(leaf, branchFactor, ts), ts)
}

// --- Introspection ---------------------------------------------------------

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	return v.size
}

// IsEmpty returns true if v contains no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// First returns the element at index 0, if any. This is an O(1) operation.
func (v Vector[T]) First() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.head())
}

// head returns the element at index 0 of a non-empty vector.
func (v Vector[T]) head() T {
	if v.shape() == smallShape {
		return tailAt(v.tail, v.size, 0)
	}
	return v.first
}

// Last returns the last element of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[branchFactor-1])
}

// MustFirst returns the element at index 0. It panics with an *EmptyError if v is empty.
func (v Vector[T]) MustFirst() T {
	if v.size == 0 {
		panic(&EmptyError{Op: "first"})
	}
	return v.head()
}

// MustLast returns the last element. It panics with an *EmptyError if v is empty.
func (v Vector[T]) MustLast() T {
	if v.size == 0 {
		panic(&EmptyError{Op: "last"})
	}
	return v.tail[branchFactor-1]
}

// --- Access ----------------------------------------------------------------

// index normalizes i, which may be negative to count from the end.
func (v Vector[T]) index(i int) (int, bool) {
	if i < 0 {
		i += v.size
	}
	return i, i >= 0 && i < v.size
}

// at returns the element at a valid, normalized index i.
func (v Vector[T]) at(i int) T {
	if to := v.tailOffset(); i >= to {
		return tailAt(v.tail, v.size-to, i-to)
	}
	return lookup(v.root, v.shift, i)
}

// Fetch returns the element at index i. Negative indices count from the end,
// i.e. -1 denotes the last element. If i is out of range, Fetch returns false.
func (v Vector[T]) Fetch(i int) (T, bool) {
	j, ok := v.index(i)
	if !ok {
		var zero T
		return zero, false
	}
	return v.at(j), true
}

// At returns the element at index i, with negative indices counting from the end.
// It panics with an *IndexError if i is out of range.
func (v Vector[T]) At(i int) T {
	j, ok := v.index(i)
	if !ok {
		panic(newIndexError(i, v.size))
	}
	return v.at(j)
}

// Lookup is like Fetch, but returns an *IndexError result if i is out of range.
func (v Vector[T]) Lookup(i int) result.Result[T] {
	j, ok := v.index(i)
	if !ok {
		return result.Err[T](newIndexError(i, v.size))
	}
	return result.Ok(v.at(j))
}

// --- Update ----------------------------------------------------------------

// ReplaceAt returns a copy of v with the element at index i replaced by x.
// If i is out of range, v is returned unchanged.
func (v Vector[T]) ReplaceAt(i int, x T) Vector[T] {
	j, ok := v.index(i)
	if !ok {
		return v
	}
	return v.replace(j, x)
}

// MustReplaceAt is like ReplaceAt, but panics with an *IndexError if i is out of range.
func (v Vector[T]) MustReplaceAt(i int, x T) Vector[T] {
	j, ok := v.index(i)
	if !ok {
		panic(newIndexError(i, v.size))
	}
	return v.replace(j, x)
}

func (v Vector[T]) replace(i int, x T) Vector[T] {
	w := v
	if to := v.tailOffset(); i >= to {
		w.tail = tailWith(v.tail, v.size-to, i-to, x)
		return w
	}
	w.root = replace(v.root, v.shift, i, x)
	if i == 0 {
		w.first = x
	}
	return w
}

// UpdateAt returns a copy of v with the element x at index i replaced by f(x).
// If i is out of range, v is returned unchanged.
func (v Vector[T]) UpdateAt(i int, f func(T) T) Vector[T] {
	j, ok := v.index(i)
	if !ok {
		return v
	}
	return v.update(j, f)
}

// MustUpdateAt is like UpdateAt, but panics with an *IndexError if i is out of range.
func (v Vector[T]) MustUpdateAt(i int, f func(T) T) Vector[T] {
	j, ok := v.index(i)
	if !ok {
		panic(newIndexError(i, v.size))
	}
	return v.update(j, f)
}

func (v Vector[T]) update(i int, f func(T) T) Vector[T] {
	w := v
	if to := v.tailOffset(); i >= to {
		w.tail = tailUpdate(v.tail, v.size-to, i-to, f)
		return w
	}
	w.root = update(v.root, v.shift, i, f)
	if i == 0 {
		w.first = lookup(w.root, w.shift, 0)
	}
	return w
}

// Update is the result of a GetAndUpdate continuation: either a replacement
// or a removal. The zero value is malformed.
type Update[T any] struct {
	current T
	value   T
	kind    updateKind
}

type updateKind uint8

const (
	malformed updateKind = iota
	replacing
	removing
)

// Replace tells GetAndUpdate to report current and replace the element by value.
func Replace[T any](current, value T) Update[T] {
	return Update[T]{current: current, value: value, kind: replacing}
}

// Remove tells GetAndUpdate to report current and remove the element.
func Remove[T any](current T) Update[T] {
	return Update[T]{current: current, kind: removing}
}

// GetAndUpdate calls f with the element at index i and either replaces or removes
// the element, depending on the Update returned by f. It returns the value reported
// by f together with the new vector.
//
// GetAndUpdate panics with an *IndexError if i is out of range, and with a
// *MalformedUpdateError if f returns neither a Replace nor a Remove.
func (v Vector[T]) GetAndUpdate(i int, f func(T) Update[T]) (T, Vector[T]) {
	j, ok := v.index(i)
	if !ok {
		panic(newIndexError(i, v.size))
	}
	u := f(v.at(j))
	switch u.kind {
	case replacing:
		return u.current, v.replace(j, u.value)
	case removing:
		return u.current, v.DeleteAt(j)
	}
	panic(&MalformedUpdateError{Index: i})
}

// --- Append & Pop ----------------------------------------------------------

// Append returns a copy of v with x appended. This is an amortized O(1) operation.
func (v Vector[T]) Append(x T) Vector[T] {
	if v.size == 0 {
		return Vector[T]{size: 1, tail: partialRight([]T{x})}
	}
	ts := v.tailSize()
	if ts < branchFactor {
		w := v
		w.size++
		w.tail = tailAppend(v.tail, ts, x)
		return w
	}
	// tail is full ⇒ have to move tail into trie
	w := Vector[T]{size: v.size + 1, tail: partialRight([]T{x})}
	if v.shape() == smallShape {
		w.root, w.shift, w.first = leafNode(v.tail), 0, v.tail[0]
		return w
	}
	w.root, w.shift = appendLeaf(v.root, v.shift, v.tailOffset(), v.tail)
	w.first = v.first
	return w
}

// PopLast removes the last element. It returns the element, the shrunk vector and
// true, or false if v is empty.
func (v Vector[T]) PopLast() (T, Vector[T], bool) {
	switch v.shape() {
	case emptyShape:
		var zero T
		return zero, v, false
	case smallShape:
		x, t := tailPop(v.tail, v.size)
		return x, small(t, v.size-1), true
	}
	to := v.tailOffset()
	if ts := v.size - to; ts > 1 {
		x, t := tailPop(v.tail, ts)
		w := v
		w.size--
		w.tail = t
		return x, w, true
	}
	// tail will be empty ⇒ pull rightmost leaf from trie to become the new tail
	x := v.tail[branchFactor-1]
	root, shift, leaf := popLeaf(v.root, v.shift, to)
	if root == nil {
		return x, small(leaf, branchFactor), true
	}
	return x, Vector[T]{size: v.size - 1, shift: shift, root: root, tail: leaf, first: v.first}, true
}

// MustPopLast is like PopLast, but panics with an *EmptyError if v is empty.
func (v Vector[T]) MustPopLast() (T, Vector[T]) {
	x, w, ok := v.PopLast()
	if !ok {
		panic(&EmptyError{Op: "pop_last"})
	}
	return x, w
}

// DeleteLast returns v without its last element. An empty vector is returned unchanged.
func (v Vector[T]) DeleteLast() Vector[T] {
	_, w, _ := v.PopLast()
	return w
}

// MustDeleteLast is like DeleteLast, but panics with an *EmptyError if v is empty.
func (v Vector[T]) MustDeleteLast() Vector[T] {
	_, w := v.MustPopLast()
	return w
}

// --- Concatenation ---------------------------------------------------------

// Concat returns a vector holding the elements of v followed by elems.
func (v Vector[T]) Concat(elems []T) Vector[T] {
	return v.concatPull(pullSlice(elems))
}

// ConcatSeq returns a vector holding the elements of v followed by the values of
// seq. seq must be finite.
func (v Vector[T]) ConcatSeq(seq iter.Seq[T]) Vector[T] {
	next, stop := iter.Pull(seq)
	defer stop()
	return v.concatPull(next)
}

// ConcatVector returns a vector holding the elements of v followed by the elements
// of w. If v's tail is completely filled, the leaves of w are shared, otherwise they
// are regrouped. In both cases the cost is proportional to w.Len()/16, not log n.
func (v Vector[T]) ConcatVector(w Vector[T]) Vector[T] {
	switch {
	case w.size == 0:
		return v
	case v.size == 0:
		return w
	}
	if v.tailSize() == branchFactor && w.shape() == largeShape {
		tracer().Debugf("concat: leaves aligned, sharing %d leaves", w.tailOffset()/branchFactor)
		b := v.trieBuilder()
		b.addLeaf(v.tail)
		w.root.walk(w.shift, func(leaf *node[T]) bool {
			b.addLeaf(leaf)
			return true
		})
		return b.vector(w.tail, w.tailSize())
	}
	return v.concatPull(w.puller(0))
}

// concatPull first completes the tail of v from next. If next is exhausted by that,
// we are done. Otherwise the completed tail becomes a leaf and the remaining items
// are regrouped into leaves and appended to the trie.
func (v Vector[T]) concatPull(next func() (T, bool)) Vector[T] {
	if v.size == 0 {
		return fromPull(next)
	}
	tail, n, rest := completeTail(v.tail, v.tailSize(), next)
	if rest == nil {
		if n == 0 {
			return v
		}
		w := v
		w.size += n
		w.tail = tail
		return w
	}
	tracer().Debugf("concat: tail completed with %d items, continuing with trie", n)
	b := v.trieBuilder()
	b.addLeaf(tail)
	chunk := b.drain(make([]T, 0, branchFactor), rest)
	return b.vector(partialRight(chunk), len(chunk))
}

func (v Vector[T]) trieBuilder() *builder[T] {
	if v.shape() != largeShape {
		return &builder[T]{}
	}
	return builderFromTrie(v.root, v.shift, v.tailOffset())
}

// --- Conversion ------------------------------------------------------------

// ToSlice returns the elements of v as a newly allocated slice.
func (v Vector[T]) ToSlice() []T {
	s := make([]T, 0, v.size)
	if v.shape() == largeShape {
		v.root.walk(v.shift, func(leaf *node[T]) bool {
			s = append(s, leaf[:]...)
			return true
		})
	}
	return append(s, tailLive(v.tail, v.tailSize())...)
}

// String returns a representation of v in the form `vec([1, 2, 3])`.
func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteString("vec([")
	for i, x := range v.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString("])")
	return b.String()
}
