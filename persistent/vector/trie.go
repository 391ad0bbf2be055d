package vector

/*
Remarks:
--------

- The trie is a complete 16-way tree of leaves, with only the rightmost edge allowed to
  be partially filled. Every leaf holds exactly 16 elements.

- We do not store the height h of the trie, but rather shift = bits*h. A trie with
  shift = 0 consists of a single leaf.

- 'cow' stands for copy-on-write. Nodes on the path to a modification are copied,
  all other subtrees are shared between the old and the new incarnation of a trie.

- Functions in this file assume valid indices. Index checks are performed once by
  the vector API.

*/

// vnode represents a node in the trie. Leaves carry elements, inner nodes carry
// children, the latter filled from left to right.
type vnode[T any] struct {
	leafs    *node[T]
	children *node[*vnode[T]]
}

func leafNode[T any](leafs *node[T]) *vnode[T] {
	return &vnode[T]{leafs: leafs}
}

func innerNode[T any](children *node[*vnode[T]]) *vnode[T] {
	return &vnode[T]{children: children}
}

func (n *vnode[T]) isLeaf() bool {
	return n.leafs != nil
}

// capacity is the number of elements a trie of a given shift is able to hold.
func capacity(shift uint) int {
	return 1 << (shift + bits)
}

func lookupLeaf[T any](root *vnode[T], shift uint, i int) *node[T] {
	n := root
	for level := shift; level > 0; level -= bits {
		n = n.children[(i>>level)&mask]
	}
	return n.leafs
}

func lookup[T any](root *vnode[T], shift uint, i int) T {
	return lookupLeaf(root, shift, i)[i&mask]
}

func replace[T any](n *vnode[T], shift uint, i int, x T) *vnode[T] {
	return update(n, shift, i, func(T) T { return x })
}

// update clones the path to element i and sets the element to f(element).
func update[T any](n *vnode[T], shift uint, i int, f func(T) T) *vnode[T] {
	if shift == 0 {
		return leafNode(n.leafs.update(i&mask, f))
	}
	subidx := (i >> shift) & mask
	cow := update(n.children[subidx], shift-bits, i, f)
	return innerNode(n.children.with(subidx, cow))
}

// newPath creates a left-branching path of inner nodes down to leaf.
func newPath[T any](shift uint, leaf *node[T]) *vnode[T] {
	if shift == 0 {
		return leafNode(leaf)
	}
	var children node[*vnode[T]]
	children[0] = newPath(shift-bits, leaf)
	return innerNode(&children)
}

// appendLeaf attaches a full leaf to a trie currently holding count elements.
// If the trie is completely filled, it grows by one level.
func appendLeaf[T any](root *vnode[T], shift uint, count int, leaf *node[T]) (*vnode[T], uint) {
	if count == capacity(shift) {
		tracer().Debugf("trie of height %d is full, growing", shift/bits)
		var children node[*vnode[T]]
		children[0] = root
		children[1] = newPath(shift, leaf)
		return innerNode(&children), shift + bits
	}
	return pushLeaf(root, shift, count, leaf), shift
}

func pushLeaf[T any](n *vnode[T], shift uint, count int, leaf *node[T]) *vnode[T] {
	subidx := (count >> shift) & mask
	var cow *vnode[T]
	if child := n.children[subidx]; child == nil {
		cow = newPath(shift-bits, leaf)
	} else {
		cow = pushLeaf(child, shift-bits, count, leaf)
	}
	return innerNode(n.children.with(subidx, cow))
}

// popLeaf removes the rightmost leaf from a trie holding count elements. It
// returns the new root (nil if the trie vanishes), the new shift and the removed
// leaf. If the root is left with a single child, the trie shrinks by one level.
func popLeaf[T any](root *vnode[T], shift uint, count int) (*vnode[T], uint, *node[T]) {
	last := count - branchFactor
	leaf := lookupLeaf(root, shift, last)
	if shift == 0 {
		return nil, 0, leaf
	}
	newRoot := popPath(root, shift, last)
	assertThat(newRoot != nil, "inconsistency: trie of height %d lost its root", shift/bits)
	if newRoot.children[1] == nil {
		tracer().Debugf("trie of height %d has a single child, shrinking", shift/bits)
		return newRoot.children[0], shift - bits, leaf
	}
	return newRoot, shift, leaf
}

func popPath[T any](n *vnode[T], shift uint, offset int) *vnode[T] {
	subidx := (offset >> shift) & mask
	var cow *vnode[T]
	if shift > bits {
		cow = popPath(n.children[subidx], shift-bits, offset)
	}
	if cow == nil && subidx == 0 {
		return nil
	}
	return innerNode(n.children.with(subidx, cow))
}

// takeTrie truncates a trie to its first count elements, count being a multiple
// of the branch factor. Subtrees contained completely are shared, only the nodes
// on the right edge are copied. The height of the trie is not changed.
func takeTrie[T any](n *vnode[T], shift uint, count int) *vnode[T] {
	if count == capacity(shift) {
		return n
	}
	last := (count - 1) >> shift
	cow := n.children.take(last + 1)
	cow[last] = takeTrie(n.children[last], shift-bits, count-last<<shift)
	return innerNode(cow)
}

// shrink removes root nodes with a single child.
func shrink[T any](root *vnode[T], shift uint) (*vnode[T], uint) {
	for shift > 0 && root.children[1] == nil {
		root = root.children[0]
		shift -= bits
	}
	return root, shift
}

// walk calls f for every leaf from left to right, as long as f returns true.
func (n *vnode[T]) walk(shift uint, f func(*node[T]) bool) bool {
	if shift == 0 {
		return f(n.leafs)
	}
	for _, child := range n.children {
		if child == nil {
			break
		}
		if !child.walk(shift-bits, f) {
			return false
		}
	}
	return true
}

// walkBackward calls f for every leaf from right to left, as long as f returns true.
func (n *vnode[T]) walkBackward(shift uint, f func(*node[T]) bool) bool {
	if shift == 0 {
		return f(n.leafs)
	}
	for i := branchFactor - 1; i >= 0; i-- {
		if child := n.children[i]; child != nil && !child.walkBackward(shift-bits, f) {
			return false
		}
	}
	return true
}

// mapTrie creates a trie of identical shape, with elements mapped by f.
// f is applied to elements in order.
func mapTrie[T, U any](n *vnode[T], shift uint, f func(T) U) *vnode[U] {
	if shift == 0 {
		var leaf node[U]
		for i, x := range n.leafs {
			leaf[i] = f(x)
		}
		return leafNode(&leaf)
	}
	var children node[*vnode[U]]
	for i, child := range n.children {
		if child == nil {
			break
		}
		children[i] = mapTrie(child, shift-bits, f)
	}
	return innerNode(&children)
}

func (n *vnode[T]) String() string {
	if n.isLeaf() {
		return n.leafs.String()
	}
	b := make([]byte, 0, 2*branchFactor+2)
	b = append(b, '[')
	for i, c := range n.children {
		if i > 0 {
			b = append(b, ',')
		}
		if c == nil {
			b = append(b, '_')
		} else {
			b = append(b, "▪︎"...)
		}
	}
	b = append(b, ']')
	return string(b)
}
