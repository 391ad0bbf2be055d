package vector

// builder constructs tries bottom-up. It works like a mixed-radix counter:
// levels[h] holds fewer than 16 complete subtrees of height h, in order. Whenever a
// level collects 16 subtrees, they are carried into a new parent node at the next
// level up.
type builder[T any] struct {
	levels [][]*vnode[T]
	leaves int
}

// builderFromTrie decomposes a trie holding count elements into a builder, so
// that construction may resume where the trie ends. Subtrees are shared.
func builderFromTrie[T any](root *vnode[T], shift uint, count int) *builder[T] {
	b := &builder[T]{leaves: count / branchFactor}
	b.decompose(root, int(shift/bits), count)
	return b
}

func (b *builder[T]) decompose(n *vnode[T], h int, count int) {
	if count == capacity(uint(h)*bits) {
		b.place(h, n)
		return
	}
	chcap := 1 << (uint(h) * bits) // elements per child
	k := count / chcap
	for i := 0; i < k; i++ {
		b.place(h-1, n.children[i])
	}
	if rest := count % chcap; rest > 0 {
		b.decompose(n.children[k], h-1, rest)
	}
}

func (b *builder[T]) place(h int, n *vnode[T]) {
	for len(b.levels) <= h {
		b.levels = append(b.levels, make([]*vnode[T], 0, branchFactor))
	}
	b.levels[h] = append(b.levels[h], n)
}

func (b *builder[T]) addLeaf(leaf *node[T]) {
	b.leaves++
	b.carry(0, leafNode(leaf))
}

func (b *builder[T]) carry(h int, n *vnode[T]) {
	b.place(h, n)
	if len(b.levels[h]) == branchFactor {
		parent := innerNode(fullNode(b.levels[h]))
		b.levels[h] = b.levels[h][:0]
		b.carry(h+1, parent)
	}
}

// toTrie collapses the pending subtrees into a trie of minimal height. The
// builder must hold at least one leaf.
func (b *builder[T]) toTrie() (*vnode[T], uint) {
	assertThat(b.leaves > 0, "attempt to create trie from empty builder")
	var carry *vnode[T]
	top := len(b.levels) - 1
	for h := 0; h <= top; h++ {
		group := b.levels[h]
		if carry != nil {
			group = append(group[:len(group):len(group)], carry)
		}
		switch {
		case h == top && len(group) == 1:
			return group[0], uint(h) * bits
		case len(group) == 0:
			carry = nil
		default:
			carry = innerNode(partialLeft(group))
		}
	}
	return carry, uint(top+1) * bits
}

// drain regroups items pulled from next into full leaves. chunk holds items
// already waiting for a leaf. The final 1…16 items are not added as a leaf, but
// returned, as they will become the tail of a vector.
func (b *builder[T]) drain(chunk []T, next func() (T, bool)) []T {
	for x, ok := next(); ok; x, ok = next() {
		if len(chunk) == branchFactor {
			b.addLeaf(fullNode(chunk))
			chunk = chunk[:0]
		}
		chunk = append(chunk, x)
	}
	return chunk
}

// vector assembles a vector from the builder's leaves plus a tail.
func (b *builder[T]) vector(tail *node[T], tailSize int) Vector[T] {
	if b.leaves == 0 {
		return small(tail, tailSize)
	}
	assertThat(tailSize > 0, "vector with trie requires non-empty tail")
	root, shift := b.toTrie()
	return Vector[T]{
		size:  b.leaves*branchFactor + tailSize,
		shift: shift,
		root:  root,
		tail:  tail,
		first: lookup(root, shift, 0),
	}
}

// fromPull builds a vector from a pull-style sequence.
func fromPull[T any](next func() (T, bool)) Vector[T] {
	b := &builder[T]{}
	chunk := b.drain(make([]T, 0, branchFactor), next)
	return b.vector(partialRight(chunk), len(chunk))
}

func pullSlice[T any](elems []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		if i >= len(elems) {
			var zero T
			return zero, false
		}
		i++
		return elems[i-1], true
	}
}
