package vector

import (
	"fmt"
	"strings"
)

const (
	bits         = 4 // will produce nodes with degree 2 ^ 4 = 16
	branchFactor = 1 << bits
	mask         = branchFactor - 1
)

// node is a single level of the trie: a fixed-arity array of slots. Leaves store
// elements (node[T]), inner nodes store children (node[*vnode[T]]).
//
// Nodes are never written after they have been handed out; every write
// operates on a copy.
type node[E any] [branchFactor]E

func fullNode[E any](elems []E) *node[E] {
	assertThat(len(elems) == branchFactor, "full node requires %d elements, have %d", branchFactor, len(elems))
	var n node[E]
	copy(n[:], elems)
	return &n
}

// partialLeft creates a node with elems at slots 0…len(elems)-1, padding the
// rest with zero values. Inner nodes are filled left to right.
func partialLeft[E any](elems []E) *node[E] {
	assertThat(len(elems) <= branchFactor, "node overflow: %d elements", len(elems))
	var n node[E]
	copy(n[:], elems)
	return &n
}

// partialRight creates a node with elems right-aligned, i.e. the last element
// will occupy slot 15. Tails are right-aligned.
func partialRight[E any](elems []E) *node[E] {
	assertThat(len(elems) <= branchFactor, "node overflow: %d elements", len(elems))
	var n node[E]
	copy(n[branchFactor-len(elems):], elems)
	return &n
}

// fill creates a node with every slot set to x.
func fill[E any](x E) *node[E] {
	var n node[E]
	for i := range n {
		n[i] = x
	}
	return &n
}

func (n *node[E]) at(i int) E {
	return n[i]
}

// with returns a copy of n with slot i replaced by x.
func (n *node[E]) with(i int, x E) *node[E] {
	cow := *n
	cow[i] = x
	return &cow
}

// update returns a copy of n with slot i replaced by f(n[i]).
func (n *node[E]) update(i int, f func(E) E) *node[E] {
	cow := *n
	cow[i] = f(cow[i])
	return &cow
}

// take returns a copy of n holding the first k slots only.
func (n *node[E]) take(k int) *node[E] {
	var cow node[E]
	copy(cow[:k], n[:k])
	return &cow
}

func (n *node[E]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, l := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", l))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
