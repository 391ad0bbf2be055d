package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the internal structure of v for debugging purposes: the trie with
// the index range covered by every node, followed by the tail.
func (v Vector[T]) Dump() string {
	header := fmt.Sprintf("\nVector(size=%d, shift=%d, tail-offset=%d)\n", v.size, v.shift, v.tailOffset())
	tail := fmt.Sprintf("       tail=%v\n", tailLive(v.tail, v.tailSize()))
	if v.shape() != largeShape {
		return header + tail
	}
	printer := tp.New()
	dumpNode(printer, v.root, v.shift, 0)
	return header + tail + printer.String()
}

func dumpNode[T any](printer tp.Tree, n *vnode[T], shift uint, offset int) {
	if n == nil {
		return
	}
	span := capacity(shift)
	label := fmt.Sprintf("%s  %d…%d", n, offset, offset+span-1)
	if n.isLeaf() {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for i, child := range n.children {
		dumpNode(branch, child, shift-bits, offset+i*capacity(shift-bits))
	}
}
