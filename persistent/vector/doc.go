/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or deletion) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of the path from the root to the modified leaf only. Thus, most of the
structure/memory is shared between original and copy, transparently to clients.

Vectors are built from a radix trie with 16-way branching, plus a tail buffer of up to
16 items which absorbs appends. Random access and updates are O(log₁₆ n), appends are
amortized O(1). Concatenation regroups the right-hand side into full leaves and splices
them onto the left trie; it does not offer the logarithmic concatenation of relaxed radix
trees.

The zero value of Vector is a valid empty vector:

	var v vector.Vector[int]
	v = v.Append(1).Append(2)
	w := v.Concat([]int{3, 4, 5})  // v is unchanged
	x, _ := w.Fetch(-1)            // x = 5

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fp.vector")
}
