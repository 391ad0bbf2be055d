package fp

import "fmt"

// Pair is a 2-tuple. Vectors use pairs for zipping and for indexing elements.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair ⟨x, y⟩.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns ⟨p.Right, p.Left⟩.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("{%v, %v}", p.Left, p.Right)
}
