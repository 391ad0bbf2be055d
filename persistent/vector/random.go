package vector

import "math/rand/v2"

// Operations in this file take an optional source of randomness. If r is nil, the
// global source of math/rand/v2 is used.

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// Shuffle returns a vector with the elements of v in random order.
func (v Vector[T]) Shuffle(r *rand.Rand) Vector[T] {
	return FromSlice(shuffled(v.ToSlice(), v.size, r))
}

// Random returns a random element of v. It panics with an *EmptyError if v is empty.
func (v Vector[T]) Random(r *rand.Rand) T {
	if v.size == 0 {
		panic(&EmptyError{Op: "random"})
	}
	return v.at(intN(r, v.size))
}

// TakeRandom returns n distinct elements (with respect to their position) of v, in
// random order. If n ≥ v.Len(), all elements are returned, shuffled.
func (v Vector[T]) TakeRandom(n int, r *rand.Rand) Vector[T] {
	if n <= 0 {
		return Vector[T]{}
	}
	n = min(n, v.size)
	return FromSlice(shuffled(v.ToSlice(), n, r)[:n])
}

// shuffled performs the first n steps of a Fisher-Yates shuffle, in place.
func shuffled[T any](s []T, n int, r *rand.Rand) []T {
	for i := 0; i < n && i < len(s)-1; i++ {
		j := i + intN(r, len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
	return s
}
