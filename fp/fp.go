/*
Package fp holds small functional helpers shared by the packages of this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Compose returns h = f . g, i.e. h(a) = f(g(a)).
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
