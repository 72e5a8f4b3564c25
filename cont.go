// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

// Cont is a computation in continuation-passing style.
// Cont[R, A] produces a value of type A and hands it to a continuation
// k func(A) R, the rest of the computation, whose answer R is the final
// result.
type Cont[R, A any] func(k func(A) R) R

// Return passes a immediately to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a Cont from a CPS function that needs direct access to
// its continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind runs m, then passes its value to f to choose the next computation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the value of m.
// Equivalent to Bind(m, func(a A) Cont[R, B] { return Return[R](f(a)) })
// without the intermediate Return closure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then runs m and then n, discarding the value of m.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// identity is the final continuation for Run.
// A named generic function gives a static function value per instantiation.
func identity[A any](a A) A { return a }

// Run executes a continuation whose answer type is its value type.
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes m with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
