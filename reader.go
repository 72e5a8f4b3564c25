// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

// Reader is a computation that reads a shared environment of type E.
// The environment is supplied once, at Run.
type Reader[E, A any] func(env E) A

// Ask returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return func(env E) E { return env }
}

// Asks projects a value out of the environment.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return Reader[E, A](f)
}

// ReaderOf lifts a pure value, ignoring the environment.
func ReaderOf[E, A any](a A) Reader[E, A] {
	return func(E) A { return a }
}

// Run supplies the environment and evaluates the computation.
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// Local returns a Reader that runs r against f(env).
// r itself keeps seeing the untransformed environment.
func (r Reader[E, A]) Local(f func(E) E) Reader[E, A] {
	return func(env E) A { return r(f(env)) }
}

// WithEnv adapts r to a different outer environment type.
func WithEnv[E1, E2, A any](r Reader[E2, A], f func(E1) E2) Reader[E1, A] {
	return func(env E1) A { return r(f(env)) }
}

// MapReader applies a pure function to the result of r.
func MapReader[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B { return f(r(env)) }
}

// BindReader sequences two Readers over the same environment.
func BindReader[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B { return f(r(env))(env) }
}
