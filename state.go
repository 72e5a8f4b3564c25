// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

// State is a computation that reads a state and produces a value together
// with the next state. The function must not touch state outside S.
type State[S, A any] func(s S) (A, S)

// StateOf lifts a value, leaving the state unchanged.
func StateOf[S, A any](a A) State[S, A] {
	return func(s S) (A, S) { return a, s }
}

// GetState returns the current state as the value.
func GetState[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// GetsState projects a value out of the current state.
func GetsState[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) { return f(s), s }
}

// PutState replaces the state.
func PutState[S any](next S) State[S, Unit] {
	return func(S) (Unit, S) { return Unit{}, next }
}

// ModifyState replaces the state with f(state).
func ModifyState[S any](f func(S) S) State[S, Unit] {
	return func(s S) (Unit, S) { return Unit{}, f(s) }
}

// Run evaluates the computation from initial, returning value and final state.
func (m State[S, A]) Run(initial S) (A, S) {
	return m(initial)
}

// Evaluate runs the computation and returns only the value.
func (m State[S, A]) Evaluate(initial S) A {
	a, _ := m(initial)
	return a
}

// Execute runs the computation and returns only the final state.
func (m State[S, A]) Execute(initial S) S {
	_, s := m(initial)
	return s
}

// MapState applies a pure function to the value.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a), s1
	}
}

// BindState threads the state produced by m into the computation chosen by f.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a)(s1)
	}
}

// SequenceState runs ms in order, collecting their values.
func SequenceState[S, A any](ms []State[S, A]) State[S, []A] {
	return func(s S) ([]A, S) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			var a A
			a, s = m(s)
			out = append(out, a)
		}
		return out, s
	}
}
