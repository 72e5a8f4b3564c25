// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "sync/atomic"

// Affine wraps a continuation that may be resumed at most once.
// A second Resume panics; TryResume reports false instead.
// Safe for concurrent use.
type Affine[R, A any] struct {
	used   atomic.Uintptr
	resume func(A) R
}

// Once creates an affine continuation from k.
func Once[R, A any](k func(A) R) *Affine[R, A] {
	return &Affine[R, A]{resume: k}
}

// Resume invokes the continuation with v.
// Panics if the continuation has already been used.
func (a *Affine[R, A]) Resume(v A) R {
	if a.used.Add(1) != 1 {
		panic("fnx: affine continuation resumed twice")
	}
	return a.resume(v)
}

// TryResume invokes the continuation if it is still unused.
// Returns (result, true) on success, or (zero, false) if already used.
func (a *Affine[R, A]) TryResume(v A) (R, bool) {
	if a.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return a.resume(v), true
}

// Discard marks the continuation as used without invoking it.
func (a *Affine[R, A]) Discard() {
	a.used.Store(1)
}

// Used reports whether the continuation was resumed or discarded.
func (a *Affine[R, A]) Used() bool {
	return a.used.Load() != 0
}
