// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "fmt"

// Try is the outcome of a computation that may have raised.
// Unlike Result, the failure keeps the structured error (including a
// recovered *PanicError with its stack) until a boundary calls ToResult.
type Try[T any] struct {
	value T
	exc   error
}

// Success creates a successful Try.
func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure creates a failed Try.
func Failure[T any](err error) Try[T] {
	return Try[T]{exc: nonNil(err)}
}

// TryRun runs f, capturing a returned error or a panic.
func TryRun[T any](f func() (T, error)) (t Try[T]) {
	defer func() {
		if p := recover(); p != nil {
			t = Try[T]{exc: newPanicError(p)}
		}
	}()
	v, err := f()
	if err != nil {
		return Try[T]{exc: err}
	}
	return Success(v)
}

// IsSuccess returns true if the computation completed.
func (t Try[T]) IsSuccess() bool {
	return t.exc == nil
}

// IsFailure returns true if the computation raised.
func (t Try[T]) IsFailure() bool {
	return t.exc != nil
}

// Get returns the value and the captured error.
func (t Try[T]) Get() (T, error) {
	return t.value, t.exc
}

// Exception returns the captured error, or nil.
func (t Try[T]) Exception() error {
	return t.exc
}

// ToResult converts to a message-only Result.
func (t Try[T]) ToResult() Result[T] {
	if t.exc != nil {
		return Fail[T](t.exc.Error())
	}
	return Ok(t.value)
}

// Recover turns a failure into a success using f.
func (t Try[T]) Recover(f func(error) T) Try[T] {
	if t.exc == nil {
		return t
	}
	return Success(f(t.exc))
}

func (t Try[T]) String() string {
	if t.exc == nil {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return "Failure(" + t.exc.Error() + ")"
}

// MapTry applies f to a success value. A panic inside f is not caught.
func MapTry[A, B any](t Try[A], f func(A) B) Try[B] {
	if t.exc != nil {
		return Try[B]{exc: t.exc}
	}
	return Success(f(t.value))
}

// BindTry sequences two Try computations.
func BindTry[A, B any](t Try[A], f func(A) Try[B]) Try[B] {
	if t.exc != nil {
		return Try[B]{exc: t.exc}
	}
	return f(t.value)
}

// MatchTry pattern matches on the Try.
func MatchTry[A, T any](t Try[A], onSuccess func(A) T, onFailure func(error) T) T {
	if t.exc != nil {
		return onFailure(t.exc)
	}
	return onSuccess(t.value)
}
