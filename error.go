// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// Sentinel errors reported by the kernel.
var (
	// ErrCancelled is the failure a TaskResult reports when its context is
	// done before or while it runs.
	ErrCancelled = errors.New("operation was cancelled")

	// ErrLensNotInitialized is the panic value of a Lens used without both
	// a getter and a setter.
	ErrLensNotInitialized = errors.New("fnx: lens not initialized")

	// ErrNoValue is the failure produced when an absent Option is converted
	// to a Result without an explicit message.
	ErrNoValue = errors.New("fnx: no value")

	// errNilFailure replaces a nil error passed to a failure constructor.
	errNilFailure = errors.New("fnx: failure with nil error")
)

// PanicError carries a value recovered from a panic together with the stack
// of the goroutine that panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// newPanicError captures the current stack. Call only from a deferred recover.
func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// ValidationError is the error form of a failed Validation.
// Messages keep the order in which the rules reported them.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// nonNil guarantees that a failure is never silently a success.
func nonNil(err error) error {
	if err == nil {
		return errNilFailure
	}
	return err
}
