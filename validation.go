// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"fmt"
	"slices"
	"strings"
)

// Validation is either a valid value or a non-empty list of error messages.
// Applicative combination keeps the errors of every failing side; the left
// operand's errors always come first.
type Validation[A any] struct {
	value A
	errs  []string
}

// Valid creates a successful Validation.
func Valid[A any](a A) Validation[A] {
	return Validation[A]{value: a}
}

// Invalid creates a failed Validation. With no messages the failure still
// carries "validation failed".
func Invalid[A any](errs ...string) Validation[A] {
	if len(errs) == 0 {
		return Validation[A]{errs: []string{"validation failed"}}
	}
	return Validation[A]{errs: slices.Clone(errs)}
}

// ValidationFromResult converts a Result; a failure becomes one message.
func ValidationFromResult[A any](r Result[A]) Validation[A] {
	if r.err != nil {
		return Validation[A]{errs: []string{r.err.Error()}}
	}
	return Valid(r.value)
}

// IsValid returns true if no rule failed.
func (v Validation[A]) IsValid() bool {
	return len(v.errs) == 0
}

// Value returns the value and true when valid.
func (v Validation[A]) Value() (A, bool) {
	if len(v.errs) == 0 {
		return v.value, true
	}
	var zero A
	return zero, false
}

// Errors returns a copy of the error messages in reporting order.
func (v Validation[A]) Errors() []string {
	return slices.Clone(v.errs)
}

// Err returns a *ValidationError, or nil when valid.
func (v Validation[A]) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{Messages: slices.Clone(v.errs)}
}

// ToResult converts to a Result whose failure is a *ValidationError.
func (v Validation[A]) ToResult() Result[A] {
	if len(v.errs) == 0 {
		return Ok(v.value)
	}
	return Result[A]{err: v.Err()}
}

func (v Validation[A]) String() string {
	if len(v.errs) == 0 {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return "Invalid(" + strings.Join(v.errs, "; ") + ")"
}

// MapValidation applies f to a valid value.
func MapValidation[A, B any](v Validation[A], f func(A) B) Validation[B] {
	if len(v.errs) != 0 {
		return Validation[B]{errs: v.errs}
	}
	return Valid(f(v.value))
}

// BindValidation sequences dependent validations. Unlike the applicative
// combinators it stops at the first failure, because f needs the value.
func BindValidation[A, B any](v Validation[A], f func(A) Validation[B]) Validation[B] {
	if len(v.errs) != 0 {
		return Validation[B]{errs: v.errs}
	}
	return f(v.value)
}

// ApplyValidation applies a validated function to a validated value.
// When both fail, the function's errors precede the value's errors.
func ApplyValidation[A, B any](vf Validation[func(A) B], va Validation[A]) Validation[B] {
	if len(vf.errs) == 0 && len(va.errs) == 0 {
		return Valid(vf.value(va.value))
	}
	return Validation[B]{errs: concatLogs(vf.errs, va.errs)}
}

// CombineValidation combines two independent validations with f.
func CombineValidation[A, B, C any](va Validation[A], vb Validation[B], f func(A, B) C) Validation[C] {
	if len(va.errs) == 0 && len(vb.errs) == 0 {
		return Valid(f(va.value, vb.value))
	}
	return Validation[C]{errs: concatLogs(va.errs, vb.errs)}
}

// CombineValidation3 combines three independent validations with f.
func CombineValidation3[A, B, C, D any](va Validation[A], vb Validation[B], vc Validation[C], f func(A, B, C) D) Validation[D] {
	if len(va.errs) == 0 && len(vb.errs) == 0 && len(vc.errs) == 0 {
		return Valid(f(va.value, vb.value, vc.value))
	}
	return Validation[D]{errs: concatLogs(concatLogs(va.errs, vb.errs), vc.errs)}
}

// SequenceValidation turns a list of validations into a validation of the
// list, collecting every error in order.
func SequenceValidation[A any](vs []Validation[A]) Validation[[]A] {
	values := make([]A, 0, len(vs))
	var errs []string
	for _, v := range vs {
		if len(v.errs) != 0 {
			errs = append(errs, v.errs...)
			continue
		}
		values = append(values, v.value)
	}
	if len(errs) != 0 {
		return Validation[[]A]{errs: errs}
	}
	return Valid(values)
}

// TraverseValidation validates each item with f and sequences the results.
func TraverseValidation[A, B any](items []A, f func(A) Validation[B]) Validation[[]B] {
	vs := make([]Validation[B], len(items))
	for i, it := range items {
		vs[i] = f(it)
	}
	return SequenceValidation(vs)
}
