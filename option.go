// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"errors"
	"fmt"
)

// Option represents presence (Some) or absence (None) of a value.
// The zero value is None. An absent Option always holds the zero T, so ==
// is structural for comparable T.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk creates an Option from the comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value, or the result of f when absent.
// f is only called for None.
func (o Option[T]) OrElseGet(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// Or returns o when present, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt
}

// Filter keeps the value only if pred holds.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies f to the value of a present Option.
// f is never called for None.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// BindOption sequences two Option computations.
func BindOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// ApplyOption applies a wrapped function to a wrapped value.
// The result is present only when both are.
func ApplyOption[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if of.ok && oa.ok {
		return Some(of.value(oa.value))
	}
	return None[B]()
}

// ZipWithOption combines two Options with f.
func ZipWithOption[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if oa.ok && ob.ok {
		return Some(f(oa.value, ob.value))
	}
	return None[C]()
}

// OptionToResult converts None to a failure carrying msg.
// An empty msg yields ErrNoValue.
func OptionToResult[T any](o Option[T], msg string) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	if msg == "" {
		return FailErr[T](ErrNoValue)
	}
	return FailErr[T](errors.New(msg))
}
