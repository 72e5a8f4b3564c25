// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "slices"

// Rule checks one property of a subject.
type Rule[T any] func(T) Validation[Unit]

// Validator is an immutable, ordered list of rules. Apply runs every rule
// and reports every failure in declaration order.
//
// Adding rules never changes the receiver: the rule slice is clipped before
// appending, so Validators derived from a shared base do not see each
// other's rules.
//
//	v := fnx.NewValidator[Order]().
//		Ensure(func(o Order) bool { return o.Total > 0 }, "Total must be positive.").
//		Ensure(func(o Order) bool { return len(o.Currency) == 3 }, "Currency must have 3 letters.")
//	res := v.Apply(order)
type Validator[T any] struct {
	rules []Rule[T]
}

// NewValidator returns a Validator with no rules.
func NewValidator[T any]() Validator[T] {
	return Validator[T]{}
}

// AddRule returns a Validator with r appended.
func (v Validator[T]) AddRule(r Rule[T]) Validator[T] {
	return Validator[T]{rules: append(slices.Clip(v.rules), r)}
}

// Ensure appends a rule failing with msg when pred does not hold.
func (v Validator[T]) Ensure(pred func(T) bool, msg string) Validator[T] {
	return v.AddRule(func(t T) Validation[Unit] {
		if pred(t) {
			return Valid(Unit{})
		}
		return Validation[Unit]{errs: []string{msg}}
	})
}

// EnsureFunc appends a rule failing with the message of the error check
// returns.
func (v Validator[T]) EnsureFunc(check func(T) error) Validator[T] {
	return v.AddRule(func(t T) Validation[Unit] {
		if err := check(t); err != nil {
			return Validation[Unit]{errs: []string{err.Error()}}
		}
		return Valid(Unit{})
	})
}

// Append returns a Validator running v's rules, then other's.
// Append is associative.
func (v Validator[T]) Append(other Validator[T]) Validator[T] {
	if len(other.rules) == 0 {
		return v
	}
	if len(v.rules) == 0 {
		return other
	}
	return Validator[T]{rules: append(slices.Clip(v.rules), other.rules...)}
}

// Len returns the number of rules.
func (v Validator[T]) Len() int {
	return len(v.rules)
}

// Apply runs every rule against subject.
func (v Validator[T]) Apply(subject T) Validation[T] {
	var errs []string
	for _, r := range v.rules {
		if res := r(subject); len(res.errs) != 0 {
			errs = append(errs, res.errs...)
		}
	}
	if len(errs) != 0 {
		return Validation[T]{errs: errs}
	}
	return Valid(subject)
}

// EnsureAt appends a rule that checks the field focused by lens. The
// failure message is prefixed with the lens path.
func EnsureAt[T, V any](v Validator[T], lens Lens[T, V], pred func(V) bool, msg string) Validator[T] {
	lens.mustInit()
	full := prefixed(lens, msg)
	return v.AddRule(func(t T) Validation[Unit] {
		if pred(lens.get(t)) {
			return Valid(Unit{})
		}
		return Validation[Unit]{errs: []string{full}}
	})
}

// CheckAt is EnsureAt for checks that report their own error.
func CheckAt[T, V any](v Validator[T], lens Lens[T, V], check func(V) error) Validator[T] {
	lens.mustInit()
	return v.AddRule(func(t T) Validation[Unit] {
		if err := check(lens.get(t)); err != nil {
			return Validation[Unit]{errs: []string{prefixed(lens, err.Error())}}
		}
		return Valid(Unit{})
	})
}

// ValidateAt runs inner against the field focused by lens, prefixing each of
// its messages with the lens path.
func ValidateAt[T, V any](v Validator[T], lens Lens[T, V], inner Validator[V]) Validator[T] {
	lens.mustInit()
	return v.AddRule(func(t T) Validation[Unit] {
		res := inner.Apply(lens.get(t))
		if len(res.errs) == 0 {
			return Valid(Unit{})
		}
		errs := make([]string, len(res.errs))
		for i, e := range res.errs {
			errs[i] = prefixed(lens, e)
		}
		return Validation[Unit]{errs: errs}
	})
}

func prefixed[T, V any](lens Lens[T, V], msg string) string {
	return lens.Describe() + ": " + msg
}
