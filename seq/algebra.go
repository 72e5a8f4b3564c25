// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Set algebra over pipelines. Each combinator reads the source once into a
// buffer, applies both operands to that buffer and combines the two result
// lists with set semantics: results are distinct and keep the order in which
// they were first produced, left operand first.

// combine builds a Pipe from a function of both operands' results.
func combine[A any, B comparable](p, q Pipe[A, B], f func(left, right []B) []B) Pipe[A, B] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			buf := slices.Collect(src)
			for _, b := range f(p.ApplySlice(buf), q.ApplySlice(buf)) {
				if !yield(b) {
					return
				}
			}
		}
	})
}

func setOf[B comparable](xs []B) map[B]struct{} {
	m := make(map[B]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

// Union yields results of p, then results of q not already produced.
// The order is concatenation order, not the position of the source element:
// evens + multiples of 3 over 1..10 yields [2 4 6 8 10 3 9].
func Union[A any, B comparable](p, q Pipe[A, B]) Pipe[A, B] {
	return combine(p, q, func(left, right []B) []B {
		return lo.Uniq(append(left, right...))
	})
}

// Intersect yields distinct results of p that q also produces.
func Intersect[A any, B comparable](p, q Pipe[A, B]) Pipe[A, B] {
	return combine(p, q, func(left, right []B) []B {
		in := setOf(right)
		return lo.Uniq(lo.Filter(left, func(b B, _ int) bool {
			_, ok := in[b]
			return ok
		}))
	})
}

// Except yields distinct results of p that q does not produce.
func Except[A any, B comparable](p, q Pipe[A, B]) Pipe[A, B] {
	return combine(p, q, except[B])
}

// SymmetricDifference yields results produced by exactly one of p and q:
// those of p first, then those of q.
func SymmetricDifference[A any, B comparable](p, q Pipe[A, B]) Pipe[A, B] {
	return combine(p, q, func(left, right []B) []B {
		return append(except(left, right), except(right, left)...)
	})
}

func except[B comparable](left, right []B) []B {
	out := setOf(right)
	return lo.Uniq(lo.Filter(left, func(b B, _ int) bool {
		_, ok := out[b]
		return !ok
	}))
}
