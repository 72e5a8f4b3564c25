// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"iter"
	"slices"

	"code.hybscloud.com/fnx"
	"github.com/samber/lo"
)

// Pipe is a reusable transformation from a sequence of A to a sequence of B.
// The zero Pipe is not usable.
type Pipe[A, B any] struct {
	f func(iter.Seq[A]) iter.Seq[B]
}

// NewPipe wraps f as a Pipe. f must not consume its input before the
// returned sequence is iterated.
func NewPipe[A, B any](f func(iter.Seq[A]) iter.Seq[B]) Pipe[A, B] {
	return Pipe[A, B]{f: f}
}

// Apply transforms src lazily.
func (p Pipe[A, B]) Apply(src iter.Seq[A]) iter.Seq[B] {
	if p.f == nil {
		panic("seq: zero Pipe")
	}
	return p.f(src)
}

// ApplySlice applies p to a slice and collects the result.
func (p Pipe[A, B]) ApplySlice(src []A) []B {
	return slices.Collect(p.Apply(slices.Values(src)))
}

// Reversed returns p followed by Reverse.
func (p Pipe[A, B]) Reversed() Pipe[A, B] {
	return Then(p, Reverse[B]())
}

// Repeated returns p followed by Repeat(n).
func (p Pipe[A, B]) Repeated(n int) Pipe[A, B] {
	return Then(p, Repeat[B](n))
}

// Then runs p, then q.
func Then[A, B, C any](p Pipe[A, B], q Pipe[B, C]) Pipe[A, C] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[C] {
		return q.Apply(p.Apply(src))
	})
}

// Identity passes every element through.
func Identity[A any]() Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] { return src })
}

// Filter keeps elements satisfying pred.
func Filter[A any](pred func(A) bool) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			for a := range src {
				if pred(a) && !yield(a) {
					return
				}
			}
		}
	})
}

// Map transforms every element.
func Map[A, B any](f func(A) B) Pipe[A, B] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			for a := range src {
				if !yield(f(a)) {
					return
				}
			}
		}
	})
}

// FlatMap replaces every element with the elements f returns for it.
func FlatMap[A, B any](f func(A) []B) Pipe[A, B] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			for a := range src {
				for _, b := range f(a) {
					if !yield(b) {
						return
					}
				}
			}
		}
	})
}

// Scan emits the running accumulation after each element. The seed itself
// is not emitted.
func Scan[A, S any](seed S, f func(S, A) S) Pipe[A, S] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[S] {
		return func(yield func(S) bool) {
			acc := seed
			for a := range src {
				acc = f(acc, a)
				if !yield(acc) {
					return
				}
			}
		}
	})
}

// Take keeps the first n elements and stops reading the source after them.
func Take[A any](n int) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for a := range src {
				if !yield(a) {
					return
				}
				i++
				if i == n {
					return
				}
			}
		}
	})
}

// Skip drops the first n elements.
func Skip[A any](n int) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			i := 0
			for a := range src {
				if i < n {
					i++
					continue
				}
				if !yield(a) {
					return
				}
			}
		}
	})
}

// TakeWhile keeps elements until pred first fails.
func TakeWhile[A any](pred func(A) bool) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			for a := range src {
				if !pred(a) || !yield(a) {
					return
				}
			}
		}
	})
}

// SkipWhile drops elements until pred first fails, then keeps the rest.
func SkipWhile[A any](pred func(A) bool) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			skipping := true
			for a := range src {
				if skipping && pred(a) {
					continue
				}
				skipping = false
				if !yield(a) {
					return
				}
			}
		}
	})
}

// Window emits every run of size consecutive elements, sliding by one.
// Each window is a fresh slice. Inputs shorter than size emit nothing.
func Window[A any](size int) Pipe[A, []A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[[]A] {
		return func(yield func([]A) bool) {
			if size <= 0 {
				return
			}
			buf := make([]A, 0, size)
			for a := range src {
				if len(buf) == size {
					copy(buf, buf[1:])
					buf = buf[:size-1]
				}
				buf = append(buf, a)
				if len(buf) == size && !yield(slices.Clone(buf)) {
					return
				}
			}
		}
	})
}

// Chunk splits the sequence into consecutive slices of size elements; the
// last chunk may be shorter.
func Chunk[A any](size int) Pipe[A, []A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[[]A] {
		return func(yield func([]A) bool) {
			if size <= 0 {
				return
			}
			var buf []A
			for a := range src {
				buf = append(buf, a)
				if len(buf) == size {
					if !yield(buf) {
						return
					}
					buf = nil
				}
			}
			if len(buf) != 0 {
				yield(buf)
			}
		}
	})
}

// Distinct drops elements already seen, keeping first occurrences.
func Distinct[A comparable]() Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			seen := make(map[A]struct{})
			for a := range src {
				if _, ok := seen[a]; ok {
					continue
				}
				seen[a] = struct{}{}
				if !yield(a) {
					return
				}
			}
		}
	})
}

// Reverse emits the elements in reverse order. It buffers the whole input.
func Reverse[A any]() Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			buf := slices.Collect(src)
			for _, a := range slices.Backward(buf) {
				if !yield(a) {
					return
				}
			}
		}
	})
}

// Repeat emits the whole input n times. n <= 0 yields an empty sequence.
// The source is read once.
func Repeat[A any](n int) Pipe[A, A] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			if n <= 0 {
				return
			}
			buf := slices.Collect(src)
			for range n {
				for _, a := range buf {
					if !yield(a) {
						return
					}
				}
			}
		}
	})
}

// Join pairs each element with every inner element of equal key, in source
// order then inner order. Elements without a match are dropped.
func Join[A, B any, K comparable, R any](inner []B, outerKey func(A) K, innerKey func(B) K, result func(A, B) R) Pipe[A, R] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[R] {
		return func(yield func(R) bool) {
			index := lo.GroupBy(inner, innerKey)
			for a := range src {
				for _, b := range index[outerKey(a)] {
					if !yield(result(a, b)) {
						return
					}
				}
			}
		}
	})
}

// Zip pairs elements with other by position, stopping at the shorter one.
func Zip[A, B any](other []B) Pipe[A, fnx.Pair[A, B]] {
	return NewPipe(func(src iter.Seq[A]) iter.Seq[fnx.Pair[A, B]] {
		return func(yield func(fnx.Pair[A, B]) bool) {
			i := 0
			for a := range src {
				if i >= len(other) {
					return
				}
				if !yield(fnx.Pair[A, B]{Fst: a, Snd: other[i]}) {
					return
				}
				i++
			}
		}
	})
}
