// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "slices"

// Writer pairs a value with an append-only log.
//
// Log slices are shared between Writers but never appended to in place:
// every combination that adds entries allocates, so a Writer observed by
// one caller never changes under another.
type Writer[A, W any] struct {
	value A
	logs  []W
}

// WriterOf lifts a value with an empty log.
func WriterOf[W, A any](a A) Writer[A, W] {
	return Writer[A, W]{value: a}
}

// WriterFrom creates a Writer from a value and initial log entries.
func WriterFrom[A, W any](a A, logs ...W) Writer[A, W] {
	return Writer[A, W]{value: a, logs: slices.Clone(logs)}
}

// Tell records entries with no meaningful value.
func Tell[W any](logs ...W) Writer[Unit, W] {
	return Writer[Unit, W]{logs: slices.Clone(logs)}
}

// Value returns the carried value.
func (w Writer[A, W]) Value() A {
	return w.value
}

// Logs returns a copy of the accumulated log.
func (w Writer[A, W]) Logs() []W {
	return slices.Clone(w.logs)
}

// Run returns both value and a copy of the log.
func (w Writer[A, W]) Run() (A, []W) {
	return w.value, slices.Clone(w.logs)
}

// AppendLog adds one entry after the existing ones.
func (w Writer[A, W]) AppendLog(entry W) Writer[A, W] {
	return Writer[A, W]{value: w.value, logs: concatLogs(w.logs, []W{entry})}
}

// AppendLogs adds entries after the existing ones, in order.
func (w Writer[A, W]) AppendLogs(entries ...W) Writer[A, W] {
	return Writer[A, W]{value: w.value, logs: concatLogs(w.logs, slices.Clone(entries))}
}

// Censor rewrites the whole log with f.
func (w Writer[A, W]) Censor(f func([]W) []W) Writer[A, W] {
	return Writer[A, W]{value: w.value, logs: f(slices.Clone(w.logs))}
}

// concatLogs returns a followed by b. Both sides must already be owned by
// Writers. When either side is empty the other is returned as is; otherwise
// a fresh slice is allocated.
func concatLogs[W any](a, b []W) []W {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	out := make([]W, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// MapWriter applies a pure function to the value, keeping the log.
func MapWriter[A, B, W any](w Writer[A, W], f func(A) B) Writer[B, W] {
	return Writer[B, W]{value: f(w.value), logs: w.logs}
}

// BindWriter runs f on the value; the log of w comes before the log of the
// Writer returned by f.
func BindWriter[A, B, W any](w Writer[A, W], f func(A) Writer[B, W]) Writer[B, W] {
	next := f(w.value)
	return Writer[B, W]{value: next.value, logs: concatLogs(w.logs, next.logs)}
}

// ListenWriter exposes the log alongside the value.
func ListenWriter[A, W any](w Writer[A, W]) Writer[Pair[A, []W], W] {
	return Writer[Pair[A, []W], W]{
		value: Pair[A, []W]{Fst: w.value, Snd: slices.Clone(w.logs)},
		logs:  w.logs,
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
