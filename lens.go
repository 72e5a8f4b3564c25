// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "reflect"

// Lens focuses on one field V of an immutable value S.
//
// A Lens must satisfy the lens laws, which the type cannot check:
//
//	l.Get(l.Set(s, v)) == v
//	l.Set(s, l.Get(s)) == s
//
// The zero Lens is not initialized; using it panics with
// ErrLensNotInitialized.
type Lens[S, V any] struct {
	get  func(S) V
	set  func(S, V) S
	path string
}

// NewLens creates a Lens without path metadata.
func NewLens[S, V any](get func(S) V, set func(S, V) S) Lens[S, V] {
	return Lens[S, V]{get: get, set: set}
}

// NewLensAt creates a Lens with a diagnostic path such as "Address.City".
func NewLensAt[S, V any](path string, get func(S) V, set func(S, V) S) Lens[S, V] {
	return Lens[S, V]{get: get, set: set, path: path}
}

// IdentityLens focuses on the whole value. Its path names the root, which
// then prefixes every lens composed after it.
func IdentityLens[S any](path string) Lens[S, S] {
	return Lens[S, S]{
		get:  func(s S) S { return s },
		set:  func(_ S, v S) S { return v },
		path: path,
	}
}

// Initialized reports whether both getter and setter are present.
func (l Lens[S, V]) Initialized() bool {
	return l.get != nil && l.set != nil
}

func (l Lens[S, V]) mustInit() {
	if l.get == nil || l.set == nil {
		panic(ErrLensNotInitialized)
	}
}

// Get returns the focused value.
func (l Lens[S, V]) Get(s S) V {
	l.mustInit()
	return l.get(s)
}

// Set returns a copy of s with the focused value replaced by v.
func (l Lens[S, V]) Set(s S, v V) S {
	l.mustInit()
	return l.set(s, v)
}

// Over replaces the focused value with f applied to it.
func (l Lens[S, V]) Over(s S, f func(V) V) S {
	l.mustInit()
	return l.set(s, f(l.get(s)))
}

// Path returns the diagnostic path, possibly empty.
func (l Lens[S, V]) Path() string {
	return l.path
}

// WithPath returns the same Lens with a different diagnostic path.
func (l Lens[S, V]) WithPath(path string) Lens[S, V] {
	l.path = path
	return l
}

// Describe returns the path, or the lens type when no path was attached.
func (l Lens[S, V]) Describe() string {
	if l.path != "" {
		return l.path
	}
	return "Lens[" + reflect.TypeFor[S]().String() + ", " + reflect.TypeFor[V]().String() + "]"
}

// ComposeLens focuses through outer, then inner. Setting reads the
// intermediate value, sets on it, and sets the result back on the outer
// value. The path is the dotted join of both paths.
func ComposeLens[A, B, C any](outer Lens[A, B], inner Lens[B, C]) Lens[A, C] {
	outer.mustInit()
	inner.mustInit()
	return Lens[A, C]{
		get:  func(a A) C { return inner.get(outer.get(a)) },
		set:  func(a A, c C) A { return outer.set(a, inner.set(outer.get(a), c)) },
		path: joinPath(outer.path, inner.path),
	}
}

func joinPath(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "." + b
	}
}
