// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq makes sequence transformations first-class values.
//
// A [Pipe] wraps a function from one lazy [iter.Seq] to another. Pipes can be
// stored, named, chained with [Then], combined with set algebra and applied
// later to any number of sources. A [Terminal] folds a sequence into a
// single value and ends a chain.
//
// Pipes stream unless the operation needs the whole input: [Window],
// [Reverse] and [Repeat] buffer, and the set combinators materialise the
// shared source once so both operands see the same elements and the source
// is enumerated a single time.
//
// Operator names used by other pipeline libraries map as follows:
//
//	p | q    Then(p, q)
//	p + q    Union(p, q), in concatenation order (p's results, then q's)
//	p & q    Intersect(p, q)
//	p ^ q    SymmetricDifference(p, q)
//	p - q    Except(p, q)
//	~p       p.Reversed()
//	p * n    p.Repeated(n)
//	<< n     Take(n)
//	>> n     Skip(n)
package seq
