// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

// Unit is the type with exactly one value.
// It stands in for "no meaningful result" in Result[Unit], Validation[Unit]
// and State[S, Unit].
type Unit struct{}

func (Unit) String() string { return "()" }
