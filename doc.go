// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fnx provides small, composable functional building blocks for Go:
// optional and fallible values, deferred and context-aware computations,
// environment, log and state threading, error-accumulating validation,
// lenses, and a direct-style scope for sequencing fallible steps.
//
// Every type is an immutable value. "Changing" one produces a new value;
// the package holds no global mutable state. Go methods cannot introduce
// type parameters, so combinators that change the carried type are free
// functions named after their container (MapOption, BindResult, ...), and
// combinators that keep it are methods.
//
// # Containers
//
//   - [Option]: [Some], [None], [FromOk], [FromPtr]; [MapOption],
//     [BindOption], [MatchOption], [ApplyOption], [ZipWithOption]
//   - [Result]: [Ok], [Fail], [FailErr], [FromTuple], [ResultTry];
//     [MapResult], [BindResult], [MatchResult], [ApplyResult],
//     [TraverseResult], [EqualResult]
//   - [Try]: [Success], [Failure], [TryRun]; [MapTry], [BindTry], [MatchTry]
//   - [Unit]
//
// Map and Bind never call their function for None or a failure, and a
// failure keeps its original error. Panics inside callbacks are not caught;
// only [ResultTry], [TryRun], [TaskFrom] and [Do] recover.
//
// # Deferred Computations
//
//   - [IO]: synchronous, [MapIO], [BindIO]
//   - [TaskIO]: context-aware, [TaskIO.WithCancellation] races the task
//     against its context
//   - [TaskResult]: context-aware and fallible; [TaskOk], [TaskFail],
//     [TaskFrom], [MapTaskResult], [BindTaskResult], [ApplyTaskResult],
//     [TraverseTaskResult]
//
// Binds are strictly sequential and applicative combinators evaluate their
// left operand first. Cancellation surfaces as a failure with
// [ErrCancelled], never as a panic.
//
// # Context Threading
//
//   - [Reader]: [Ask], [Asks], [Reader.Local], [WithEnv]
//   - [Writer]: [Tell], [Writer.AppendLog], [BindWriter] (current log, then next)
//   - [State]: [GetState], [PutState], [ModifyState], [BindState]
//   - [Cont]: [Return], [Bind], [Map], [Then], [Run], [Shift], [Reset],
//     [CallCC]; [Affine] one-shot continuations via [Once]
//
// Transformers combine these with TaskResult and short-circuit on the first
// failure: [ReaderTaskResult], [StateTaskResult], [WriterTaskResult].
//
// # Validation
//
// [Validation] accumulates every error instead of stopping at the first.
// [Validator] is an immutable rule list:
//
//	v := fnx.NewValidator[Contact]()
//	v = fnx.EnsureAt(v, cityLens, notBlank, "City is required.")
//	res := v.Apply(contact)
//	// res.Errors(): ["Contact.Address.City: City is required."]
//
// Lens scoped rules ([EnsureAt], [CheckAt], [ValidateAt]) prefix messages
// with the lens path.
//
// # Lenses
//
// [Lens] gets and sets one field of an immutable value; [ComposeLens]
// focuses deeper and joins diagnostic paths with dots.
//
// # Do Scope
//
// [Do] runs a direct-style body; [Await] unwraps a step and records the
// first failure, after which no later step runs.
//
// # Resource Safety
//
//   - [Bracket]: acquire, use, always release
//   - [OnError]: cleanup only on failure
//
// Sequence pipelines live in the seq subpackage.
package fnx
