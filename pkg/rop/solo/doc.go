// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Every function short-circuits: when the input has failed, the callback is
// not called and the failure is returned with its errors unchanged.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/Ensure/EnsureAll/Verify/Filter: checks producing failures
// - Bind: move from Result[In] to Result[Out] through a step returning a Result
// - Map: transform successful values
// - Try/TryWith: call a function (Out, error) and convert error to failure
// - Tap/TapIf/TapError/TapBoth: side-effect helpers
// - Match/MatchDo: reduce to a concrete value via success/failure handlers
// - MapErrors/Recover: work on the failure track
package solo
