// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines of results.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with a fixed number of lines
// - RunWith: the same with cancellation handlers, see core.DrainHandlers
// - Validate/Ensure/Bind/Map/Try/Tap/TapBoth: lift solo operations into engines
// - Await: lift an asynchronous step from package async
// - Chain: fuse two engines into one
// - Match/MatchWith: reduce each Result[In] to Out
package lite
