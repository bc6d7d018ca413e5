// Package async lifts the solo primitives to asynchronous results.
//
// A Source is either a rop.Result (already completed) or a *Future fed by a
// goroutine, so every function here accepts both. Each primitive comes in two
// forms: one whose callback is synchronous (Map) and one whose callback
// returns a Source (MapAsync).
//
// Chains are strictly sequential: a step awaits its source and, when the
// source has failed, returns the failure without calling, and so without
// starting, its continuation. Only CombineParallel runs work concurrently.
//
// Key operations:
// - Go/Done/FromChan: create a Future
// - Map/Bind/Ensure/EnsureAll/Filter/Tap/TapError (+Async forms)
// - Match/MatchAsync: await and reduce
// - Try/TryWith: run a (T, error) function in a goroutine
// - Project: flat-map with projector over an asynchronous step
// - Combine/CombineParallel/Merge: aggregate many results
package async
