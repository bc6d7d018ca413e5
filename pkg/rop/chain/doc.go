// Package chain provides the query-style sugar over Result[T] and a fluent
// Chain[T] for synchronous railway pipelines built on the solo primitives.
//
// Query operations:
// - Select/Where/SelectMany: Map, Filter and Bind under query names
// - SelectManyProject: bind to an intermediate result, then project both values
//
// Chain operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: compose steps; the free functions change the value type
// - Ensure/Filter/Tap/TapError: checks and side effects
// - RepeatUntil/While: loops over a step
// - Or/And: pick among alternative chains
// - Project/Match: projection and final reduction
package chain
