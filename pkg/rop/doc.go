// Package rop defines the reason and result types of the railway: immutable
// Error and Success reasons with tag metadata, and Result[T], which holds a
// value when no error was recorded.
//
// Highlights:
// - NewError/NewSuccess and ErrorOf/SuccessOf for domain reason variants
// - Ok/Fail/FailWith/OkIf/FailIf/FromError/FromTuple: construct Result[T]
// - Try/TryWith/TryUnit: convert returned errors and panics into failures
// - Combine/Merge: aggregate many results
// - GetTag/RequireTag: typed access to reason tags
//
// Building a reason wrongly (blank message, duplicate tag key) panics with a
// typed error. Something going wrong while running a step is a failed Result.
package rop
