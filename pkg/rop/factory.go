package rop

import (
	"runtime/debug"
	"slices"
)

// Ok returns a succeeded result holding value and the given success reasons.
func Ok[T any](value T, successes ...Success) Result[T] {
	return Result[T]{
		value:     value,
		successes: slices.Clone(successes),
	}
}

func OkUnit(successes ...Success) Result[Unit] {
	return Ok(Unit{}, successes...)
}

// Fail returns a failed result with one ErrorReason. It panics with
// *ArgumentError if message is blank.
func Fail[T any](message string) Result[T] {
	return FailWith[T](NewError(message))
}

// FailWith returns a failed result carrying errs in order. At least one
// error is required.
func FailWith[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic(&ArgumentError{Param: "errs", Reason: "a failed result needs at least one error"})
	}
	for _, e := range errs {
		if IsNil(e) {
			panic(&ArgumentError{Param: "errs", Reason: "must not contain nil"})
		}
	}
	return Result[T]{errors: slices.Clone(errs)}
}

// FromError converts a Go error into a failed result. An rop.Error is kept
// as is, a joined error is split into its parts, anything else is wrapped in
// an ExceptionError.
func FromError[T any](err error) Result[T] {
	if IsNil(err) {
		panic(&ArgumentError{Param: "err", Reason: "must not be nil"})
	}
	return Result[T]{errors: toErrors(err)}
}

// FromTuple converts the usual (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if !IsNil(err) {
		return FromError[T](err)
	}
	return Ok(value)
}

// FailFrom re-types a failed result: the errors and successes of from are
// carried over verbatim. It is what every combinator returns when its source
// has already failed.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		successes: from.Successes(),
		errors:    from.Errors(),
	}
}

// OkIf succeeds with value when condition holds, otherwise fails with failureMessage.
func OkIf[T any](condition bool, value T, failureMessage string) Result[T] {
	if condition {
		return Ok(value)
	}
	return Fail[T](failureMessage)
}

func OkIfWith[T any](condition bool, value T, err Error) Result[T] {
	if condition {
		return Ok(value)
	}
	return FailWith[T](err)
}

// FailIf fails with failureMessage when condition holds; the inverse of OkIf.
func FailIf[T any](condition bool, failureMessage string, value T) Result[T] {
	return OkIf(!condition, value, failureMessage)
}

func FailIfWith[T any](condition bool, err Error, value T) Result[T] {
	return OkIfWith(!condition, value, err)
}

// Try runs op and turns a returned error or a panic into a failed result.
func Try[T any](op func() (T, error)) Result[T] {
	return TryWith(op, nil)
}

// TryWith is Try with a custom conversion of the fault. A nil mapper, or a
// mapper returning nil or panicking, falls back to FromError for returned
// errors and to ExceptionError for panics.
func TryWith[T any](op func() (T, error), mapper func(error) Error) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			ex := FromPanic(v, debug.Stack())
			if mapped := mapFault(ex.Fault(), mapper); mapped != nil {
				res = FailWith[T](mapped)
				return
			}
			res = FailWith[T](ex)
		}
	}()

	v, err := op()
	if !IsNil(err) {
		if mapped := mapFault(err, mapper); mapped != nil {
			return FailWith[T](mapped)
		}
		return FromError[T](err)
	}
	return Ok(v)
}

func TryUnit(op func() error) Result[Unit] {
	return Try(func() (Unit, error) {
		return Unit{}, op()
	})
}

// Guard calls f and converts a panic raised inside it into a failed result
// holding an ExceptionError. Combinators run user callbacks through it.
func Guard[T any](f func() Result[T]) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = FailWith[T](FromPanic(v, debug.Stack()))
		}
	}()
	return f()
}

// mapFault applies mapper to a fault. A mapper that panics counts as one
// returning nil, so the caller falls back to the default conversion.
func mapFault(err error, mapper func(error) Error) (mapped Error) {
	if mapper == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			mapped = nil
		}
	}()
	mapped = mapper(err)
	if IsNil(mapped) {
		return nil
	}
	return mapped
}

func toErrors(err error) []Error {
	if e, ok := err.(Error); ok {
		return []Error{e}
	}
	if _, ok := err.(interface{ Unwrap() []error }); ok {
		out := make([]Error, 0)
		for _, inner := range GetErrors(err) {
			if IsNil(inner) {
				continue
			}
			out = append(out, toErrors(inner)...)
		}
		if len(out) > 0 {
			return out
		}
	}
	return []Error{NewExceptionError(err)}
}
