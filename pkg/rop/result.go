package rop

import (
	"context"
	"errors"
	"slices"
)

// Unit is the value of a Result that carries no value.
type Unit struct{}

// Result is the outcome of a step: a value when it succeeded, plus the
// ordered lists of success and error reasons collected so far. A Result is
// failed exactly when it holds at least one error; successes never change
// the state.
type Result[T any] struct {
	value     T
	successes []Success
	errors    []Error
}

func (r Result[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

func (r Result[T]) IsFailure() bool {
	return len(r.errors) > 0
}

// Value returns the value of a succeeded result and panics with
// *FailedResultError on a failed one. Use ValueOr or TryValue when failure
// is expected.
func (r Result[T]) Value() T {
	if r.IsFailure() {
		panic(&FailedResultError{Errors: r.Errors()})
	}
	return r.value
}

func (r Result[T]) TryValue() (T, bool) {
	if r.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T]) ValueOr(def T) T {
	if r.IsFailure() {
		return def
	}
	return r.value
}

func (r Result[T]) ValueOrElse(factory func() T) T {
	if r.IsFailure() {
		return factory()
	}
	return r.value
}

// ValueOrHandle returns the value, or what handler computes from the errors.
func (r Result[T]) ValueOrHandle(handler func(errs []Error) T) T {
	if r.IsFailure() {
		return handler(r.Errors())
	}
	return r.value
}

func (r Result[T]) Successes() []Success {
	return slices.Clone(r.successes)
}

func (r Result[T]) Errors() []Error {
	return slices.Clone(r.errors)
}

// FirstError returns nil on a succeeded result.
func (r Result[T]) FirstError() Error {
	if len(r.errors) == 0 {
		return nil
	}
	return r.errors[0]
}

// Reasons returns successes followed by errors.
func (r Result[T]) Reasons() []Reason {
	out := make([]Reason, 0, len(r.successes)+len(r.errors))
	for _, s := range r.successes {
		out = append(out, s)
	}
	for _, e := range r.errors {
		out = append(out, e)
	}
	return out
}

// Err joins all errors for code that expects a plain error; nil on success.
func (r Result[T]) Err() error {
	if len(r.errors) == 0 {
		return nil
	}
	if len(r.errors) == 1 {
		return r.errors[0]
	}
	errs := make([]error, len(r.errors))
	for i, e := range r.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// HasError reports whether any error matches pred.
func (r Result[T]) HasError(pred func(Error) bool) bool {
	return slices.ContainsFunc(r.errors, pred)
}

// WithSuccess returns a copy with more success reasons appended.
func (r Result[T]) WithSuccess(successes ...Success) Result[T] {
	out := r.clone()
	out.successes = append(out.successes, successes...)
	return out
}

// PrependSuccesses returns a copy whose success list starts with successes.
func (r Result[T]) PrependSuccesses(successes ...Success) Result[T] {
	out := r.clone()
	out.successes = append(slices.Clone(successes), r.successes...)
	return out
}

// WithError returns a failed copy with more errors appended. The value is
// dropped. A nil error panics with *ArgumentError, as in FailWith.
func (r Result[T]) WithError(errs ...Error) Result[T] {
	if len(errs) == 0 {
		return r
	}
	for _, e := range errs {
		if IsNil(e) {
			panic(&ArgumentError{Param: "errs", Reason: "must not contain nil"})
		}
	}
	out := r.clone()
	out.errors = append(out.errors, errs...)
	var zero T
	out.value = zero
	return out
}

// WithReasons appends the successes and errors of other, in order.
func (r Result[T]) WithReasons(other Outcome) Result[T] {
	return r.WithSuccess(other.Successes()...).WithError(other.Errors()...)
}

// Await returns r itself; a Result is an already completed source.
func (r Result[T]) Await(context.Context) Result[T] {
	return r
}

func (r Result[T]) clone() Result[T] {
	return Result[T]{
		value:     r.value,
		successes: slices.Clone(r.successes),
		errors:    slices.Clone(r.errors),
	}
}
