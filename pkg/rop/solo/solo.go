package solo

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

// DefaultFilterMessage is the error message of Filter when none is given.
const DefaultFilterMessage = "the value did not satisfy the filter predicate"

// Rule pairs a predicate with the error reported when it does not hold.
type Rule[T any] struct {
	Predicate func(ctx context.Context, in T) bool
	Error     rop.Error
}

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](message string) rop.Result[T] {
	return rop.Fail[T](message)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate fails input with errMsg when validate reports it invalid.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	return rop.Guard(func() rop.Result[T] {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			if errMsg == "" {
				errMsg = DefaultFilterMessage
			}
			return input.WithError(rop.NewError(errMsg))
		}
		return input
	})
}

// Map applies onSuccess to the value and keeps the success reasons of input.
// A panic in onSuccess becomes an ExceptionError.
func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	return rop.Guard(func() rop.Result[Out] {
		return rop.Ok(onSuccess(ctx, input.Value()), input.Successes()...)
	})
}

// Bind continues with a step that returns its own Result. The successes of
// input come first, followed by those of the continuation, whether the
// continuation succeeded or failed.
func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	next := rop.Guard(func() rop.Result[Out] {
		return onSuccess(ctx, input.Value())
	})
	return prepend(input.Successes(), next)
}

// Try calls a (value, error) function and converts the error into a failure.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {
	return TryWith(ctx, input, onTryExecute, nil)
}

// TryWith is Try with a custom conversion of the returned error or panic.
func TryWith[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	mapper func(err error) rop.Error) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	out := rop.TryWith(func() (Out, error) {
		return onTryExecute(ctx, input.Value())
	}, mapper)
	return prepend(input.Successes(), out)
}

// Ensure keeps input when predicate holds and fails with message otherwise.
func Ensure[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, message string) rop.Result[T] {
	return EnsureWith(ctx, input, predicate, rop.NewError(message))
}

// EnsureWith is Ensure with a ready-made error. It panics with
// *rop.ArgumentError when err is nil.
func EnsureWith[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, err rop.Error) rop.Result[T] {
	if rop.IsNil(err) {
		panic(&rop.ArgumentError{Param: "err", Reason: "must not be nil"})
	}

	if input.IsFailure() {
		return input
	}

	return rop.Guard(func() rop.Result[T] {
		if predicate(ctx, input.Value()) {
			return input
		}
		return input.WithError(err)
	})
}

// EnsureAll evaluates every rule and fails with the errors of all rules that
// do not hold, in rule order. A panicking predicate contributes an
// ExceptionError and the remaining rules are still evaluated.
func EnsureAll[T any](ctx context.Context, input rop.Result[T], rules ...Rule[T]) rop.Result[T] {
	CheckRules(rules...)
	if input.IsFailure() {
		return input
	}

	var errs []rop.Error
	for _, rule := range rules {
		check := rop.Guard(func() rop.Result[bool] {
			return rop.Ok(rule.Predicate(ctx, input.Value()))
		})
		if check.IsFailure() {
			errs = append(errs, check.Errors()...)
			continue
		}
		if !check.Value() {
			errs = append(errs, rule.Error)
		}
	}

	return input.WithError(errs...)
}

// CheckRules panics with *rop.ArgumentError when a rule has no predicate or no error.
func CheckRules[T any](rules ...Rule[T]) {
	for _, rule := range rules {
		if rule.Predicate == nil {
			panic(&rop.ArgumentError{Param: "rules", Reason: "predicate must not be nil"})
		}
		if rop.IsNil(rule.Error) {
			panic(&rop.ArgumentError{Param: "rules", Reason: "error must not be nil"})
		}
	}
}

// Verify fails input with whatever error check returns.
func Verify[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	return rop.Guard(func() rop.Result[T] {
		if err := check(ctx, input.Value()); !rop.IsNil(err) {
			return input.WithReasons(rop.FromError[T](err))
		}
		return input
	})
}

// Filter keeps input when predicate holds. An empty message selects
// DefaultFilterMessage.
func Filter[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, message string) rop.Result[T] {
	if message == "" {
		message = DefaultFilterMessage
	}
	return Ensure(ctx, input, predicate, message)
}

// Tap runs a side effect on success and returns input unchanged. A panic in
// the side effect is recovered and dropped; every Tap form behaves this way.
func Tap[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		effect(func() { onSuccess(ctx, input.Value()) })
	}

	return input
}

func TapIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		effect(func() {
			if condition(ctx, input.Value()) {
				onSuccessAndCondition(ctx, input.Value())
			}
		})
	}

	return input
}

// TapError runs a side effect with the first error of a failed input.
func TapError[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsFailure() {
		effect(func() { onFailure(ctx, input.FirstError()) })
	}

	return input
}

func TapBoth[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.Error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			effect(func() { onSuccess(ctx, input.Value()) })
		}
	} else if onFailure != nil {
		effect(func() { onFailure(ctx, input.Errors()) })
	}

	return input
}

// Match reduces input to a value through exactly one of the branches.
func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}

// MatchDo is Match for side effects only.
func MatchDo[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.Error)) {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
		return
	}
	onFailure(ctx, input.Errors())
}

// MapErrors rewrites every error of a failed input.
func MapErrors[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err rop.Error) rop.Error) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}

	errs := input.Errors()
	mapped := make([]rop.Error, len(errs))
	for i, e := range errs {
		mapped[i] = onError(ctx, e)
	}
	return rop.FailWith[T](mapped...).WithSuccess(input.Successes()...)
}

// Recover replaces a failed input with what onFailure returns.
func Recover[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, errs []rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}

	return rop.Guard(func() rop.Result[T] {
		return onFailure(ctx, input.Errors())
	})
}

// effect runs a tap side effect. It never changes the observed result, so a
// panic inside it is discarded.
func effect(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}

func prepend[T any](successes []rop.Success, r rop.Result[T]) rop.Result[T] {
	if len(successes) == 0 {
		return r
	}
	return r.PrependSuccesses(successes...)
}
