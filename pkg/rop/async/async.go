package async

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/chain"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// AsyncRule is a solo.Rule whose predicate is computed asynchronously.
type AsyncRule[T any] struct {
	Predicate func(ctx context.Context, in T) Source[bool]
	Error     rop.Error
}

// then runs step over the awaited source. A sync continuation over an
// already completed source runs inline; everything else runs in a new
// goroutine. A failed completed source never starts a goroutine.
func then[In, Out any](ctx context.Context, src Source[In], inline bool,
	step func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) *Future[Out] {

	if r, ok := src.(rop.Result[In]); ok {
		if r.IsFailure() {
			return Done(rop.FailFrom[In, Out](r))
		}
		if inline {
			return Done(rop.Guard(func() rop.Result[Out] {
				return step(ctx, r)
			}))
		}
	}

	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return step(ctx, src.Await(ctx))
	})
}

func awaitGuarded[T any](ctx context.Context, next func() Source[T]) rop.Result[T] {
	return rop.Guard(func() rop.Result[T] {
		return next().Await(ctx)
	})
}

func Map[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {
	return then(ctx, src, true, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	})
}

// MapAsync maps the value through an asynchronous computation. The successes
// of the source come first, followed by those of the computation, whether it
// succeeded or failed.
func MapAsync[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) Source[Out]) *Future[Out] {
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		if r.IsFailure() {
			return rop.FailFrom[In, Out](r)
		}
		next := awaitGuarded(ctx, func() Source[Out] { return onSuccess(ctx, r.Value()) })
		return next.PrependSuccesses(r.Successes()...)
	})
}

func Bind[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) *Future[Out] {
	return then(ctx, src, true, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, onSuccess)
	})
}

// BindAsync continues with an asynchronous step; successes are unioned as in solo.Bind.
func BindAsync[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) Source[Out]) *Future[Out] {
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, func(ctx context.Context, v In) rop.Result[Out] {
			return onSuccess(ctx, v).Await(ctx)
		})
	})
}

func Ensure[T any](ctx context.Context, src Source[T],
	predicate func(ctx context.Context, in T) bool, message string) *Future[T] {
	err := rop.NewError(message)
	return then(ctx, src, true, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.EnsureWith(ctx, r, predicate, err)
	})
}

// EnsureAsync fails with message when the asynchronous predicate yields
// false, and with the predicate's own errors when it fails.
func EnsureAsync[T any](ctx context.Context, src Source[T],
	predicate func(ctx context.Context, in T) Source[bool], message string) *Future[T] {
	err := rop.NewError(message)
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		if r.IsFailure() {
			return r
		}
		return checkAsync(ctx, r, predicate, err)
	})
}

func EnsureAll[T any](ctx context.Context, src Source[T], rules ...solo.Rule[T]) *Future[T] {
	solo.CheckRules(rules...)
	return then(ctx, src, true, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.EnsureAll(ctx, r, rules...)
	})
}

// EnsureAllAsync awaits every rule in order and collects every failing
// rule's error.
func EnsureAllAsync[T any](ctx context.Context, src Source[T], rules ...AsyncRule[T]) *Future[T] {
	for _, rule := range rules {
		if rule.Predicate == nil || rop.IsNil(rule.Error) {
			panic(&rop.ArgumentError{Param: "rules", Reason: "predicate and error must not be nil"})
		}
	}
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		if r.IsFailure() {
			return r
		}
		var errs []rop.Error
		for _, rule := range rules {
			checked := checkAsync(ctx, r, rule.Predicate, rule.Error)
			errs = append(errs, checked.Errors()...)
		}
		return r.WithError(errs...)
	})
}

func checkAsync[T any](ctx context.Context, r rop.Result[T],
	predicate func(ctx context.Context, in T) Source[bool], err rop.Error) rop.Result[T] {
	ok := awaitGuarded(ctx, func() Source[bool] { return predicate(ctx, r.Value()) })
	if ok.IsFailure() {
		return r.WithError(ok.Errors()...)
	}
	if !ok.Value() {
		return r.WithError(err)
	}
	return r
}

func Filter[T any](ctx context.Context, src Source[T],
	predicate func(ctx context.Context, in T) bool, message string) *Future[T] {
	if message == "" {
		message = solo.DefaultFilterMessage
	}
	return Ensure(ctx, src, predicate, message)
}

func FilterAsync[T any](ctx context.Context, src Source[T],
	predicate func(ctx context.Context, in T) Source[bool], message string) *Future[T] {
	if message == "" {
		message = solo.DefaultFilterMessage
	}
	return EnsureAsync(ctx, src, predicate, message)
}

func Tap[T any](ctx context.Context, src Source[T],
	onSuccess func(ctx context.Context, r T)) *Future[T] {
	return then(ctx, src, true, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, r, onSuccess)
	})
}

// TapAsync awaits the side effect and returns the source result unchanged,
// whatever the side effect yields.
func TapAsync[T any](ctx context.Context, src Source[T],
	onSuccess func(ctx context.Context, r T) Source[rop.Unit]) *Future[T] {
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		if r.IsSuccess() {
			awaitGuarded(ctx, func() Source[rop.Unit] { return onSuccess(ctx, r.Value()) })
		}
		return r
	})
}

func TapError[T any](ctx context.Context, src Source[T],
	onFailure func(ctx context.Context, err rop.Error)) *Future[T] {
	if r, ok := src.(rop.Result[T]); ok {
		return Done(solo.TapError(ctx, r, onFailure))
	}
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		return solo.TapError(ctx, src.Await(ctx), onFailure)
	})
}

func TapErrorAsync[T any](ctx context.Context, src Source[T],
	onFailure func(ctx context.Context, err rop.Error) Source[rop.Unit]) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		r := src.Await(ctx)
		if r.IsFailure() {
			awaitGuarded(ctx, func() Source[rop.Unit] { return onFailure(ctx, r.FirstError()) })
		}
		return r
	})
}

// Match awaits src and reduces it through exactly one branch.
func Match[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.Error) Out) Out {
	return solo.Match(ctx, src.Await(ctx), onSuccess, onFailure)
}

// MatchAsync awaits src, then awaits the branch it selects.
func MatchAsync[In, Out any](ctx context.Context, src Source[In],
	onSuccess func(ctx context.Context, r In) Source[Out],
	onFailure func(ctx context.Context, errs []rop.Error) Source[Out]) rop.Result[Out] {
	r := src.Await(ctx)
	return rop.Guard(func() rop.Result[Out] {
		return solo.Match(ctx, r, onSuccess, onFailure).Await(ctx)
	})
}

// Try runs op in a new goroutine. A returned error or a panic fails the
// future; a context error becomes a CanceledError.
func Try[T any](ctx context.Context, op func(ctx context.Context) (T, error)) *Future[T] {
	return TryWith(ctx, op, nil)
}

func TryWith[T any](ctx context.Context, op func(ctx context.Context) (T, error),
	mapper func(err error) rop.Error) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		return rop.TryWith(func() (T, error) {
			return op(ctx)
		}, func(err error) rop.Error {
			if mapper != nil {
				if mapped := mapper(err); !rop.IsNil(mapped) {
					return mapped
				}
			}
			return faultOf(err)
		})
	})
}

// Project is chain.SelectManyProject with an asynchronous intermediate step.
func Project[T, U, V any](ctx context.Context, src Source[T],
	bind func(ctx context.Context, in T) Source[U],
	project func(ctx context.Context, in T, mid U) V) *Future[V] {
	return then(ctx, src, false, func(ctx context.Context, r rop.Result[T]) rop.Result[V] {
		return chain.SelectManyProject(ctx, r,
			func(ctx context.Context, in T) rop.Result[U] {
				return bind(ctx, in).Await(ctx)
			}, project)
	})
}
