package lite

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/async"
	"github.com/ib-77/ropx/pkg/rop/core"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Engine processes one result and delivers the outcome on a channel.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out]

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine Engine[T, T], lines int) <-chan rop.Result[T] {
	return core.Lines(ctx, inputCh, engine, core.CancellationHandlers[T, T]{}, nil, lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine Engine[In, Out], lines int) <-chan rop.Result[Out] {
	return core.Lines(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// RunWith is Turnout with explicit cancellation handlers and a callback for
// every delivered result. core.DrainHandlers makes a canceled pipeline still
// deliver one result per input.
func RunWith[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine Engine[In, Out], handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), lines int) <-chan rop.Result[Out] {
	return core.Lines(ctx, inputCh, engine, handlers, onSuccess, lines)
}

// Chain runs first and then next over the same input; it is how two
// engines are fused into one line.
func Chain[In, Mid, Out any](first Engine[In, Mid], next Engine[Mid, Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		out := make(chan rop.Result[Out], 1)
		go func() {
			defer close(out)
			select {
			case mid, ok := <-first(ctx, input):
				if !ok {
					return
				}
				if r, ok := <-next(ctx, mid); ok {
					out <- r
				}
			case <-ctx.Done():
			}
		}()
		return out
	}
}

func lift[In, Out any](step func(ctx context.Context, input rop.Result[In]) rop.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return core.Stage(ctx, input, step, nil)
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Ensure[T any](predicate func(ctx context.Context, in T) bool, message string) Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Ensure(ctx, input, predicate, message)
	})
}

func Bind[In, Out any](onSuccess func(ctx context.Context, r In) rop.Result[Out]) Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, input, onSuccess)
	})
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

// Await binds each value to an asynchronous step, such as an async.Future.
func Await[In, Out any](onSuccess func(ctx context.Context, r In) async.Source[Out]) Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return async.BindAsync(ctx, input, onSuccess).Await(ctx)
	})
}

func Tap[T any](onSuccess func(ctx context.Context, r T)) Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, input, onSuccess)
	})
}

func TapBoth[T any](onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.Error)) Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.TapBoth(ctx, input, onSuccess, onFailure)
	})
}

// Match reduces every result of input to a plain value.
func Match[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers core.FinallyHandlers[In, Out]) <-chan Out {
	return core.Finalize(ctx, input, handlers, nil)
}

// MatchWith is Match with a fallback for inputs left behind by cancellation.
func MatchWith[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers core.FinallyHandlers[In, Out],
	onBreak func(ctx context.Context, in rop.Result[In]) Out) <-chan Out {
	return core.Finalize(ctx, input, handlers, onBreak)
}
