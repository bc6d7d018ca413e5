package core

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

// Stage runs step over input in its own goroutine and delivers the outcome
// on the returned channel. When ctx ends first nothing is delivered, the
// channel closes, and onCancel (if any) receives the input.
func Stage[In, Out any](ctx context.Context, input rop.Result[In],
	step func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	ch := make(chan rop.Result[Out], 1)
	out := make(chan rop.Result[Out], 1)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- rop.Guard(func() rop.Result[Out] {
				return step(ctx, input)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else if onCancel != nil {
				onCancel(ctx, input)
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// FinallyHandlers reduce a result to a plain value.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, errs []rop.Error) Out
}

// Finalize reduces every result of inputCh through handlers. When ctx ends,
// onBreak (if any) produces a value for each input still pending, provided
// the process-remaining option is on.
func Finalize[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out],
	onBreak func(ctx context.Context, in rop.Result[In]) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if onBreak != nil {
					CancelRemainingValues(ctx, inputCh, onBreak, out)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				var res Out
				if in.IsSuccess() {
					res = handlers.OnSuccess(ctx, in.Value())
				} else {
					res = handlers.OnFailure(ctx, in.Errors())
				}

				if ctx.Err() != nil {
					if onBreak != nil {
						CancelRemainingValue(ctx, in, onBreak, out)
						CancelRemainingValues(ctx, inputCh, onBreak, out)
					}
					return
				}

				select {
				case <-ctx.Done():
					if onBreak != nil {
						CancelRemainingValue(ctx, in, onBreak, out)
						CancelRemainingValues(ctx, inputCh, onBreak, out)
					}
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
