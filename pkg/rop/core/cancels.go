package core

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/async"
)

// CanceledFrom converts a result that will not be processed because ctx
// ended: a failed result keeps its reasons, a succeeded one fails with a
// CanceledError.
func CanceledFrom[In, Out any](ctx context.Context, in rop.Result[In]) rop.Result[Out] {
	if in.IsFailure() {
		return rop.FailFrom[In, Out](in)
	}
	return rop.FailWith[Out](async.NewCanceledError(context.Cause(ctx))).
		WithSuccess(in.Successes()...)
}

// CancelRemainingResults drains inputCh into outCh as canceled results when
// the process-remaining option is on (the default).
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- CanceledFrom[In, Out](ctx, in)
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In],
	outCh chan<- rop.Result[Out]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- CanceledFrom[In, Out](ctx, in)
	}
}

// CancelProcessedResult still delivers a result that was completed right
// before ctx ended.
func CancelProcessedResult[In, Out any](ctx context.Context, _ rop.Result[In],
	processed rop.Result[Out], outCh chan<- rop.Result[Out]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}

func CancelRemainingValue[In, Out any](ctx context.Context, in rop.Result[In],
	brokenF func(ctx context.Context, in rop.Result[In]) Out, outCh chan<- Out) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- brokenF(ctx, in)
	}
}

func CancelRemainingValues[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	brokenF func(ctx context.Context, in rop.Result[In]) Out, outCh chan<- Out) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- brokenF(ctx, in)
	}
}

// DrainHandlers are cancellation handlers that turn every input left behind
// by a canceled pipeline into a canceled result, so the consumer sees one
// output per input.
func DrainHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed:   CancelProcessedResult[In, Out],
	}
}
