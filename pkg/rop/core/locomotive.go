package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/ropx/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out])
}

// Locomotive is one worker line: it pulls results from inputCh, runs engine
// on each and forwards the outcome to outCh until inputCh closes or ctx ends.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	log := Logger(ctx)
	processed := 0
	defer func() {
		log.Debug("line stopped", zap.Int("processed", processed))
	}()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				log.Debug("canceled before processing", zap.Error(ctx.Err()))
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					// the engine gave up on in because ctx ended
					if ctx.Err() != nil {
						if handlers.OnCancelUnprocessed != nil {
							handlers.OnCancelUnprocessed(ctx, in, outCh)
						}
						if handlers.OnCancel != nil {
							handlers.OnCancel(ctx, inputCh, outCh)
						}
					}
					return
				}

				select {
				case <-ctx.Done():
					log.Debug("canceled after processing", zap.Error(ctx.Err()))
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					processed++
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}

// Lines starts the given number of locomotives over one input channel; a
// count below one falls back to the worker option of ctx, then to one. The
// returned channel closes when every line has stopped.
func Lines[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = max(GetWorkerMaxCount(ctx, 1), 1)
	}
	Logger(ctx).Debug("starting lines", zap.Int("lines", lines))

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
