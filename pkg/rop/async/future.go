package async

import (
	"context"
	"errors"

	"github.com/ib-77/ropx/pkg/rop"
)

// Source is anything that eventually yields a Result. A rop.Result is a
// source that has already completed; a *Future completes when its goroutine
// finishes.
type Source[T any] interface {
	Await(ctx context.Context) rop.Result[T]
}

// Future is a Result produced by a goroutine. It is assigned once and may be
// awaited any number of times.
type Future[T any] struct {
	done chan struct{}
	res  rop.Result[T]
}

// Go runs op in a new goroutine. A panic inside op completes the future with
// an ExceptionError.
func Go[T any](ctx context.Context, op func(ctx context.Context) rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.res = rop.Guard(func() rop.Result[T] {
			return op(ctx)
		})
	}()
	return f
}

// Done returns a future that has already completed with r.
func Done[T any](r rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// FromChan adapts a channel that delivers one Result, such as the stages of
// package lite. A channel closed without a value yields a failed result.
func FromChan[T any](ctx context.Context, ch <-chan rop.Result[T]) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		select {
		case r, ok := <-ch:
			if !ok {
				return rop.Fail[T](ErrClosedWithoutResult.Error())
			}
			return r
		case <-ctx.Done():
			return rop.FailWith[T](NewCanceledError(context.Cause(ctx)))
		}
	})
}

var ErrClosedWithoutResult = errors.New("channel closed without a result")

// Await blocks until the future completes or ctx ends. A completed future
// is returned even when ctx has already ended; otherwise an ended ctx yields
// a failed result holding a CanceledError.
func (f *Future[T]) Await(ctx context.Context) rop.Result[T] {
	select {
	case <-f.done:
		return f.res
	default:
	}

	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return rop.FailWith[T](NewCanceledError(context.Cause(ctx)))
	}
}

// IsDone reports whether the future has completed, without blocking.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

var (
	_ Source[int] = (*Future[int])(nil)
	_ Source[int] = rop.Result[int]{}
)
