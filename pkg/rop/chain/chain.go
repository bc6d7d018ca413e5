package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Chain carries a result and the context its steps run with. Every step
// returns a new Chain; a failed chain skips all further steps.
type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes a step that returns its own result.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.with(solo.Bind(c.ctx, c.res, onSuccess))
}

// ThenTry composes a (value, error) step, like a repository call.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.Try(c.ctx, c.res, try))
}

func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) Ensure(predicate func(ctx context.Context, t T) bool, message string) Chain[T] {
	return c.with(solo.Ensure(c.ctx, c.res, predicate, message))
}

func (c Chain[T]) Filter(predicate func(ctx context.Context, t T) bool) Chain[T] {
	return c.with(solo.Filter(c.ctx, c.res, predicate, ""))
}

func (c Chain[T]) Tap(onSuccess func(ctx context.Context, t T)) Chain[T] {
	return c.with(solo.Tap(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) TapError(onFailure func(ctx context.Context, err rop.Error)) Chain[T] {
	return c.with(solo.TapError(c.ctx, c.res, onFailure))
}

// RepeatUntil runs onSuccess at least once and repeats it while the chain
// succeeds and until reports true.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While repeats onSuccess as long as the chain succeeds and while holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first succeeded chain among c and alternatives. When all of
// them failed, a chain failed by context cancellation is preferred over the
// others, then c itself.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := append([]Chain[T]{c}, alternatives...)

	var canceled *Chain[T]
	for i, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
		if canceled == nil && ch.res.HasError(isCanceled) {
			canceled = &candidates[i]
		}
	}

	if canceled != nil {
		return *canceled
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

func (c Chain[T]) Match(onSuccess func(ctx context.Context, t T) T,
	onFailure func(ctx context.Context, errs []rop.Error) T) T {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}

func isCanceled(e rop.Error) bool {
	return e.Kind() == rop.KindCanceled || rop.IsCancellationError(e)
}

// Then composes a step that changes the value type.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, tryOnSuccess)}
}

func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Project binds and projects in one step, see SelectManyProject.
func Project[T, U, V any](c Chain[T], bind func(context.Context, T) rop.Result[U],
	project func(context.Context, T, U) V) Chain[V] {
	return Chain[V]{ctx: c.ctx, res: SelectManyProject(c.ctx, c.res, bind, project)}
}

// Match collapses the chain into a final value.
func Match[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []rop.Error) U) U {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}
