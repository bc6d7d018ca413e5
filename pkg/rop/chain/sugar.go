package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Select is solo.Map under its query name.
func Select[T, U any](ctx context.Context, r rop.Result[T],
	selector func(ctx context.Context, in T) U) rop.Result[U] {
	return solo.Map(ctx, r, selector)
}

// Where keeps a succeeded result whose value satisfies predicate and fails
// it with solo.DefaultFilterMessage otherwise.
func Where[T any](ctx context.Context, r rop.Result[T],
	predicate func(ctx context.Context, in T) bool) rop.Result[T] {
	return solo.Filter(ctx, r, predicate, "")
}

// SelectMany is solo.Bind under its query name.
func SelectMany[T, U any](ctx context.Context, r rop.Result[T],
	bind func(ctx context.Context, in T) rop.Result[U]) rop.Result[U] {
	return solo.Bind(ctx, r, bind)
}

// SelectManyProject binds r to an intermediate result and projects the
// source value and the intermediate value into the final one.
//
// A failed r is returned without calling bind. A failed intermediate result
// propagates its errors, together with the successes of both steps. When
// both steps succeed, project is applied and the successes of both steps are
// kept, source first.
func SelectManyProject[T, U, V any](ctx context.Context, r rop.Result[T],
	bind func(ctx context.Context, in T) rop.Result[U],
	project func(ctx context.Context, in T, mid U) V) rop.Result[V] {

	if r.IsFailure() {
		return rop.FailFrom[T, V](r)
	}

	in := r.Value()
	mid := solo.Bind(ctx, r, bind)
	return solo.Map(ctx, mid, func(ctx context.Context, m U) V {
		return project(ctx, in, m)
	})
}
