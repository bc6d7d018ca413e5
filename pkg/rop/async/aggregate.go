package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropx/pkg/rop"
)

// Combine awaits every source in order and combines them with rop.Combine.
// Sources that are futures are already running, so they proceed
// concurrently; Combine only collects them.
func Combine[T any](ctx context.Context, srcs ...Source[T]) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		return rop.Combine(awaitAll(ctx, srcs)...)
	})
}

// CombineParallel starts every op before awaiting any of them and waits for
// all of them, failed or not, before combining. A failing op does not
// cancel its siblings.
func CombineParallel[T any](ctx context.Context, ops ...func(ctx context.Context) rop.Result[T]) *Future[[]T] {
	results := make([]rop.Result[T], len(ops))
	var g errgroup.Group
	for i, op := range ops {
		g.Go(func() error {
			results[i] = rop.Guard(func() rop.Result[T] {
				return op(ctx)
			})
			return nil
		})
	}

	return Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		_ = g.Wait()
		return rop.Combine(results...)
	})
}

// Merge awaits every source in order and unions their reasons.
func Merge[T any](ctx context.Context, srcs ...Source[T]) *Future[rop.Unit] {
	return Go(ctx, func(ctx context.Context) rop.Result[rop.Unit] {
		results := awaitAll(ctx, srcs)
		outcomes := make([]rop.Outcome, len(results))
		for i, r := range results {
			outcomes[i] = r
		}
		return rop.Merge(outcomes...)
	})
}

func awaitAll[T any](ctx context.Context, srcs []Source[T]) []rop.Result[T] {
	results := make([]rop.Result[T], len(srcs))
	for i, src := range srcs {
		results[i] = src.Await(ctx)
	}
	return results
}
