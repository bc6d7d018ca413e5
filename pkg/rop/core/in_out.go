package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/ropx/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				Logger(ctx).Debug("input feed stopped", zap.Error(ctx.Err()))
				return
			}
		}
	}()

	return in
}

// ToChanFromArgsResults feeds every value as a succeeded result. When ctx
// ends first, OnStartFail or OnBreak receives the values never sent.
func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Ok(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				Logger(ctx).Debug("input feed stopped",
					zap.Int("remaining", len(values)-i), zap.Error(ctx.Err()))
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults(ctx, handlers, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults(ctx, ToChanHandlers[T]{}, values...)
}

// FromChanFirstOrDefault returns the first value of out, or defaultV when out
// closes empty or ctx ends first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany drains out until it closes or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
