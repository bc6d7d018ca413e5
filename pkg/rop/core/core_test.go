package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/async"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 3))
	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(ctx, 5), 3))
	assert.Equal(t, 3, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 3))

	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, false), true))
	assert.True(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, true), false))
}

func TestLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.NotNil(t, Logger(ctx))

	obsCore, logs := observer.New(zap.DebugLevel)
	logger := zap.New(obsCore)
	ctx = WithLogger(ctx, logger)
	assert.Same(t, logger, Logger(ctx))

	out := Lines(ctx, ToChanManyResults(ctx, []int{1}),
		func(ctx context.Context, in rop.Result[int]) <-chan rop.Result[int] {
			return Stage(ctx, in, func(ctx context.Context, in rop.Result[int]) rop.Result[int] { return in }, nil)
		}, CancellationHandlers[int, int]{}, nil, 1)
	for range out {
	}

	assert.Equal(t, 1, logs.FilterMessage("starting lines").Len())
	stopped := logs.FilterMessage("line stopped").All()
	require.Len(t, stopped, 1)
	assert.Equal(t, int64(1), stopped[0].ContextMap()["processed"])
}

func TestToChan(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, []int{7}, FromChanMany(ctx, ToChan(ctx, 7)))
	assert.Equal(t, []int{1, 2, 3}, FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3})))
	assert.Equal(t, 1, FromChanFirstOrDefault(ctx, ToChanMany(ctx, []int{1, 2}), -1))

	empty := make(chan int)
	close(empty)
	assert.Equal(t, -1, FromChanFirstOrDefault(ctx, empty, -1))

	results := FromChanMany(ctx, ToChanManyResults(ctx, []string{"a", "b"}))
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Value())
	assert.Equal(t, "b", results[1].Value())
}

func TestFromChan_ContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	never := make(chan int)
	assert.Equal(t, 9, FromChanFirstOrDefault(ctx, never, 9))
	assert.Empty(t, FromChanMany(ctx, never))
}

func TestToChanHandlers(t *testing.T) {
	t.Parallel()

	t.Run("start fail", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var notSent []int
		ch := ToChanManyResultsWithHandlers(ctx, ToChanHandlers[int]{
			OnStartFail: func(ctx context.Context, input []int) { notSent = input },
		}, []int{1, 2})
		for range ch {
			t.Fatalf("nothing should be sent")
		}
		assert.Equal(t, []int{1, 2}, notSent)
	})

	t.Run("break", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var sent []int
		rest := make(chan []int, 1)
		ch := ToChanManyResultsWithHandlers(ctx, ToChanHandlers[int]{
			OnSuccess: func(ctx context.Context, input int) { sent = append(sent, input) },
			OnBreak:   func(ctx context.Context, r []int) { rest <- r },
		}, []int{1, 2, 3})

		first := <-ch
		assert.Equal(t, 1, first.Value())
		cancel()

		// nobody receives, so the feeder can only see the canceled context
		left := <-rest
		for range ch {
		}
		assert.Equal(t, []int{1}, sent)
		assert.Equal(t, []int{2, 3}, left)
	})
}

func TestCanceledFrom(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("shutdown"))

	ok := rop.Ok(1, rop.NewSuccess("loaded"))
	canceled := CanceledFrom[int, string](ctx, ok)
	require.True(t, async.IsCanceled(canceled))
	assert.Equal(t, "shutdown", rop.GetString(canceled.FirstError(), async.CauseTag, ""))
	require.Len(t, canceled.Successes(), 1)
	assert.Equal(t, "loaded", canceled.Successes()[0].Message())

	failed := CanceledFrom[int, string](ctx, rop.Fail[int]("bad input"))
	assert.False(t, async.IsCanceled(failed))
	assert.Equal(t, "bad input", failed.FirstError().Message())
}

func TestCancelRemaining_ProcessOption(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan rop.Result[int], 2)
	in <- rop.Ok(1)
	in <- rop.Ok(2)
	close(in)

	out := make(chan rop.Result[int], 4)
	CancelRemainingResults(WithProcessOptions(ctx, false), in, out)
	assert.Empty(t, out)

	CancelRemainingResults(ctx, in, out)
	close(out)
	n := 0
	for r := range out {
		assert.True(t, async.IsCanceled(r))
		n++
	}
	assert.Equal(t, 2, n)
}

func TestStage(t *testing.T) {
	t.Parallel()

	t.Run("delivers", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		out := Stage(ctx, rop.Ok(2), func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			return rop.Ok(in.Value() * 2)
		}, nil)
		r, ok := <-out
		require.True(t, ok)
		assert.Equal(t, 4, r.Value())
		_, ok = <-out
		assert.False(t, ok)
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		out := Stage(context.Background(), rop.Ok(2), func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			panic("stage exploded")
		}, nil)
		r := <-out
		require.True(t, r.IsFailure())
		assert.Equal(t, "stage exploded", r.FirstError().Message())
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var dropped rop.Result[int]
		out := Stage(ctx, rop.Ok(3), func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			t.Errorf("step must not run")
			return in
		}, func(ctx context.Context, in rop.Result[int]) { dropped = in })

		_, ok := <-out
		assert.False(t, ok)
		assert.Equal(t, 3, dropped.Value())
	})

	t.Run("slow step canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		out := Stage(ctx, rop.Ok(3), func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			time.Sleep(50 * time.Millisecond)
			return in
		}, nil)
		_, ok := <-out
		assert.False(t, ok)
		// let the step goroutine finish before goleak checks
		time.Sleep(80 * time.Millisecond)
	})
}

func TestFinalize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan rop.Result[int], 2)
	in <- rop.Ok(4)
	in <- rop.Fail[int]("bad")
	close(in)

	out := Finalize(ctx, in, FinallyHandlers[int, string]{
		OnSuccess: func(ctx context.Context, r int) string { return "ok" },
		OnFailure: func(ctx context.Context, errs []rop.Error) string { return errs[0].Message() },
	}, nil)
	assert.Equal(t, []string{"ok", "bad"}, FromChanMany(ctx, out))
}

func TestLines_ExplicitCountWins(t *testing.T) {
	t.Parallel()

	obsCore, logs := observer.New(zap.DebugLevel)
	ctx := WithLogger(WithWorkerOptions(context.Background(), 4), zap.New(obsCore))

	engine := func(ctx context.Context, in rop.Result[int]) <-chan rop.Result[int] {
		return Stage(ctx, in, func(ctx context.Context, in rop.Result[int]) rop.Result[int] { return in }, nil)
	}

	for range Lines(ctx, ToChanManyResults(ctx, []int{1, 2}), engine, CancellationHandlers[int, int]{}, nil, 2) {
	}
	for range Lines(ctx, ToChanManyResults(ctx, []int{1, 2}), engine, CancellationHandlers[int, int]{}, nil, 0) {
	}

	started := logs.FilterMessage("starting lines").All()
	require.Len(t, started, 2)
	assert.Equal(t, int64(2), started[0].ContextMap()["lines"])
	assert.Equal(t, int64(4), started[1].ContextMap()["lines"])
}
