package ropzap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zap.DebugLevel)
	return zap.New(obsCore), logs
}

func TestReasonMarshaler(t *testing.T) {
	t.Parallel()

	enc := zapcore.NewMapObjectEncoder()
	r := rop.NewError("not found").WithTag("Entity", "order").WithTag("Id", 7)
	require.NoError(t, ReasonMarshaler{Reason: r}.MarshalLogObject(enc))

	assert.Equal(t, "not found", enc.Fields["message"])
	assert.Equal(t, "error", enc.Fields["kind"])
	assert.Equal(t, map[string]any{"Entity": "order", "Id": 7}, enc.Fields["tags"])
}

func TestLog(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved()

	Log(logger, "loaded", rop.Ok(1, rop.NewSuccess("cache hit")))
	Log(logger, "rejected", rop.FailWith[int](rop.NewError("a"), rop.NewError("b")))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	ok := entries[0].ContextMap()
	assert.Equal(t, true, ok["success"])
	require.Len(t, ok["successes"], 1)
	assert.NotContains(t, ok, "errors")

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	failed := entries[1].ContextMap()
	assert.Equal(t, false, failed["success"])
	errs, isSlice := failed["errors"].([]any)
	require.True(t, isSlice)
	require.Len(t, errs, 2)
	assert.Equal(t, "b", errs[1].(map[string]any)["message"])
}

func TestCallbacks(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved()
	ctx := context.Background()

	r := rop.FailWith[int](rop.NewError("too small").WithTag("Min", 3))
	solo.TapBoth(ctx, r, nil, LogFailure(logger, "validation"))
	solo.TapError(ctx, r, LogError(logger, "first"))
	solo.TapBoth(ctx, rop.Ok(1), nil, LogFailure(logger, "never"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("validation").FilterFieldKey("errors").Len())

	first := logs.FilterMessage("first").All()
	require.Len(t, first, 1)
	e := first[0].ContextMap()["error"].(map[string]any)
	assert.Equal(t, "too small", e["message"])
	assert.Equal(t, map[string]any{"Min": 3}, e["tags"])
}
