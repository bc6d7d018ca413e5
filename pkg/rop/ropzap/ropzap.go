package ropzap

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropx/pkg/rop"
)

// ReasonMarshaler logs a reason as an object with its message, kind and tags.
type ReasonMarshaler struct {
	Reason rop.Reason
}

func (m ReasonMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", m.Reason.Message())
	enc.AddString("kind", m.Reason.Kind())
	if tags := m.Reason.Tags(); len(tags) > 0 {
		return enc.AddObject("tags", tagsMarshaler(tags))
	}
	return nil
}

type tagsMarshaler rop.Tags

func (t tagsMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := enc.AddReflected(k, t[k]); err != nil {
			return err
		}
	}
	return nil
}

type reasonsMarshaler[R rop.Reason] []R

func (rs reasonsMarshaler[R]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, r := range rs {
		if err := enc.AppendObject(ReasonMarshaler{Reason: r}); err != nil {
			return err
		}
	}
	return nil
}

func Reason(key string, r rop.Reason) zap.Field {
	return zap.Object(key, ReasonMarshaler{Reason: r})
}

func Errors(errs []rop.Error) zap.Field {
	return zap.Array("errors", reasonsMarshaler[rop.Error](errs))
}

func Successes(successes []rop.Success) zap.Field {
	return zap.Array("successes", reasonsMarshaler[rop.Success](successes))
}

// Fields describes an outcome: its state and every reason it holds.
func Fields(o rop.Outcome) []zap.Field {
	fields := []zap.Field{zap.Bool("success", o.IsSuccess())}
	if s := o.Successes(); len(s) > 0 {
		fields = append(fields, Successes(s))
	}
	if e := o.Errors(); len(e) > 0 {
		fields = append(fields, Errors(e))
	}
	return fields
}

// Log writes o at info level when it succeeded and at warn level otherwise.
func Log(logger *zap.Logger, msg string, o rop.Outcome) {
	if o.IsSuccess() {
		logger.Info(msg, Fields(o)...)
		return
	}
	logger.Warn(msg, Fields(o)...)
}

// LogFailure returns a failure callback for solo.TapBoth and lite.TapBoth.
func LogFailure(logger *zap.Logger, msg string) func(ctx context.Context, errs []rop.Error) {
	return func(_ context.Context, errs []rop.Error) {
		logger.Warn(msg, Errors(errs))
	}
}

// LogError is LogFailure for solo.TapError, which passes the first error only.
func LogError(logger *zap.Logger, msg string) func(ctx context.Context, err rop.Error) {
	return func(_ context.Context, err rop.Error) {
		logger.Warn(msg, Reason("error", err))
	}
}
