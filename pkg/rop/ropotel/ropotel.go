package ropotel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/ropx/pkg/rop"
)

const (
	AttrSuccess   = attribute.Key("rop.success")
	AttrErrors    = attribute.Key("rop.errors")
	AttrSuccesses = attribute.Key("rop.successes")
	AttrKind      = attribute.Key("rop.kind")
	EventSuccess  = "rop.success"
)

// RecordResult records o on span: counts as attributes, one event per
// success reason, one recorded error per error reason, and the span status.
func RecordResult(span trace.Span, o rop.Outcome) {
	successes := o.Successes()
	errs := o.Errors()

	span.SetAttributes(
		AttrSuccess.Bool(o.IsSuccess()),
		AttrSuccesses.Int(len(successes)),
		AttrErrors.Int(len(errs)),
	)

	for _, s := range successes {
		span.AddEvent(EventSuccess, trace.WithAttributes(
			attribute.String("message", s.Message()),
			AttrKind.String(s.Kind()),
		))
	}

	if len(errs) == 0 {
		span.SetStatus(codes.Ok, "")
		return
	}
	for _, e := range errs {
		span.RecordError(e, trace.WithAttributes(AttrKind.String(e.Kind())))
	}
	span.SetStatus(codes.Error, errs[0].Message())
}

// Traced runs op inside a new span and records its result on it.
func Traced[T any](ctx context.Context, tracer trace.Tracer, name string,
	op func(ctx context.Context) rop.Result[T]) rop.Result[T] {

	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	r := rop.Guard(func() rop.Result[T] {
		return op(ctx)
	})
	RecordResult(span, r)
	return r
}
