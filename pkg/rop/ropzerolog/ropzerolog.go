package ropzerolog

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ib-77/ropx/pkg/rop"
)

// Dict renders a reason for Event.Dict.
func Dict(r rop.Reason) *zerolog.Event {
	d := zerolog.Dict().
		Str("message", r.Message()).
		Str("kind", r.Kind())

	tags := r.Tags()
	if len(tags) == 0 {
		return d
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := zerolog.Dict()
	for _, k := range keys {
		t = t.Interface(k, tags[k])
	}
	return d.Dict("tags", t)
}

func array[R rop.Reason](reasons []R) *zerolog.Array {
	arr := zerolog.Arr()
	for _, r := range reasons {
		arr = arr.Dict(Dict(r))
	}
	return arr
}

// Log adds the state and reasons of o to e.
func Log(e *zerolog.Event, o rop.Outcome) *zerolog.Event {
	e = e.Bool("success", o.IsSuccess())
	if s := o.Successes(); len(s) > 0 {
		e = e.Array("successes", array(s))
	}
	if errs := o.Errors(); len(errs) > 0 {
		e = e.Array("errors", array(errs))
	}
	return e
}

// LogFailure returns a failure callback for solo.TapBoth and lite.TapBoth.
func LogFailure(logger zerolog.Logger, msg string) func(ctx context.Context, errs []rop.Error) {
	return func(_ context.Context, errs []rop.Error) {
		logger.Warn().Array("errors", array(errs)).Msg(msg)
	}
}
