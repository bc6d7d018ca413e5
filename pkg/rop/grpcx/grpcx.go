package grpcx

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/httpx"
)

var httpToGRPC = map[int]gcodes.Code{
	http.StatusBadRequest:          gcodes.InvalidArgument,
	http.StatusUnauthorized:        gcodes.Unauthenticated,
	http.StatusForbidden:           gcodes.PermissionDenied,
	http.StatusNotFound:            gcodes.NotFound,
	http.StatusRequestTimeout:      gcodes.Canceled,
	http.StatusConflict:            gcodes.AlreadyExists,
	http.StatusGone:                gcodes.NotFound,
	http.StatusPreconditionFailed:  gcodes.FailedPrecondition,
	http.StatusUnprocessableEntity: gcodes.InvalidArgument,
	http.StatusTooManyRequests:     gcodes.ResourceExhausted,
	499:                            gcodes.Canceled,
	http.StatusInternalServerError: gcodes.Internal,
	http.StatusNotImplemented:      gcodes.Unimplemented,
	http.StatusBadGateway:          gcodes.Unavailable,
	http.StatusServiceUnavailable:  gcodes.Unavailable,
	http.StatusGatewayTimeout:      gcodes.DeadlineExceeded,
}

// Code maps an HTTP status to the closest gRPC code.
func Code(httpStatus int) gcodes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	switch {
	case httpStatus < 400:
		return gcodes.OK
	case httpStatus < 500:
		return gcodes.FailedPrecondition
	}
	return gcodes.Internal
}

// Status converts an outcome into a gRPC status. A succeeded outcome gives
// an OK status. A failed one carries the message of its first error and one
// ErrorInfo detail per error.
func Status(cfg httpx.Config, o rop.Outcome) *gstatus.Status {
	if o.IsSuccess() {
		return gstatus.New(gcodes.OK, "")
	}
	cfg = cfg.Normalize()
	errs := o.Errors()

	base := gstatus.New(Code(cfg.Status(o)), errs[0].Message())

	details := make([]*errdetails.ErrorInfo, len(errs))
	for i, e := range errs {
		details[i] = &errdetails.ErrorInfo{
			Reason:   e.Kind(),
			Domain:   cfg.Namespace,
			Metadata: cfg.StringTags(e),
		}
	}

	withDetails := base
	for _, d := range details {
		next, err := withDetails.WithDetails(d)
		if err != nil {
			return base
		}
		withDetails = next
	}
	return withDetails
}

// Err is Status as an error; nil on success.
func Err(cfg httpx.Config, o rop.Outcome) error {
	return Status(cfg, o).Err()
}

// ErrorInfos pulls the ErrorInfo details out of a gRPC error.
func ErrorInfos(err error) []*errdetails.ErrorInfo {
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil
	}
	var out []*errdetails.ErrorInfo
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			out = append(out, info)
		}
	}
	return out
}

// UnaryServerInterceptor converts handler errors that are rop errors, or a
// join of them, into statuses built by Status. Other errors pass through.
func UnaryServerInterceptor(cfg httpx.Config) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var re rop.Error
		if !errors.As(err, &re) {
			return nil, err
		}
		return nil, Err(cfg, rop.FromError[rop.Unit](err))
	}
}
