package grpcx

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/httpx"
)

var testConfig = httpx.Config{Namespace: "orders", IncludeTags: []string{"Field"}}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := map[int]gcodes.Code{
		http.StatusOK:                  gcodes.OK,
		http.StatusBadRequest:          gcodes.InvalidArgument,
		http.StatusNotFound:            gcodes.NotFound,
		http.StatusConflict:            gcodes.AlreadyExists,
		http.StatusTeapot:              gcodes.FailedPrecondition,
		http.StatusServiceUnavailable:  gcodes.Unavailable,
		http.StatusGatewayTimeout:      gcodes.DeadlineExceeded,
		http.StatusInsufficientStorage: gcodes.Internal,
	}
	for in, want := range tests {
		assert.Equal(t, want, Code(in), "status %d", in)
	}
}

func TestStatus_Success(t *testing.T) {
	t.Parallel()

	st := Status(testConfig, rop.Ok("done"))
	assert.Equal(t, gcodes.OK, st.Code())
	assert.NoError(t, Err(testConfig, rop.OkUnit()))
}

func TestStatus_Failure(t *testing.T) {
	t.Parallel()

	r := rop.FailWith[int](
		rop.NewError("order not found").WithTag(httpx.DefaultStatusTag, 404).WithTag(rop.KindTag, "not_found"),
		rop.NewError("field missing").WithTag("Field", "id"),
	)

	st := Status(testConfig, r)
	assert.Equal(t, gcodes.NotFound, st.Code())
	assert.Equal(t, "order not found", st.Message())

	infos := ErrorInfos(st.Err())
	require.Len(t, infos, 2)
	assert.Equal(t, "not_found", infos[0].GetReason())
	assert.Equal(t, "orders", infos[0].GetDomain())
	assert.Empty(t, infos[0].GetMetadata())
	assert.Equal(t, "error", infos[1].GetReason())
	assert.Equal(t, map[string]string{"Field": "id"}, infos[1].GetMetadata())
}

func TestStatus_DefaultCode(t *testing.T) {
	t.Parallel()

	err := Err(testConfig, rop.Fail[int]("bad input"))
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, gcodes.InvalidArgument, st.Code())
}

func TestErrorInfos_PlainError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ErrorInfos(errors.New("plain")))
	assert.Nil(t, ErrorInfos(gstatus.Error(gcodes.Internal, "no details")))
}

func TestUnaryServerInterceptor(t *testing.T) {
	t.Parallel()

	intercept := UnaryServerInterceptor(testConfig)
	info := &grpc.UnaryServerInfo{FullMethod: "/orders.v1.Orders/Get"}
	ctx := context.Background()

	t.Run("passes responses", func(t *testing.T) {
		t.Parallel()

		resp, err := intercept(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
			return "resp", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "resp", resp)
	})

	t.Run("converts rop errors", func(t *testing.T) {
		t.Parallel()

		_, err := intercept(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, rop.NewError("forbidden").WithTag(httpx.DefaultStatusTag, http.StatusForbidden)
		})
		st, ok := gstatus.FromError(err)
		require.True(t, ok)
		assert.Equal(t, gcodes.PermissionDenied, st.Code())
		assert.Equal(t, "forbidden", st.Message())
		assert.Len(t, ErrorInfos(err), 1)
	})

	t.Run("converts joined errors", func(t *testing.T) {
		t.Parallel()

		_, err := intercept(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, rop.FailWith[int](rop.NewError("a"), rop.NewError("b")).Err()
		})
		assert.Len(t, ErrorInfos(err), 2)
	})

	t.Run("leaves other errors", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("disk full")
		_, err := intercept(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, plain
		})
		assert.Same(t, plain, err)
	})
}
