// Package grpcx converts results into gRPC statuses with
// google.rpc.ErrorInfo details, using the same Config as package httpx.
package grpcx
