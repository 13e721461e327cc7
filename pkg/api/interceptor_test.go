package api

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/pkg/metrics"
)

// TestMetricsInterceptorCountsRequests tests that requests are counted per
// method and status code
func TestMetricsInterceptorCountsRequests(t *testing.T) {
	interceptor := metricsInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/fabriq.Target/List"}

	okBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("/fabriq.Target/List", "OK"))
	deniedBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("/fabriq.Target/List", "PermissionDenied"))

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.PermissionDenied, "not a member of team acme:platform")
	})
	require.Error(t, err)

	okAfter := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("/fabriq.Target/List", "OK"))
	deniedAfter := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("/fabriq.Target/List", "PermissionDenied"))

	assert.Equal(t, okBefore+1, okAfter)
	assert.Equal(t, deniedBefore+1, deniedAfter)
}

// TestMetricsInterceptorPassesThroughResponse tests that the response and
// error from the handler are returned unchanged
func TestMetricsInterceptorPassesThroughResponse(t *testing.T) {
	interceptor := metricsInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/fabriq.Target/List"}

	handlerErr := errors.New("backend unavailable")
	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "payload", handlerErr
	})

	assert.Equal(t, "payload", resp)
	assert.Equal(t, handlerErr, err)
}
