package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/pkg/metrics"
)

// metricsInterceptor records request count and latency per method. It runs
// outside the auth interceptor so rejected requests are counted too.
func metricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		timer := metrics.NewTimer()

		resp, err := handler(ctx, req)

		timer.ObserveDurationVec(metrics.APIRequestDuration, info.FullMethod)
		metrics.APIRequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()

		return resp, err
	}
}
