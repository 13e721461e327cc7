package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/metrics"
)

type healthServer struct {
	proto.UnimplementedHealthServer
}

func newHealthServer() *healthServer {
	return &healthServer{}
}

func (s *healthServer) Health(ctx context.Context, _ *proto.HealthRequest) (*proto.HealthResponse, error) {
	return &proto.HealthResponse{Ok: true}, nil
}

// newHTTPMux builds the plain-HTTP side channel served on the same listener
// as gRPC: health and readiness probes, Prometheus exposition, and the
// webhook receiver.
func newHTTPMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())

	// Webhook receiver placeholder; repository push events land here.
	mux.HandleFunc("/event_handler", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	return mux
}
