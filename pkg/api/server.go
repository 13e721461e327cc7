package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/github"
	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/services"
)

// Server serves the gRPC façade and the plain-HTTP side channel on a single
// listener. Requests arriving as HTTP/2 with the gRPC content type are
// dispatched to the gRPC server; everything else to the HTTP mux.
type Server struct {
	grpc   *grpc.Server
	http   *http.Server
	logger zerolog.Logger
}

// NewServer wires the per-entity gRPC services over the domain services.
// The oracle authorizes config mutations by team membership.
func NewServer(svc *services.Services, oracle github.TeamOracle) *Server {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		metricsInterceptor(),
		authInterceptor(),
	))

	proto.RegisterAssignmentServer(grpcServer, newAssignmentServer(svc.Assignments))
	proto.RegisterConfigServer(grpcServer, newConfigServer(svc.Configs, svc.Deployments, svc.Workloads, oracle))
	proto.RegisterDeploymentServer(grpcServer, newDeploymentServer(svc.Deployments))
	proto.RegisterHostServer(grpcServer, newHostServer(svc.Hosts))
	proto.RegisterTargetServer(grpcServer, newTargetServer(svc.Targets))
	proto.RegisterTemplateServer(grpcServer, newTemplateServer(svc.Templates))
	proto.RegisterWorkloadServer(grpcServer, newWorkloadServer(svc.Workloads))
	proto.RegisterHealthServer(grpcServer, newHealthServer())

	return &Server{
		grpc:   grpcServer,
		logger: log.WithComponent("api-server"),
	}
}

// Handler returns the combined gRPC/HTTP handler. h2c upgrades let gRPC
// clients speak HTTP/2 without TLS on the shared listener.
func (s *Server) Handler() http.Handler {
	mux := newHTTPMux()

	combined := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc") {
			s.grpc.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	return h2c.NewHandler(combined, &http2.Server{})
}

// Start serves on addr until Stop is called. It blocks.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("API server listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving api: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("API server stopping")

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
	}
	s.grpc.GracefulStop()
	return nil
}
