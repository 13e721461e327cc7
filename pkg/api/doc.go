/*
Package api implements Fabriq's gRPC facade and the HTTP side channel,
served together on one h2c listener.

Eight gRPC services cover the entity surface: Assignment, Config, Deployment,
Host, Target, Template, Workload, and Health. Handlers convert protobuf
messages to the domain records, delegate to pkg/services, and map domain
errors onto gRPC status codes. Mutations return the operation id so callers
can correlate a request with the events it produced.

# Architecture

	┌────────────────────── CLIENT ──────────────────────┐
	│  fabriq CLI / pkg/client (h2c, bearer token)        │
	└─────────────────────────┬──────────────────────────┘
	                          │ one listener
	┌─────────────────────────▼──────────────────────────┐
	│              h2c handler (pkg/api)                  │
	│                                                     │
	│   HTTP/2 + application/grpc          everything     │
	│        │                             else           │
	│        ▼                               │            │
	│  metrics interceptor                   ▼            │
	│        │                        HTTP mux            │
	│  auth interceptor               /health /ready      │
	│        │                        /live /metrics      │
	│        ▼                        /event_handler      │
	│  entity handlers ──► pkg/services                   │
	└─────────────────────────────────────────────────────┘

# Authentication

Every RPC requires an authorization header of the form "Bearer <token>".
The auth interceptor rejects missing headers with Unauthenticated and
malformed ones with InvalidArgument, then stashes the token on the context
for handlers that need it.

Config mutations additionally resolve the config's owning model to a
workload and ask the GitHub membership oracle whether the caller's token
belongs to the workload's team; non-members get PermissionDenied.
Template-owned configs are not team-owned, so token presence suffices for
them.

# Error Mapping

Domain errors map onto status codes at the handler boundary:

  - types.ConflictError: AlreadyExists
  - types.ValidationError: InvalidArgument
  - types.ErrNotFound: NotFound
  - anything else: Internal

Errors that already carry a gRPC status pass through unchanged.

# HTTP Side Channel

Non-gRPC traffic on the shared listener falls through to a plain mux:

  - /health, /ready, /live: the probes from pkg/metrics; /ready reports
    503 until the database, stream, and api components register healthy
  - /metrics: Prometheus exposition
  - /event_handler: repository webhook receiver

# Usage

	svc := services.New(store, eventStream)
	server := api.NewServer(svc, github.NewOracle())

	go func() {
		if err := server.Start(":50051"); err != nil {
			log.Logger().Fatal().Err(err).Msg("API server failed")
		}
	}()

	// on shutdown
	err := server.Stop(ctx)

# Integration Points

This package integrates with:

  - pkg/services: handlers delegate every operation to the service bundle
  - pkg/github: the team membership oracle gating config mutations
  - pkg/metrics: request counters, latency histograms, and the probe
    handlers on the side channel
  - pkg/types: the domain records and error kinds
  - api/proto: message and service definitions

# See Also

  - pkg/client for the Go client over this surface
  - api/proto/fabriq.proto for the wire definition
*/
package api
