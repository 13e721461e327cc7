/*
Package client provides a Go client for the Fabriq gRPC API.

The client wraps the typed gRPC stubs with connection management, per-call
timeouts, and bearer authentication. Every call stamps the configured token
onto the outgoing metadata as "Bearer <token>", matching what the server's
auth interceptor expects.

# Architecture

	┌──────────── APPLICATION / CLI ────────────┐
	│                                            │
	│  client.New("localhost:50051", token)      │
	│  client.UpsertHost(...)                    │
	│                                            │
	└───────────────────┬────────────────────────┘
	                    │
	┌───────────────────▼──── pkg/client ────────┐
	│                                            │
	│  convenience methods, 10s call timeout     │
	│        │                                   │
	│  bearer interceptor (authorization md)     │
	│        │                                   │
	│  typed stubs over one h2c connection       │
	└───────────────────┬────────────────────────┘
	                    │ gRPC (h2c)
	                    ▼
	            Fabriq API server

# Usage

	c, err := client.New("localhost:50051", os.Getenv("GITHUB_TOKEN"))
	if err != nil {
		return err
	}
	defer c.Close()

	operationID, err := c.UpsertHost(&proto.HostMessage{
		Id:     "azure-eastus2-1",
		Labels: []string{"region:eastus2", "cloud:azure"},
	})

	configs, err := c.QueryConfigs("deployment", deploymentID)

Mutations return the operation id the server generated, the same id carried
by every event the mutation produced.

# Integration Points

This package integrates with:

  - api/proto: the message and stub definitions
  - cmd/fabriq: the CLI drives every command through this client
  - pkg/api: the server counterpart of the bearer metadata contract

# See Also

  - pkg/api for the server side of this surface
  - api/proto/fabriq.proto for the wire definition
*/
package client
