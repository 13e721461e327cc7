/*
Package services implements Fabriq's write path: one service per entity that
validates, persists, and emits events.

Every service follows the same contract. Upsert validates the record and its
cross-references, persists it, and emits a Created or Updated event only when
the write changed anything, so repeated identical upserts are silent. Delete
requires the record to exist and emits a Deleted event carrying the previous
snapshot. Every mutation returns the operation id correlating the request
with the events it produced, generating a fresh UUIDv4 when the caller
passed none.

# Architecture

	┌─────────────────── SERVICES LAYER ───────────────────┐
	│                                                        │
	│  gRPC handlers / reconciler / CLI                      │
	│      │                                                 │
	│      ▼                                                 │
	│  ┌──────────────────────────────────────┐            │
	│  │ validate ─ cross-refs ─ upsert        │            │
	│  │     │                     │            │            │
	│  │     │        affected > 0 │            │            │
	│  │     │                     ▼            │            │
	│  │     │          build event (previous,  │            │
	│  │     │          current) and Send       │            │
	│  └─────┼─────────────────────┼───────────┘            │
	│        ▼                     ▼                         │
	│   pkg/storage            pkg/stream                    │
	└────────────────────────────────────────────────────────┘

# Core Components

Per-entity services:
  - HostService, TargetService: label-bearing substrate and selectors,
    including the symmetric matching queries
  - TemplateService: manifest source references
  - WorkloadService: team-owned deployables; validates the team id format
    and that the referenced template exists
  - DeploymentService: sized workload instances; validates workload,
    target, and template override references
  - AssignmentService: deployment-to-host bindings; UpsertMany and
    DeleteMany fan out one event per changed record under one operation id
  - ConfigService: key/value overrides plus the layered Query

Services: a bundle of all seven over one store and one stream, built with
New for the RPC layer and the entrypoints.

# Event Emission

The affected-count returned by the store gates emission: 1 means the row
was inserted or changed, 0 means an identical record was already present
and no event is sent. Updates carry the prior snapshot, fetched before the
write. Deletes carry only the prior snapshot. Event ids derive from
(operation id, model id), so replaying a mutation cannot duplicate queue
rows.

# Config Layering

ConfigService.Query resolves the effective set for a scope:

  - template: the template's direct configs
  - workload: template configs overlaid with workload configs
  - deployment: effective-template configs overlaid with workload configs
    overlaid with deployment configs, where the effective template is the
    deployment's override when set, else the workload's

Later layers win by config key.

# Usage

	svc := services.New(store, eventStream)

	operationID, err := svc.Hosts.Upsert(ctx, &types.Host{
		ID:     "azure-eastus2-1",
		Labels: []string{"region:eastus2", "cloud:azure"},
	}, "")
	if err != nil {
		return err
	}

	configs, err := svc.Configs.Query(ctx, types.OwnerDeployment, deploymentID)

# Integration Points

This package integrates with:

  - pkg/storage: all reads and writes go through the Store port
  - pkg/stream: effective writes emit through EventStream
  - pkg/api: gRPC handlers call the bundle
  - pkg/reconciler: writes assignments through AssignmentService
  - pkg/metrics: counts events sent per model and event type

# See Also

  - pkg/types for the entity records and id derivations
  - pkg/reconciler for the event consumer that maintains assignments
*/
package services
