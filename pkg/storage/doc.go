/*
Package storage provides PostgreSQL-backed state persistence for Fabriq's control plane data.

The storage package implements the Store interface over PostgreSQL for
production and over process memory for tests and single-binary development.
It persists the seven control plane relations: assignments, configs,
deployments, hosts, targets, templates, and workloads. Records are plain
rows keyed by their derived ids; upserts report whether they changed
anything so callers can decide whether a change event is warranted.

# Architecture

Fabriq uses PostgreSQL for durable, shared state with a drop-in memory
implementation behind the same interface:

	┌──────────────────── STORE INTERFACE ─────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │              Store                          │          │
	│  │  - Upsert*  (returns rows affected)         │          │
	│  │  - Get*     (ErrNotFound when missing)      │          │
	│  │  - GetXByY  (relation queries)              │          │
	│  │  - List*    (insertion order)               │          │
	│  │  - Delete*  (idempotent)                    │          │
	│  └─────────┬───────────────────────┬──────────┘          │
	│            │                       │                      │
	│  ┌─────────▼──────────┐  ┌─────────▼──────────┐          │
	│  │  PostgresStore     │  │  MemoryStore        │          │
	│  │  - pgxpool.Pool    │  │  - map[id]record    │          │
	│  │  - ON CONFLICT     │  │  - order slices     │          │
	│  │    upserts         │  │  - sync.RWMutex     │          │
	│  │  - seq ordering    │  │  - deep copies      │          │
	│  └─────────┬──────────┘  └────────────────────┘          │
	│            │                                              │
	│  ┌─────────▼──────────────────────────────────┐          │
	│  │              Table Structure                │          │
	│  │  ┌────────────────────────────┐             │          │
	│  │  │ assignments  (id PK)       │             │          │
	│  │  │ configs      (id PK)       │             │          │
	│  │  │ deployments  (id PK)       │             │          │
	│  │  │ hosts        (id PK)       │             │          │
	│  │  │ targets      (id PK)       │             │          │
	│  │  │ templates    (id PK)       │             │          │
	│  │  │ workloads    (id PK)       │             │          │
	│  │  └────────────────────────────┘             │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

PostgresStore:
  - Implements Store over a pgxpool connection pool
  - One pool shared with the event stream (see pkg/stream)
  - Migrate() creates tables and indexes idempotently
  - Labels stored as native text[] columns

MemoryStore:
  - Implements Store over in-process maps
  - Insertion order tracked explicitly per relation
  - Records deep-copied on the way in and out
  - Used by tests and by the api server when no DATABASE_URL is set

Tables:
  - assignments: deployment-to-host bindings maintained by the reconciler
  - configs: key/value overrides owned by templates, workloads, deployments
  - deployments: sized instances of workloads at targets
  - hosts: label-bearing substrate nodes
  - targets: label selectors over hosts
  - templates: git references to manifest sources
  - workloads: named, team-owned deployable units

Every table carries a seq BIGSERIAL column alongside the TEXT primary key.
seq is not part of the logical model; listings order by it so that results
are stable in insertion order, which the reconciler relies on when scaling
a deployment down.

# Upsert Semantics

Upserts gate the change event pipeline, so their affected count matters:

  - Insert of a new record: 1
  - Update that changes any non-id column: 1
  - Write of an identical record: 0

PostgresStore implements the gate with INSERT ... ON CONFLICT (id) DO
UPDATE ... WHERE (existing columns) IS DISTINCT FROM (EXCLUDED columns).
MemoryStore compares records field by field. Callers emit a Created or
Updated event only when the count is 1; replayed writes stay silent.

Gets return types.ErrNotFound for missing ids. Deletes are idempotent; they
return the number of rows removed (0 when the record was already gone) so
services can skip the Deleted event if a concurrent delete won the race.
Callers that need the prior record for the event snapshot fetch it first.

# Usage

Creating a Postgres store:

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	store := storage.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	defer store.Close()

Creating a memory store:

	store := storage.NewMemoryStore()

Host operations:

	host := &types.Host{
		ID:     "azure-eastus2-1",
		Labels: []string{"location:eastus2", "cloud:azure"},
	}
	affected, err := store.UpsertHost(ctx, host)
	if affected == 1 {
		// record was created or changed; emit an event
	}

	host, err = store.GetHost(ctx, "azure-eastus2-1")
	hosts, err := store.ListHosts(ctx)
	err = store.DeleteHost(ctx, "azure-eastus2-1")

Deployment relation queries:

	byTarget, err := store.GetDeploymentsByTarget(ctx, "eastus2")
	byTemplate, err := store.GetDeploymentsByTemplate(ctx, "external-service")
	byWorkload, err := store.GetDeploymentsByWorkload(ctx, "fabriq-cloud:fabriq:cribbage")

Label containment queries:

	target, err := store.GetTarget(ctx, "eastus2")
	matching, err := store.GetHostsMatchingTarget(ctx, target)

Config queries by owner:

	owner, _ := types.MakeOwningModel(types.OwnerWorkload, workloadID)
	configs, err := store.GetConfigsByOwner(ctx, owner)

# Integration Points

This package integrates with:

  - pkg/services: Every entity service persists through Store
  - pkg/reconciler: Reads hosts and assignments, writes assignments
  - pkg/stream: Shares the pgxpool connection pool in postgres mode
  - pkg/types: All record definitions and ErrNotFound

# Design Patterns

Affected-Count Upserts:
  - Create and Update share one method
  - Count of 0 means the write was a no-op
  - Keeps event emission out of the storage layer

Idempotent Deletes:
  - Delete returns no error if the record doesn't exist
  - Affected count of 0 signals the record was already gone
  - Safe to call multiple times; simplifies replay handling

Label Containment Queries:
  - GetHostsMatchingTarget returns hosts whose labels cover the target's
  - GetTargetsMatchingHost is the symmetric query
  - Postgres uses native array containment (@> and <@), memory uses
    types.Target.MatchesHost; both agree on the subset rule

Insertion-Order Listings:
  - Postgres orders by the seq column, memory by explicit order slices
  - Updating a record never moves it
  - Scale-down keeps the earliest assignments deterministically

Error Wrapping:
  - All errors wrapped with context: fmt.Errorf("upserting host %s: %w", ...)
  - pgx.ErrNoRows translated to types.ErrNotFound at the boundary
  - Callers never see driver-level sentinel errors

# Performance Characteristics

Read Operations:
  - Get by id: primary key lookup, typically < 1ms
  - Relation queries: index scan on the filter column
  - List all: sequential scan ordered by seq, fine at control plane scale
  - Control planes hold hundreds of records, not millions

Write Operations:
  - Upsert: single INSERT ... ON CONFLICT statement
  - No-op writes still round-trip to the database but touch no rows
  - Delete: single statement, no existence check

Connection Pool:
  - pgxpool defaults: pool sized to max(4, NumCPU)
  - Shared between storage and stream; one pool per process
  - Ping on startup fails fast on bad credentials

MemoryStore:
  - All operations O(n) at worst over small n
  - RWMutex allows concurrent reads
  - Deep copies keep callers from aliasing stored state

# Troubleshooting

Common Issues:

Connection Refused:
  - Symptom: Connect returns "pinging postgres" error at startup
  - Cause: Database unreachable or DATABASE_URL wrong
  - Check: URL host/port, network policy, postgres is accepting connections

Missing Tables:
  - Symptom: "relation does not exist" errors
  - Cause: Migrate was not run against this database
  - Solution: The api server runs Migrate on startup; run it once per database

Upsert Always Returns 0:
  - Symptom: Writes succeed but no events are ever emitted
  - Cause: Caller re-sending an identical record
  - Check: Compare the record against GetX output; the gate is working

# See Also

  - pkg/services for the event-emitting layer above Store
  - pkg/stream for the event queue sharing the pool
  - pkg/types for record definitions
  - pgx documentation: https://github.com/jackc/pgx
*/
package storage
