/*
Package stream provides the durable change feed connecting Fabriq's services to their consumers.

Every effective write in the services layer produces one logical event; the
stream fans it out into one durable row per subscriber. Subscribers (the
reconciler and the GitOps processor) each drain their own queue at their own
pace with at-least-once delivery. The PostgreSQL implementation backs
production; the in-memory implementation backs tests and single-binary use.

# Architecture

	┌──────────────────── EVENT STREAM ────────────────────────┐
	│                                                            │
	│   services                                                 │
	│      │ Send / SendMany                                     │
	│      ▼                                                     │
	│  ┌────────────────────────────────────────────┐          │
	│  │              Fan-out                        │          │
	│  │  one row per (event id, consumer id)        │          │
	│  │  ON CONFLICT DO NOTHING                     │          │
	│  └─────────┬──────────────────┬───────────────┘          │
	│            │                  │                           │
	│  ┌─────────▼───────┐  ┌───────▼─────────┐                │
	│  │ queue:          │  │ queue:           │                │
	│  │  reconciler     │  │  gitops          │                │
	│  │  (FIFO by seq)  │  │  (FIFO by seq)   │                │
	│  └─────────┬───────┘  └───────┬─────────┘                │
	│            │ Receive          │ Receive                   │
	│            │ Delete (ack)     │ Delete (ack)              │
	│            ▼                  ▼                           │
	│       reconciler          gitops processor                │
	└────────────────────────────────────────────────────────┘

# Core Components

EventStream:
  - Send persists one copy of an event per subscriber
  - Receive returns a subscriber's queue, oldest first
  - Delete acknowledges one event for one subscriber
  - Len reports queue depth for monitoring

PostgresStream:
  - Rows live in the event_queue table
  - Composite primary key (id, consumer_id) with do-nothing conflicts
  - seq BIGSERIAL keeps receive order stable within a batch
  - Shares the pgxpool connection pool with pkg/storage

MemoryStream:
  - One FIFO slice per subscriber guarded by a mutex
  - Same dedupe and acknowledgement semantics as PostgreSQL
  - Events deep-copied in and out

# Delivery Contract

At-least-once per subscriber. An event stays visible to Receive until the
subscriber explicitly Deletes it, so a consumer that crashes between
processing and acknowledging sees the event again on restart. Consumers must
therefore process idempotently; the services' affected-count upsert gate
makes replayed writes silent.

Subscribers never block one another: a stuck consumer grows only its own
queue. Queue depth per consumer is exported as the fabriq_event_queue_depth
metric and is the operational signal for a wedged consumer.

Event ids derive from (operation id, model id), so re-sending the same
transition while its row exists is a no-op, while distinct models written
under one operation (a reconcile batch creating several assignments) each
keep their own row.

# Usage

Sending:

	event, err := types.NewEvent(host.ID, nil, host,
		types.EventTypeCreated, types.ModelTypeHost, operationID)
	if err != nil {
		return err
	}
	if err := eventStream.Send(ctx, event); err != nil {
		return err
	}

Consuming:

	events, err := eventStream.Receive(ctx, stream.ReconcilerConsumerID)
	if err != nil {
		return err
	}
	for _, event := range events {
		if err := process(ctx, event); err != nil {
			return err
		}
		if _, err := eventStream.Delete(ctx, event, stream.ReconcilerConsumerID); err != nil {
			return err
		}
	}

Wiring the PostgreSQL stream:

	eventStream := stream.NewPostgresStream(pool, stream.DefaultSubscribers())
	if err := eventStream.Migrate(ctx); err != nil {
		return err
	}

# Integration Points

This package integrates with:

  - pkg/services: every effective write emits through EventStream
  - pkg/reconciler: drains the "reconciler" queue
  - pkg/gitops: drains the "gitops" queue
  - pkg/metrics: Collector samples Len for queue depth gauges
  - pkg/storage: shares the pgxpool pool in postgres mode

# Design Patterns

Fan-out at Produce Time:
  - Fast, independent consumers; no shared cursor
  - Queue rows are cheap; control plane event rates are low
  - Deleting is per-subscriber, never global

Ack by Delete:
  - No in-flight state, no visibility timeout
  - Redelivery is the default until explicitly acknowledged
  - Crash between process and ack yields a replay, by contract

Deterministic Event Ids:
  - types.MakeEventID(operationID, modelID)
  - Replayed sends deduplicate against queued rows
  - Batch members stay distinct

# See Also

  - pkg/services for event production
  - pkg/reconciler and pkg/gitops for the consumers
  - pkg/metrics for queue depth monitoring
*/
package stream
