/*
Package reconciler maintains Fabriq's assignment relation in response to events.

The reconciler is the single consumer of the "reconciler" queue. For every
event it receives it recomputes which deployments are affected, diffs each
deployment's assignments against the hosts currently matching its target,
and writes the changes back through the assignment service. It never holds
derived state: every reconciliation is a pure function of what the store
returns at read time, so replaying an event after a crash converges to the
same result.

# Architecture

	┌──────────────────── RECONCILER ─────────────────────────┐
	│                                                           │
	│  event queue ("reconciler")                               │
	│      │ Receive                                            │
	│      ▼                                                    │
	│  ┌──────────────────────────────────────┐               │
	│  │ Process: switch on model type         │               │
	│  │   Deployment ─► that deployment       │               │
	│  │   Host    ─► targets matching either  │               │
	│  │              snapshot ─► deployments  │               │
	│  │   Target  ─► snapshots ─► deployments │               │
	│  │   Template ─► inheriting + overriding │               │
	│  │   Workload ─► its deployments         │               │
	│  │   Config/Assignment ─► no-op          │               │
	│  └──────────────┬───────────────────────┘               │
	│                 ▼                                        │
	│  computeAssignmentChanges (pure diff)                    │
	│                 │                                        │
	│                 ▼                                        │
	│  AssignmentService.UpsertMany / DeleteMany               │
	│                 │                                        │
	│                 ▼                                        │
	│  Delete event (ack) ── on success only                   │
	└───────────────────────────────────────────────────────────┘

# The Assignment Diff

computeAssignmentChanges takes the deployment, its existing assignments,
the hosts matching its target, and the desired host count:

 1. Assignments whose host no longer matches the target are deleted.
 2. If more assignments survive than desired, the surplus is trimmed from
    the front of the list (insertion order), keeping the newest.
 3. Otherwise new assignments are allocated from the unassigned matching
    hosts, in order, up to the desired count or the supply, whichever runs
    out first.

A deleted deployment reconciles with a desired count of zero, draining its
assignments. A host count of AllHosts exceeds any supply, so every matching
host is assigned. A deployment whose target no longer exists matches no
hosts and drains the same way.

# Failure Handling

Transient errors (store or stream I/O) leave the event unacknowledged: the
loop logs, skips the ack, and the event is redelivered on the next receive.
The affected-count gate in the services keeps replays from duplicating
assignments or events.

A FatalEventError (unknown model type, envelope without snapshots) stops
the consumer loop. Redelivery cannot fix a malformed event; the queue holds
it, the fabriq_event_queue_depth metric grows, and an operator takes over.

# Usage

	rec := reconciler.New(store, svc.Assignments, eventStream, stream.ReconcilerConsumerID)
	rec.Start()
	defer rec.Stop()

Stop waits for the in-flight event to finish and commit its ack.

# Integration Points

This package integrates with:

  - pkg/stream: receives from and acknowledges the reconciler queue
  - pkg/storage: reads deployments, targets, hosts, and assignments
  - pkg/services: writes assignments through AssignmentService so the
    changes emit events of their own under the triggering operation id
  - pkg/metrics: reconcile duration, processed-event counts, assignment
    churn counters

# See Also

  - pkg/stream for delivery semantics
  - pkg/services for the event emission contract
*/
package reconciler
