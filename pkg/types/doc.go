/*
Package types defines the core data structures used throughout Fabriq.

This package contains the entity records of the control plane's relational
model: hosts, targets, templates, workloads, deployments, assignments, and
configs, plus the event envelope that records their transitions. Every other
package builds on these types for persistence, event transport, and the RPC
surface.

# Core Types

Substrate and selection:
  - Host: a label-bearing execution substrate node
  - Target: a label query over hosts; a host matches when it carries every
    label of the target (Target.MatchesHost)

Deployables:
  - Template: a reference into an external git repository holding manifests
  - Workload: a named, team-owned deployable unit referencing a template
  - Deployment: a sized instance of a workload at a target, with an optional
    template override and a host count (AllHosts means every matching host)

Derived state:
  - Assignment: a committed binding of a deployment to a host, maintained by
    the reconciler rather than written directly by clients
  - Config: a key/value override owned by a template, workload, or
    deployment; ConfigValueType selects plain-string or key/value parsing

Transitions:
  - Event: one durable record of one state transition, tagged with ModelType
    and EventType and carrying JSON snapshots of the record before and after
    the write

# Derived Identifiers

Ids derive from natural keys, so the same record always maps to the same id:

	team id:       org ":" team                    (MakeTeamID)
	workload id:   team_id ":" name                (MakeWorkloadID)
	deployment id: workload_id ":" name            (MakeDeploymentID)
	assignment id: deployment_id "-" host_id       (MakeAssignmentID)
	owning model:  kind "/" model_id               (MakeOwningModel)
	config id:     owning_model "|" key            (MakeConfigID)
	event id:      operation_id "-" model_id       (MakeEventID)

The Split functions invert the derivations and return a ValidationError for
ids that do not parse. Host, target, and template ids are chosen by callers.

# Events

NewEvent builds the envelope for one transition. At least one snapshot is
always present: Created carries current, Deleted carries previous, Updated
carries both. The event id derives from (operation id, model id), so
rebuilding the same transition yields the same id and the stream can drop
replays. Operation ids are UUIDv4 strings correlating one request with every
event it produced; EnsureOperationID generates one when the caller passed
none.

# Errors

Failures surface as typed errors so callers can map them to status codes:

  - ErrNotFound: a get or delete of an id that does not exist
  - ValidationError: malformed input or a dangling cross-reference
  - ConflictError: a duplicate creation caught during validation

# Usage

Deriving ids and building a record:

	workloadID := types.MakeWorkloadID(types.MakeTeamID("fabriq-cloud", "platform"), "cribbage")

	deployment := &types.Deployment{
		ID:         types.MakeDeploymentID(workloadID, "prod"),
		Name:       "prod",
		WorkloadID: workloadID,
		TargetID:   "eastus2",
		HostCount:  types.AllHosts,
	}

Reading a key/value config:

	pairs, err := cfg.KeyValuePairs()
	if err != nil {
		return err
	}

# Integration Points

This package integrates with:

  - pkg/storage: persists every record to PostgreSQL or memory
  - pkg/services: validates records and emits their events
  - pkg/stream: transports Event rows through per-consumer queues
  - pkg/reconciler: compares targets against hosts to maintain assignments
  - pkg/api: converts to and from Protocol Buffer messages
  - pkg/gitops: deserializes event snapshots to render manifests

# See Also

  - pkg/services for validation rules and event emission
  - pkg/stream for queue semantics built on the event id
*/
package types
