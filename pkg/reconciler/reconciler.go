package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// FatalEventError reports an event the consumer can never process: an
// unknown model type or an envelope missing both snapshots. Redelivery
// cannot help, so the consumer loop stops instead of retrying.
type FatalEventError struct {
	Reason string
}

func (e *FatalEventError) Error() string {
	return e.Reason
}

// Reconciler keeps the assignment relation consistent with the deployments,
// hosts, targets, templates, and workloads it observes through the event
// queue. It reads through the store and writes assignments through the
// assignment service, so every change it makes emits events of its own
// tagged with the triggering operation id.
type Reconciler struct {
	store       storage.Store
	assignments *services.AssignmentService
	events      stream.EventStream
	consumerID  string
	logger      zerolog.Logger
	stopCh      chan struct{}
	done        chan struct{}
}

// New creates a reconciler consuming consumerID's queue.
func New(store storage.Store, assignments *services.AssignmentService, events stream.EventStream, consumerID string) *Reconciler {
	return &Reconciler{
		store:       store,
		assignments: assignments,
		events:      events,
		consumerID:  consumerID,
		logger:      log.WithConsumer(consumerID),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Process dispatches one event by model type. Config and assignment events
// are no-ops: config changes never alter assignments, and assignment events
// originate here. An unknown model type is a FatalEventError.
func (r *Reconciler) Process(ctx context.Context, event *types.Event) error {
	switch event.ModelType {
	case types.ModelTypeAssignment, types.ModelTypeConfig:
		return nil
	case types.ModelTypeDeployment:
		return r.processDeploymentEvent(ctx, event)
	case types.ModelTypeHost:
		return r.processHostEvent(ctx, event)
	case types.ModelTypeTarget:
		return r.processTargetEvent(ctx, event)
	case types.ModelTypeTemplate:
		return r.processTemplateEvent(ctx, event)
	case types.ModelTypeWorkload:
		return r.processWorkloadEvent(ctx, event)
	default:
		return &FatalEventError{Reason: fmt.Sprintf("event %s has unknown model type %q", event.ID, event.ModelType)}
	}
}

func (r *Reconciler) processDeploymentEvent(ctx context.Context, event *types.Event) error {
	var deployment types.Deployment
	if err := eventSnapshot(event, &deployment); err != nil {
		return err
	}

	desired := int(deployment.HostCount)
	if event.EventType == types.EventTypeDeleted {
		desired = 0
	}
	return r.reconcileDeployment(ctx, &deployment, desired, event.OperationID)
}

func (r *Reconciler) processHostEvent(ctx context.Context, event *types.Event) error {
	if event.SerializedPrevious == nil && event.SerializedCurrent == nil {
		return &FatalEventError{Reason: fmt.Sprintf("event %s carries no snapshots", event.ID)}
	}

	// A label change can move the host out of some targets and into
	// others, so the affected set spans the targets matching either
	// snapshot.
	var spanning []*types.Target
	seen := map[string]bool{}
	for _, snapshot := range [][]byte{event.SerializedPrevious, event.SerializedCurrent} {
		if snapshot == nil {
			continue
		}
		var host types.Host
		if err := json.Unmarshal(snapshot, &host); err != nil {
			return fmt.Errorf("decoding host snapshot: %w", err)
		}
		targets, err := r.store.GetTargetsMatchingHost(ctx, &host)
		if err != nil {
			return fmt.Errorf("getting targets matching host %s: %w", host.ID, err)
		}
		for _, target := range targets {
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			spanning = append(spanning, target)
		}
	}

	return r.reconcileTargets(ctx, spanning, event.OperationID)
}

func (r *Reconciler) processTargetEvent(ctx context.Context, event *types.Event) error {
	if event.SerializedPrevious == nil && event.SerializedCurrent == nil {
		return &FatalEventError{Reason: fmt.Sprintf("event %s carries no snapshots", event.ID)}
	}

	var spanning []*types.Target
	for _, snapshot := range [][]byte{event.SerializedPrevious, event.SerializedCurrent} {
		if snapshot == nil {
			continue
		}
		var target types.Target
		if err := json.Unmarshal(snapshot, &target); err != nil {
			return fmt.Errorf("decoding target snapshot: %w", err)
		}
		spanning = append(spanning, &target)
	}

	return r.reconcileTargets(ctx, spanning, event.OperationID)
}

func (r *Reconciler) processTemplateEvent(ctx context.Context, event *types.Event) error {
	var template types.Template
	if err := eventSnapshot(event, &template); err != nil {
		return err
	}

	// Affected deployments: those inheriting the template through their
	// workload without overriding it, plus those overriding with it
	// directly.
	var spanning []*types.Deployment
	seen := map[string]bool{}

	workloads, err := r.store.GetWorkloadsByTemplate(ctx, template.ID)
	if err != nil {
		return fmt.Errorf("getting workloads for template %s: %w", template.ID, err)
	}
	for _, workload := range workloads {
		deployments, err := r.store.GetDeploymentsByWorkload(ctx, workload.ID)
		if err != nil {
			return fmt.Errorf("getting deployments for workload %s: %w", workload.ID, err)
		}
		for _, deployment := range deployments {
			if deployment.TemplateID != "" || seen[deployment.ID] {
				continue
			}
			seen[deployment.ID] = true
			spanning = append(spanning, deployment)
		}
	}

	direct, err := r.store.GetDeploymentsByTemplate(ctx, template.ID)
	if err != nil {
		return fmt.Errorf("getting deployments for template %s: %w", template.ID, err)
	}
	for _, deployment := range direct {
		if seen[deployment.ID] {
			continue
		}
		seen[deployment.ID] = true
		spanning = append(spanning, deployment)
	}

	for _, deployment := range spanning {
		if err := r.reconcileDeployment(ctx, deployment, int(deployment.HostCount), event.OperationID); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) processWorkloadEvent(ctx context.Context, event *types.Event) error {
	var workload types.Workload
	if err := eventSnapshot(event, &workload); err != nil {
		return err
	}

	deployments, err := r.store.GetDeploymentsByWorkload(ctx, workload.ID)
	if err != nil {
		return fmt.Errorf("getting deployments for workload %s: %w", workload.ID, err)
	}
	for _, deployment := range deployments {
		if err := r.reconcileDeployment(ctx, deployment, int(deployment.HostCount), event.OperationID); err != nil {
			return err
		}
	}
	return nil
}

// reconcileTargets reconciles every deployment pointing at each of the
// given targets.
func (r *Reconciler) reconcileTargets(ctx context.Context, targets []*types.Target, operationID string) error {
	for _, target := range targets {
		deployments, err := r.store.GetDeploymentsByTarget(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("getting deployments for target %s: %w", target.ID, err)
		}
		for _, deployment := range deployments {
			if err := r.reconcileDeployment(ctx, deployment, int(deployment.HostCount), operationID); err != nil {
				return err
			}
		}
	}
	return nil
}

// reconcileDeployment diffs the deployment's assignments against the hosts
// matching its target and writes the changes through the assignment
// service. A vanished target matches no hosts, which drains the
// deployment's assignments rather than wedging the event.
func (r *Reconciler) reconcileDeployment(ctx context.Context, deployment *types.Deployment, desiredHostCount int, operationID string) error {
	var matching []*types.Host
	if desiredHostCount > 0 {
		target, err := r.store.GetTarget(ctx, deployment.TargetID)
		switch {
		case errors.Is(err, types.ErrNotFound):
		case err != nil:
			return fmt.Errorf("getting target %s: %w", deployment.TargetID, err)
		default:
			matching, err = r.store.GetHostsMatchingTarget(ctx, target)
			if err != nil {
				return fmt.Errorf("getting hosts matching target %s: %w", target.ID, err)
			}
		}
	}

	existing, err := r.store.GetAssignmentsByDeployment(ctx, deployment.ID)
	if err != nil {
		return fmt.Errorf("getting assignments for deployment %s: %w", deployment.ID, err)
	}

	create, del := computeAssignmentChanges(deployment, existing, matching, desiredHostCount)
	if len(create) == 0 && len(del) == 0 {
		return nil
	}

	if _, err := r.assignments.UpsertMany(ctx, create, operationID); err != nil {
		return fmt.Errorf("creating assignments for deployment %s: %w", deployment.ID, err)
	}
	if _, err := r.assignments.DeleteMany(ctx, del, operationID); err != nil {
		return fmt.Errorf("deleting assignments for deployment %s: %w", deployment.ID, err)
	}

	metrics.AssignmentsCreated.Add(float64(len(create)))
	metrics.AssignmentsDeleted.Add(float64(len(del)))

	r.logger.Debug().
		Str("deployment_id", deployment.ID).
		Int("created", len(create)).
		Int("deleted", len(del)).
		Str("operation_id", operationID).
		Msg("Deployment reconciled")

	return nil
}

// computeAssignmentChanges is the pure assignment diff. Given a
// deployment's existing assignments, the hosts currently matching its
// target, and the desired host count, it returns the assignments to create
// and to delete. Assignments whose host no longer matches are always
// deleted; a surplus beyond the desired count is trimmed from the front of
// the kept list; otherwise new assignments are allocated from the matching
// hosts not yet assigned, in order, as far as supply allows.
func computeAssignmentChanges(deployment *types.Deployment, existing []*types.Assignment, matchingHosts []*types.Host, desiredHostCount int) (create, del []*types.Assignment) {
	matching := map[string]bool{}
	for _, host := range matchingHosts {
		matching[host.ID] = true
	}

	var hostDeleted, kept []*types.Assignment
	for _, assignment := range existing {
		if matching[assignment.HostID] {
			kept = append(kept, assignment)
		} else {
			hostDeleted = append(hostDeleted, assignment)
		}
	}

	assigned := map[string]bool{}
	for _, assignment := range kept {
		assigned[assignment.HostID] = true
	}
	var available []*types.Host
	for _, host := range matchingHosts {
		if !assigned[host.ID] {
			available = append(available, host)
		}
	}

	del = hostDeleted
	if len(kept) > desiredHostCount {
		del = append(del, kept[:len(kept)-desiredHostCount]...)
	} else {
		createCount := min(len(available), desiredHostCount-len(kept))
		for _, host := range available[:createCount] {
			create = append(create, &types.Assignment{
				ID:           types.MakeAssignmentID(deployment.ID, host.ID),
				DeploymentID: deployment.ID,
				HostID:       host.ID,
			})
		}
	}
	return create, del
}

// eventSnapshot decodes the event's current snapshot, falling back to the
// previous one for deletions. An envelope with neither is fatal.
func eventSnapshot(event *types.Event, out any) error {
	data := event.SerializedCurrent
	if data == nil {
		data = event.SerializedPrevious
	}
	if data == nil {
		return &FatalEventError{Reason: fmt.Sprintf("event %s carries no snapshots", event.ID)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s snapshot: %w", event.ModelType, err)
	}
	return nil
}
