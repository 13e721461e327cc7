package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// AssignmentService manages the committed bindings between deployments and
// hosts. The reconciler is its main caller and writes through UpsertMany
// and DeleteMany so one reconciliation produces one event per changed
// assignment, all under the triggering operation id.
type AssignmentService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewAssignmentService creates an assignment service over the given store
// and stream.
func NewAssignmentService(store storage.Store, events stream.EventStream) *AssignmentService {
	return &AssignmentService{
		store:  store,
		events: events,
		logger: log.WithComponent("assignment-service"),
	}
}

func validateAssignment(assignment *types.Assignment) error {
	if assignment.DeploymentID == "" {
		return types.NewValidationError("assignment deployment id is required")
	}
	if assignment.HostID == "" {
		return types.NewValidationError("assignment host id is required")
	}

	derived := types.MakeAssignmentID(assignment.DeploymentID, assignment.HostID)
	if assignment.ID == "" {
		assignment.ID = derived
	} else if assignment.ID != derived {
		return types.NewValidationError("assignment id %q does not derive from deployment %q and host %q",
			assignment.ID, assignment.DeploymentID, assignment.HostID)
	}
	return nil
}

// Upsert persists the assignment and emits a Created or Updated event when
// the write changed anything.
func (s *AssignmentService) Upsert(ctx context.Context, assignment *types.Assignment, operationID string) (string, error) {
	operationID = types.EnsureOperationID(operationID)

	event, err := s.upsertOne(ctx, assignment, operationID)
	if err != nil {
		return "", err
	}
	if event == nil {
		return operationID, nil
	}

	if err := s.events.Send(ctx, event); err != nil {
		return "", fmt.Errorf("sending %s %s event: %w", event.ModelType, event.EventType, err)
	}
	metrics.EventsSent.WithLabelValues(string(event.ModelType), string(event.EventType)).Inc()

	return operationID, nil
}

// UpsertMany persists a batch of assignments and fans out one event per
// assignment that actually changed, all carrying the same operation id.
func (s *AssignmentService) UpsertMany(ctx context.Context, assignments []*types.Assignment, operationID string) (string, error) {
	operationID = types.EnsureOperationID(operationID)

	events := make([]*types.Event, 0, len(assignments))
	for _, assignment := range assignments {
		event, err := s.upsertOne(ctx, assignment, operationID)
		if err != nil {
			return "", err
		}
		if event != nil {
			events = append(events, event)
		}
	}

	if len(events) == 0 {
		return operationID, nil
	}
	if err := s.events.SendMany(ctx, events); err != nil {
		return "", fmt.Errorf("sending assignment events: %w", err)
	}
	for _, event := range events {
		metrics.EventsSent.WithLabelValues(string(event.ModelType), string(event.EventType)).Inc()
	}

	s.logger.Debug().
		Int("count", len(events)).
		Str("operation_id", operationID).
		Msg("Assignments upserted")

	return operationID, nil
}

// upsertOne writes one assignment and returns its event, or nil when the
// record was already present unchanged.
func (s *AssignmentService) upsertOne(ctx context.Context, assignment *types.Assignment, operationID string) (*types.Event, error) {
	if err := validateAssignment(assignment); err != nil {
		return nil, err
	}

	previous, err := s.store.GetAssignment(ctx, assignment.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("getting assignment %s: %w", assignment.ID, err)
	}

	affected, err := s.store.UpsertAssignment(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("upserting assignment %s: %w", assignment.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	eventType := types.EventTypeCreated
	var previousSnapshot any
	if previous != nil {
		eventType = types.EventTypeUpdated
		previousSnapshot = previous
	}
	return types.NewEvent(assignment.ID, previousSnapshot, assignment, eventType, types.ModelTypeAssignment, operationID)
}

// Get returns the assignment with the given id.
func (s *AssignmentService) Get(ctx context.Context, id string) (*types.Assignment, error) {
	return s.store.GetAssignment(ctx, id)
}

// GetByDeployment returns the assignments of the deployment in insertion
// order.
func (s *AssignmentService) GetByDeployment(ctx context.Context, deploymentID string) ([]*types.Assignment, error) {
	return s.store.GetAssignmentsByDeployment(ctx, deploymentID)
}

// List returns all assignments in insertion order.
func (s *AssignmentService) List(ctx context.Context) ([]*types.Assignment, error) {
	return s.store.ListAssignments(ctx)
}

// Delete removes the assignment and emits a Deleted event carrying the
// previous snapshot. Deleting an unknown id is a not-found error.
func (s *AssignmentService) Delete(ctx context.Context, id, operationID string) (string, error) {
	assignment, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting assignment %s: %w", id, err)
	}

	affected, err := s.store.DeleteAssignment(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting assignment %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("assignment %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, assignment, nil, types.EventTypeDeleted, types.ModelTypeAssignment, operationID); err != nil {
		return "", err
	}

	return operationID, nil
}

// DeleteMany removes a batch of assignments by id and fans out one Deleted
// event per assignment that was actually present, all carrying the same
// operation id. The passed records double as the previous snapshots, which
// spares a read per assignment since callers already hold them. Absent ids
// are skipped; replaying a deletion is a no-op.
func (s *AssignmentService) DeleteMany(ctx context.Context, assignments []*types.Assignment, operationID string) (string, error) {
	operationID = types.EnsureOperationID(operationID)

	events := make([]*types.Event, 0, len(assignments))
	for _, assignment := range assignments {
		if err := validateAssignment(assignment); err != nil {
			return "", err
		}

		affected, err := s.store.DeleteAssignment(ctx, assignment.ID)
		if err != nil {
			return "", fmt.Errorf("deleting assignment %s: %w", assignment.ID, err)
		}
		if affected == 0 {
			continue
		}

		event, err := types.NewEvent(assignment.ID, assignment, nil, types.EventTypeDeleted, types.ModelTypeAssignment, operationID)
		if err != nil {
			return "", err
		}
		events = append(events, event)
	}

	if len(events) == 0 {
		return operationID, nil
	}
	if err := s.events.SendMany(ctx, events); err != nil {
		return "", fmt.Errorf("sending assignment events: %w", err)
	}
	for _, event := range events {
		metrics.EventsSent.WithLabelValues(string(event.ModelType), string(event.EventType)).Inc()
	}

	s.logger.Debug().
		Int("count", len(events)).
		Str("operation_id", operationID).
		Msg("Assignments deleted")

	return operationID, nil
}
