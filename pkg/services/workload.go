package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// WorkloadService manages the team-owned deployable units.
type WorkloadService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewWorkloadService creates a workload service over the given store and
// stream.
func NewWorkloadService(store storage.Store, events stream.EventStream) *WorkloadService {
	return &WorkloadService{
		store:  store,
		events: events,
		logger: log.WithComponent("workload-service"),
	}
}

// Upsert validates the workload, checks that its template exists, persists
// it, and emits a Created or Updated event when the write changed anything.
// The id derives from team id and name; an empty id is filled in, a non-empty
// one must match the derivation.
func (s *WorkloadService) Upsert(ctx context.Context, workload *types.Workload, operationID string) (string, error) {
	if err := s.validate(ctx, workload); err != nil {
		return "", err
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetWorkload(ctx, workload.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting workload %s: %w", workload.ID, err)
	}

	affected, err := s.store.UpsertWorkload(ctx, workload)
	if err != nil {
		return "", fmt.Errorf("upserting workload %s: %w", workload.ID, err)
	}
	if affected == 0 {
		return operationID, nil
	}

	eventType := types.EventTypeCreated
	var previousSnapshot any
	if previous != nil {
		eventType = types.EventTypeUpdated
		previousSnapshot = previous
	}
	if err := emit(ctx, s.events, workload.ID, previousSnapshot, workload, eventType, types.ModelTypeWorkload, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("workload_id", workload.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Workload upserted")

	return operationID, nil
}

func (s *WorkloadService) validate(ctx context.Context, workload *types.Workload) error {
	if workload.Name == "" {
		return types.NewValidationError("workload name is required")
	}
	if _, _, err := types.SplitTeamID(workload.TeamID); err != nil {
		return err
	}

	derived := types.MakeWorkloadID(workload.TeamID, workload.Name)
	if workload.ID == "" {
		workload.ID = derived
	} else if workload.ID != derived {
		return types.NewValidationError("workload id %q does not derive from team %q and name %q",
			workload.ID, workload.TeamID, workload.Name)
	}

	if workload.TemplateID == "" {
		return types.NewValidationError("workload %s: template id is required", workload.ID)
	}
	if _, err := s.store.GetTemplate(ctx, workload.TemplateID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.NewValidationError("workload %s: template %q does not exist", workload.ID, workload.TemplateID)
		}
		return fmt.Errorf("getting template %s: %w", workload.TemplateID, err)
	}

	return nil
}

// Get returns the workload with the given id.
func (s *WorkloadService) Get(ctx context.Context, id string) (*types.Workload, error) {
	return s.store.GetWorkload(ctx, id)
}

// GetByTemplate returns the workloads that reference the template.
func (s *WorkloadService) GetByTemplate(ctx context.Context, templateID string) ([]*types.Workload, error) {
	return s.store.GetWorkloadsByTemplate(ctx, templateID)
}

// List returns all workloads in insertion order.
func (s *WorkloadService) List(ctx context.Context) ([]*types.Workload, error) {
	return s.store.ListWorkloads(ctx)
}

// Delete removes the workload and emits a Deleted event carrying the
// previous snapshot. Deleting an unknown id is a not-found error.
func (s *WorkloadService) Delete(ctx context.Context, id, operationID string) (string, error) {
	workload, err := s.store.GetWorkload(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting workload %s: %w", id, err)
	}

	affected, err := s.store.DeleteWorkload(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting workload %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("workload %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, workload, nil, types.EventTypeDeleted, types.ModelTypeWorkload, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("workload_id", id).
		Str("operation_id", operationID).
		Msg("Workload deleted")

	return operationID, nil
}
