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

// TargetService manages the label selectors deployments point at.
type TargetService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewTargetService creates a target service over the given store and stream.
func NewTargetService(store storage.Store, events stream.EventStream) *TargetService {
	return &TargetService{
		store:  store,
		events: events,
		logger: log.WithComponent("target-service"),
	}
}

// Upsert persists the target and emits a Created or Updated event when the
// write changed anything.
func (s *TargetService) Upsert(ctx context.Context, target *types.Target, operationID string) (string, error) {
	if target.ID == "" {
		return "", types.NewValidationError("target id is required")
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetTarget(ctx, target.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting target %s: %w", target.ID, err)
	}

	affected, err := s.store.UpsertTarget(ctx, target)
	if err != nil {
		return "", fmt.Errorf("upserting target %s: %w", target.ID, err)
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
	if err := emit(ctx, s.events, target.ID, previousSnapshot, target, eventType, types.ModelTypeTarget, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("target_id", target.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Target upserted")

	return operationID, nil
}

// Get returns the target with the given id.
func (s *TargetService) Get(ctx context.Context, id string) (*types.Target, error) {
	return s.store.GetTarget(ctx, id)
}

// GetMatchingHost returns the targets whose label sets are contained in the
// host's labels, i.e. the targets this host satisfies.
func (s *TargetService) GetMatchingHost(ctx context.Context, host *types.Host) ([]*types.Target, error) {
	return s.store.GetTargetsMatchingHost(ctx, host)
}

// List returns all targets in insertion order.
func (s *TargetService) List(ctx context.Context) ([]*types.Target, error) {
	return s.store.ListTargets(ctx)
}

// Delete removes the target and emits a Deleted event carrying the previous
// snapshot. Deleting an unknown id is a not-found error.
func (s *TargetService) Delete(ctx context.Context, id, operationID string) (string, error) {
	target, err := s.store.GetTarget(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting target %s: %w", id, err)
	}

	affected, err := s.store.DeleteTarget(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting target %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("target %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, target, nil, types.EventTypeDeleted, types.ModelTypeTarget, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("target_id", id).
		Str("operation_id", operationID).
		Msg("Target deleted")

	return operationID, nil
}
