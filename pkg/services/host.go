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

// HostService manages the hosts a deployment can be assigned to.
type HostService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewHostService creates a host service over the given store and stream.
func NewHostService(store storage.Store, events stream.EventStream) *HostService {
	return &HostService{
		store:  store,
		events: events,
		logger: log.WithComponent("host-service"),
	}
}

// Upsert persists the host and emits a Created or Updated event when the
// write changed anything. Returns the operation id correlating the request
// with its events, generating one when the caller passed none.
func (s *HostService) Upsert(ctx context.Context, host *types.Host, operationID string) (string, error) {
	if host.ID == "" {
		return "", types.NewValidationError("host id is required")
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetHost(ctx, host.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting host %s: %w", host.ID, err)
	}

	affected, err := s.store.UpsertHost(ctx, host)
	if err != nil {
		return "", fmt.Errorf("upserting host %s: %w", host.ID, err)
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
	if err := emit(ctx, s.events, host.ID, previousSnapshot, host, eventType, types.ModelTypeHost, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("host_id", host.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Host upserted")

	return operationID, nil
}

// Get returns the host with the given id.
func (s *HostService) Get(ctx context.Context, id string) (*types.Host, error) {
	return s.store.GetHost(ctx, id)
}

// GetMatchingTarget returns the hosts whose label sets contain every label
// of the target.
func (s *HostService) GetMatchingTarget(ctx context.Context, target *types.Target) ([]*types.Host, error) {
	return s.store.GetHostsMatchingTarget(ctx, target)
}

// List returns all hosts in insertion order.
func (s *HostService) List(ctx context.Context) ([]*types.Host, error) {
	return s.store.ListHosts(ctx)
}

// Delete removes the host and emits a Deleted event carrying the previous
// snapshot. Deleting an unknown id is a not-found error.
func (s *HostService) Delete(ctx context.Context, id, operationID string) (string, error) {
	host, err := s.store.GetHost(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting host %s: %w", id, err)
	}

	affected, err := s.store.DeleteHost(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting host %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("host %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, host, nil, types.EventTypeDeleted, types.ModelTypeHost, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("host_id", id).
		Str("operation_id", operationID).
		Msg("Host deleted")

	return operationID, nil
}
