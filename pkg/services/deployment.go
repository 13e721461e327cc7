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

// DeploymentService manages the sized instances of workloads at targets.
type DeploymentService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewDeploymentService creates a deployment service over the given store
// and stream.
func NewDeploymentService(store storage.Store, events stream.EventStream) *DeploymentService {
	return &DeploymentService{
		store:  store,
		events: events,
		logger: log.WithComponent("deployment-service"),
	}
}

// Upsert validates the deployment, checks that its workload, target, and
// optional template override exist, persists it, and emits a Created or
// Updated event when the write changed anything. The id derives from
// workload id and name; an empty id is filled in, a non-empty one must
// match the derivation.
func (s *DeploymentService) Upsert(ctx context.Context, deployment *types.Deployment, operationID string) (string, error) {
	if err := s.validate(ctx, deployment); err != nil {
		return "", err
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetDeployment(ctx, deployment.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting deployment %s: %w", deployment.ID, err)
	}

	affected, err := s.store.UpsertDeployment(ctx, deployment)
	if err != nil {
		return "", fmt.Errorf("upserting deployment %s: %w", deployment.ID, err)
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
	if err := emit(ctx, s.events, deployment.ID, previousSnapshot, deployment, eventType, types.ModelTypeDeployment, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("deployment_id", deployment.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Deployment upserted")

	return operationID, nil
}

func (s *DeploymentService) validate(ctx context.Context, deployment *types.Deployment) error {
	if deployment.Name == "" {
		return types.NewValidationError("deployment name is required")
	}
	if deployment.WorkloadID == "" {
		return types.NewValidationError("deployment %s: workload id is required", deployment.Name)
	}
	if deployment.HostCount < 0 {
		return types.NewValidationError("deployment %s: host count must not be negative", deployment.Name)
	}

	derived := types.MakeDeploymentID(deployment.WorkloadID, deployment.Name)
	if deployment.ID == "" {
		deployment.ID = derived
	} else if deployment.ID != derived {
		return types.NewValidationError("deployment id %q does not derive from workload %q and name %q",
			deployment.ID, deployment.WorkloadID, deployment.Name)
	}

	if _, err := s.store.GetWorkload(ctx, deployment.WorkloadID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.NewValidationError("deployment %s: workload %q does not exist", deployment.ID, deployment.WorkloadID)
		}
		return fmt.Errorf("getting workload %s: %w", deployment.WorkloadID, err)
	}
	if _, err := s.store.GetTarget(ctx, deployment.TargetID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.NewValidationError("deployment %s: target %q does not exist", deployment.ID, deployment.TargetID)
		}
		return fmt.Errorf("getting target %s: %w", deployment.TargetID, err)
	}
	if deployment.TemplateID != "" {
		if _, err := s.store.GetTemplate(ctx, deployment.TemplateID); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return types.NewValidationError("deployment %s: template %q does not exist", deployment.ID, deployment.TemplateID)
			}
			return fmt.Errorf("getting template %s: %w", deployment.TemplateID, err)
		}
	}

	return nil
}

// Get returns the deployment with the given id.
func (s *DeploymentService) Get(ctx context.Context, id string) (*types.Deployment, error) {
	return s.store.GetDeployment(ctx, id)
}

// GetByTarget returns the deployments pointing at the target.
func (s *DeploymentService) GetByTarget(ctx context.Context, targetID string) ([]*types.Deployment, error) {
	return s.store.GetDeploymentsByTarget(ctx, targetID)
}

// GetByTemplate returns the deployments that directly override with the
// template.
func (s *DeploymentService) GetByTemplate(ctx context.Context, templateID string) ([]*types.Deployment, error) {
	return s.store.GetDeploymentsByTemplate(ctx, templateID)
}

// GetByWorkload returns the deployments of the workload.
func (s *DeploymentService) GetByWorkload(ctx context.Context, workloadID string) ([]*types.Deployment, error) {
	return s.store.GetDeploymentsByWorkload(ctx, workloadID)
}

// List returns all deployments in insertion order.
func (s *DeploymentService) List(ctx context.Context) ([]*types.Deployment, error) {
	return s.store.ListDeployments(ctx)
}

// Delete removes the deployment and emits a Deleted event carrying the
// previous snapshot; the reconciler drains its assignments in response.
// Deleting an unknown id is a not-found error.
func (s *DeploymentService) Delete(ctx context.Context, id, operationID string) (string, error) {
	deployment, err := s.store.GetDeployment(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting deployment %s: %w", id, err)
	}

	affected, err := s.store.DeleteDeployment(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting deployment %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("deployment %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, deployment, nil, types.EventTypeDeleted, types.ModelTypeDeployment, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("deployment_id", id).
		Str("operation_id", operationID).
		Msg("Deployment deleted")

	return operationID, nil
}
