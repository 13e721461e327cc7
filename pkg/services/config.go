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

// ConfigService manages the key/value overrides attached to templates,
// workloads, and deployments, and resolves the layered effective set.
type ConfigService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewConfigService creates a config service over the given store and
// stream.
func NewConfigService(store storage.Store, events stream.EventStream) *ConfigService {
	return &ConfigService{
		store:  store,
		events: events,
		logger: log.WithComponent("config-service"),
	}
}

// Upsert persists the config and emits a Created or Updated event when the
// write changed anything. The id derives from owning model and key; an
// empty id is filled in, a non-empty one must match the derivation.
func (s *ConfigService) Upsert(ctx context.Context, config *types.Config, operationID string) (string, error) {
	if err := validateConfig(config); err != nil {
		return "", err
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetConfig(ctx, config.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting config %s: %w", config.ID, err)
	}

	affected, err := s.store.UpsertConfig(ctx, config)
	if err != nil {
		return "", fmt.Errorf("upserting config %s: %w", config.ID, err)
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
	if err := emit(ctx, s.events, config.ID, previousSnapshot, config, eventType, types.ModelTypeConfig, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("config_id", config.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Config upserted")

	return operationID, nil
}

func validateConfig(config *types.Config) error {
	if config.Key == "" {
		return types.NewValidationError("config key is required")
	}
	if _, _, err := types.SplitOwningModel(config.OwningModel); err != nil {
		return err
	}
	switch config.ValueType {
	case types.ConfigValueTypeString, types.ConfigValueTypeKeyValue:
	default:
		return types.NewValidationError("config %s: unknown value type %d", config.Key, config.ValueType)
	}

	derived := types.MakeConfigID(config.OwningModel, config.Key)
	if config.ID == "" {
		config.ID = derived
	} else if config.ID != derived {
		return types.NewValidationError("config id %q does not derive from owner %q and key %q",
			config.ID, config.OwningModel, config.Key)
	}
	return nil
}

// Get returns the config with the given id.
func (s *ConfigService) Get(ctx context.Context, id string) (*types.Config, error) {
	return s.store.GetConfig(ctx, id)
}

// GetByOwner returns the configs attached directly to one owning model.
func (s *ConfigService) GetByOwner(ctx context.Context, owningModel string) ([]*types.Config, error) {
	return s.store.GetConfigsByOwner(ctx, owningModel)
}

// List returns all configs in insertion order.
func (s *ConfigService) List(ctx context.Context) ([]*types.Config, error) {
	return s.store.ListConfigs(ctx)
}

// Query resolves the effective config set for one scope. Template scope
// returns the template's direct configs. Workload scope overlays the
// workload's configs over its template's. Deployment scope overlays
// deployment configs over workload configs over the effective template's,
// where the effective template is the deployment's override when set, else
// the workload's. Later layers win by key.
func (s *ConfigService) Query(ctx context.Context, ownerKind, modelID string) ([]*types.Config, error) {
	switch ownerKind {
	case types.OwnerTemplate:
		return s.getByTemplateID(ctx, modelID)
	case types.OwnerWorkload:
		workload, err := s.store.GetWorkload(ctx, modelID)
		if err != nil {
			return nil, fmt.Errorf("getting workload %s: %w", modelID, err)
		}
		return s.getByWorkload(ctx, workload)
	case types.OwnerDeployment:
		deployment, err := s.store.GetDeployment(ctx, modelID)
		if err != nil {
			return nil, fmt.Errorf("getting deployment %s: %w", modelID, err)
		}
		return s.getByDeployment(ctx, deployment)
	default:
		return nil, types.NewValidationError("unknown owning model kind %q", ownerKind)
	}
}

func (s *ConfigService) getByTemplateID(ctx context.Context, templateID string) ([]*types.Config, error) {
	owner, err := types.MakeOwningModel(types.OwnerTemplate, templateID)
	if err != nil {
		return nil, err
	}
	return s.store.GetConfigsByOwner(ctx, owner)
}

func (s *ConfigService) getByWorkload(ctx context.Context, workload *types.Workload) ([]*types.Config, error) {
	templateConfigs, err := s.getByTemplateID(ctx, workload.TemplateID)
	if err != nil {
		return nil, err
	}

	owner, err := types.MakeOwningModel(types.OwnerWorkload, workload.ID)
	if err != nil {
		return nil, err
	}
	workloadConfigs, err := s.store.GetConfigsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return overlay(templateConfigs, workloadConfigs), nil
}

func (s *ConfigService) getByDeployment(ctx context.Context, deployment *types.Deployment) ([]*types.Config, error) {
	workload, err := s.store.GetWorkload(ctx, deployment.WorkloadID)
	if err != nil {
		return nil, fmt.Errorf("getting workload %s: %w", deployment.WorkloadID, err)
	}

	templateID := deployment.TemplateID
	if templateID == "" {
		templateID = workload.TemplateID
	}
	templateConfigs, err := s.getByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	workloadOwner, err := types.MakeOwningModel(types.OwnerWorkload, workload.ID)
	if err != nil {
		return nil, err
	}
	workloadConfigs, err := s.store.GetConfigsByOwner(ctx, workloadOwner)
	if err != nil {
		return nil, err
	}

	deploymentOwner, err := types.MakeOwningModel(types.OwnerDeployment, deployment.ID)
	if err != nil {
		return nil, err
	}
	deploymentConfigs, err := s.store.GetConfigsByOwner(ctx, deploymentOwner)
	if err != nil {
		return nil, err
	}

	return overlay(templateConfigs, workloadConfigs, deploymentConfigs), nil
}

// overlay merges config layers into one set keyed by config key. Later
// layers replace earlier entries in place, so the output order is the
// first-appearance order of each key across the layers.
func overlay(layers ...[]*types.Config) []*types.Config {
	merged := []*types.Config{}
	position := map[string]int{}

	for _, layer := range layers {
		for _, config := range layer {
			if i, seen := position[config.Key]; seen {
				merged[i] = config
				continue
			}
			position[config.Key] = len(merged)
			merged = append(merged, config)
		}
	}
	return merged
}

// Delete removes the config and emits a Deleted event carrying the
// previous snapshot. Deleting an unknown id is a not-found error.
func (s *ConfigService) Delete(ctx context.Context, id, operationID string) (string, error) {
	config, err := s.store.GetConfig(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting config %s: %w", id, err)
	}

	affected, err := s.store.DeleteConfig(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting config %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("config %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, config, nil, types.EventTypeDeleted, types.ModelTypeConfig, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("config_id", id).
		Str("operation_id", operationID).
		Msg("Config deleted")

	return operationID, nil
}
