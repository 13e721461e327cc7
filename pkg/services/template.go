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

// TemplateService manages references to externally versioned manifest
// sources.
type TemplateService struct {
	store  storage.Store
	events stream.EventStream
	logger zerolog.Logger
}

// NewTemplateService creates a template service over the given store and
// stream.
func NewTemplateService(store storage.Store, events stream.EventStream) *TemplateService {
	return &TemplateService{
		store:  store,
		events: events,
		logger: log.WithComponent("template-service"),
	}
}

// Upsert persists the template and emits a Created or Updated event when
// the write changed anything.
func (s *TemplateService) Upsert(ctx context.Context, template *types.Template, operationID string) (string, error) {
	if template.ID == "" {
		return "", types.NewValidationError("template id is required")
	}
	if template.Repository == "" {
		return "", types.NewValidationError("template %s: repository is required", template.ID)
	}
	if template.GitRef == "" {
		return "", types.NewValidationError("template %s: git ref is required", template.ID)
	}
	operationID = types.EnsureOperationID(operationID)

	previous, err := s.store.GetTemplate(ctx, template.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", fmt.Errorf("getting template %s: %w", template.ID, err)
	}

	affected, err := s.store.UpsertTemplate(ctx, template)
	if err != nil {
		return "", fmt.Errorf("upserting template %s: %w", template.ID, err)
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
	if err := emit(ctx, s.events, template.ID, previousSnapshot, template, eventType, types.ModelTypeTemplate, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("template_id", template.ID).
		Str("operation_id", operationID).
		Str("event_type", string(eventType)).
		Msg("Template upserted")

	return operationID, nil
}

// Get returns the template with the given id.
func (s *TemplateService) Get(ctx context.Context, id string) (*types.Template, error) {
	return s.store.GetTemplate(ctx, id)
}

// List returns all templates in insertion order.
func (s *TemplateService) List(ctx context.Context) ([]*types.Template, error) {
	return s.store.ListTemplates(ctx)
}

// Delete removes the template and emits a Deleted event carrying the
// previous snapshot. Deleting an unknown id is a not-found error.
func (s *TemplateService) Delete(ctx context.Context, id, operationID string) (string, error) {
	template, err := s.store.GetTemplate(ctx, id)
	if err != nil {
		return "", fmt.Errorf("getting template %s: %w", id, err)
	}

	affected, err := s.store.DeleteTemplate(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting template %s: %w", id, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("template %s: %w", id, types.ErrNotFound)
	}

	operationID = types.EnsureOperationID(operationID)
	if err := emit(ctx, s.events, id, template, nil, types.EventTypeDeleted, types.ModelTypeTemplate, operationID); err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("template_id", id).
		Str("operation_id", operationID).
		Msg("Template deleted")

	return operationID, nil
}
