package services

import (
	"context"
	"fmt"

	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// Services bundles one service per entity over a shared store and event
// stream. The bundle is what the RPC layer and the entrypoints wire against.
type Services struct {
	Assignments *AssignmentService
	Configs     *ConfigService
	Deployments *DeploymentService
	Hosts       *HostService
	Targets     *TargetService
	Templates   *TemplateService
	Workloads   *WorkloadService
}

// New builds the full service bundle over one store and one event stream.
func New(store storage.Store, events stream.EventStream) *Services {
	return &Services{
		Assignments: NewAssignmentService(store, events),
		Configs:     NewConfigService(store, events),
		Deployments: NewDeploymentService(store, events),
		Hosts:       NewHostService(store, events),
		Targets:     NewTargetService(store, events),
		Templates:   NewTemplateService(store, events),
		Workloads:   NewWorkloadService(store, events),
	}
}

// emit builds the event for one transition and fans it out. previous and
// current must be untyped nils when absent so the envelope constructor can
// tell a missing snapshot from a typed nil pointer.
func emit(ctx context.Context, events stream.EventStream, modelID string, previous, current any, eventType types.EventType, modelType types.ModelType, operationID string) error {
	event, err := types.NewEvent(modelID, previous, current, eventType, modelType, operationID)
	if err != nil {
		return err
	}
	if err := events.Send(ctx, event); err != nil {
		return fmt.Errorf("sending %s %s event: %w", modelType, eventType, err)
	}
	metrics.EventsSent.WithLabelValues(string(modelType), string(eventType)).Inc()
	return nil
}
