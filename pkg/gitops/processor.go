package gitops

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// configFileName is written alongside each materialized template with the
// deployment's resolved config.
const configFileName = "config.yaml"

// FatalEventError reports an event the processor can never handle: an
// unknown model or event type, a malformed deployment id, or an envelope
// missing both snapshots. Redelivery cannot help, so the consumer loop
// stops instead of retrying.
type FatalEventError struct {
	Reason string
}

func (e *FatalEventError) Error() string {
	return e.Reason
}

// DataPlane reads workloads, templates, and resolved config through the api
// server. *client.Client satisfies it.
type DataPlane interface {
	GetWorkload(id string) (*proto.WorkloadMessage, error)
	GetTemplate(id string) (*proto.TemplateMessage, error)
	QueryConfigs(modelName, modelID string) ([]*proto.ConfigMessage, error)
}

// CloneFunc produces a checkout. The processor uses it to materialize
// template repositories; production wires it to Clone.
type CloneFunc func(cfg Config) (Repo, error)

// Processor keeps the gitops repository consistent with the deployments it
// observes through the event queue. Each deployment change is rendered under
// deployments/<team>/<workload>/<deployment>, committed, and pushed; a
// deployment deletion removes the directory. Events for the other model
// kinds need no repository change.
type Processor struct {
	repo        Repo
	clone       CloneFunc
	data        DataPlane
	events      stream.EventStream
	templateKey string
	consumerID  string
	logger      zerolog.Logger
	stopCh      chan struct{}
	done        chan struct{}
}

// NewProcessor creates a processor consuming consumerID's queue and writing
// to repo. templateKey is the SSH key used to clone template repositories; it
// may be empty when the templates are public.
func NewProcessor(repo Repo, clone CloneFunc, data DataPlane, events stream.EventStream, templateKey, consumerID string) *Processor {
	return &Processor{
		repo:        repo,
		clone:       clone,
		data:        data,
		events:      events,
		templateKey: templateKey,
		consumerID:  consumerID,
		logger:      log.WithConsumer(consumerID),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Process dispatches one event by model type. Only deployment events change
// the repository; the other model kinds are observed but need no rendering,
// since their state reaches the repository through the deployments that
// reference them. An unknown model type is a FatalEventError.
func (p *Processor) Process(ctx context.Context, event *types.Event) error {
	switch event.ModelType {
	case types.ModelTypeDeployment:
		return p.processDeploymentEvent(event)
	case types.ModelTypeAssignment, types.ModelTypeConfig, types.ModelTypeHost,
		types.ModelTypeTarget, types.ModelTypeTemplate, types.ModelTypeWorkload:
		p.logger.Debug().
			Str("event_id", event.ID).
			Str("model_type", string(event.ModelType)).
			Str("event_type", string(event.EventType)).
			Msg("Event needs no repository change")
		return nil
	default:
		return &FatalEventError{Reason: fmt.Sprintf("event %s has unknown model type %q", event.ID, event.ModelType)}
	}
}

func (p *Processor) processDeploymentEvent(event *types.Event) error {
	var deployment types.Deployment
	if err := eventSnapshot(event, &deployment); err != nil {
		return err
	}

	teamID, workloadName, _, err := types.SplitDeploymentID(deployment.ID)
	if err != nil {
		return &FatalEventError{Reason: fmt.Sprintf("event %s: %v", event.ID, err)}
	}
	dir := path.Join("deployments", teamID, types.MakeWorkloadID(teamID, workloadName), deployment.ID)

	switch event.EventType {
	case types.EventTypeCreated, types.EventTypeUpdated:
		if err := p.renderDeployment(&deployment, dir); err != nil {
			return err
		}
	case types.EventTypeDeleted:
		// The directory derives from the id alone, so removal never needs
		// the workload, which may already be gone by the time the event
		// arrives.
		if err := p.repo.RemoveDir(dir); err != nil {
			return err
		}
	default:
		return &FatalEventError{Reason: fmt.Sprintf("event %s has unknown event type %q", event.ID, event.EventType)}
	}

	message := fmt.Sprintf("Processed %s event %s", strings.ToLower(string(event.ModelType)), event.OperationID)
	committed, err := p.repo.Commit(message)
	if err != nil {
		return fmt.Errorf("committing %s: %w", dir, err)
	}
	if committed {
		p.logger.Info().
			Str("deployment_id", deployment.ID).
			Str("event_type", string(event.EventType)).
			Str("operation_id", event.OperationID).
			Str("path", dir).
			Msg("Deployment change committed")
	}

	// Push runs even when the tree was clean, so a commit whose push failed
	// is retried when the event is redelivered.
	if err := p.repo.Push(); err != nil {
		return fmt.Errorf("pushing: %w", err)
	}
	return nil
}

// renderDeployment rebuilds the deployment's directory from its effective
// template and resolved config. The directory is cleared first, so files
// dropped from the template disappear from the rendering too.
func (p *Processor) renderDeployment(deployment *types.Deployment, dir string) error {
	workload, err := p.data.GetWorkload(deployment.WorkloadID)
	if err != nil {
		return fmt.Errorf("getting workload %s: %w", deployment.WorkloadID, err)
	}

	templateID := deployment.TemplateID
	if templateID == "" {
		templateID = workload.GetTemplateId()
	}
	template, err := p.data.GetTemplate(templateID)
	if err != nil {
		return fmt.Errorf("getting template %s: %w", templateID, err)
	}

	configs, err := p.data.QueryConfigs(types.OwnerDeployment, deployment.ID)
	if err != nil {
		return fmt.Errorf("querying config for deployment %s: %w", deployment.ID, err)
	}

	checkout, err := p.clone(Config{
		URL:        template.GetRepository(),
		Branch:     template.GetGitRef(),
		PrivateKey: p.templateKey,
	})
	if err != nil {
		return fmt.Errorf("cloning template %s: %w", templateID, err)
	}
	defer checkout.Close()

	if err := p.repo.RemoveDir(dir); err != nil {
		return err
	}

	files, err := checkout.ListFiles(template.GetPath())
	if err != nil {
		return fmt.Errorf("listing template %s: %w", templateID, err)
	}
	for _, file := range files {
		contents, err := checkout.ReadFile(file)
		if err != nil {
			return err
		}
		if err := p.repo.WriteFile(path.Join(dir, relativeTo(template.GetPath(), file)), contents); err != nil {
			return err
		}
	}

	values := make(map[string]string, len(configs))
	for _, config := range configs {
		values[config.GetKey()] = config.GetValue()
	}
	rendered, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("rendering config for deployment %s: %w", deployment.ID, err)
	}
	return p.repo.WriteFile(path.Join(dir, configFileName), rendered)
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
