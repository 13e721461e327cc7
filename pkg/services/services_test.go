package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

func newTestServices(t *testing.T) (*Services, *stream.MemoryStream) {
	t.Helper()
	events := stream.NewMemoryStream(stream.DefaultSubscribers())
	return New(storage.NewMemoryStore(), events), events
}

func queueDepth(t *testing.T, events *stream.MemoryStream, consumerID string) int {
	t.Helper()
	depth, err := events.Len(context.Background(), consumerID)
	if err != nil {
		t.Fatalf("Len(%s) error: %v", consumerID, err)
	}
	return depth
}

func lastEvent(t *testing.T, events *stream.MemoryStream, consumerID string) *types.Event {
	t.Helper()
	queued, err := events.Receive(context.Background(), consumerID)
	if err != nil {
		t.Fatalf("Receive(%s) error: %v", consumerID, err)
	}
	if len(queued) == 0 {
		t.Fatalf("Receive(%s) returned no events", consumerID)
	}
	return queued[len(queued)-1]
}

// seedDeploymentGraph creates the template, workload, target, and deployment
// fixture most service tests hang off: workload fabriq-cloud:fabriq:cribbage
// deploying to target eastus2 with two desired hosts.
func seedDeploymentGraph(t *testing.T, svc *Services) *types.Deployment {
	t.Helper()
	ctx := context.Background()

	if _, err := svc.Templates.Upsert(ctx, &types.Template{
		ID:         "external-service",
		Repository: "https://github.com/fabriq-cloud/manifests",
		GitRef:     "main",
		Path:       "templates/external-service",
	}, ""); err != nil {
		t.Fatalf("seeding template: %v", err)
	}

	if _, err := svc.Targets.Upsert(ctx, &types.Target{
		ID:     "eastus2",
		Labels: []string{"region:eastus2"},
	}, ""); err != nil {
		t.Fatalf("seeding target: %v", err)
	}

	if _, err := svc.Workloads.Upsert(ctx, &types.Workload{
		Name:       "cribbage",
		TeamID:     "fabriq-cloud:fabriq",
		TemplateID: "external-service",
	}, ""); err != nil {
		t.Fatalf("seeding workload: %v", err)
	}

	deployment := &types.Deployment{
		Name:       "prod",
		WorkloadID: "fabriq-cloud:fabriq:cribbage",
		TargetID:   "eastus2",
		HostCount:  2,
	}
	if _, err := svc.Deployments.Upsert(ctx, deployment, ""); err != nil {
		t.Fatalf("seeding deployment: %v", err)
	}
	return deployment
}

func decodeSnapshot(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
}
