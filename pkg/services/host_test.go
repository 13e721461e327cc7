package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

func TestHostUpsertEmitsOnEffectiveChange(t *testing.T) {
	svc, events := newTestServices(t)
	ctx := context.Background()

	host := &types.Host{
		ID:     "azure-eastus2-1",
		Labels: []string{"region:eastus2", "cloud:azure"},
	}

	operationID, err := svc.Hosts.Upsert(ctx, host, "")
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if len(operationID) != 36 {
		t.Errorf("operation id length = %d, want 36", len(operationID))
	}

	if got := queueDepth(t, events, stream.ReconcilerConsumerID); got != 1 {
		t.Fatalf("reconciler queue depth after create = %d, want 1", got)
	}
	if got := queueDepth(t, events, stream.GitOpsConsumerID); got != 1 {
		t.Fatalf("gitops queue depth after create = %d, want 1", got)
	}

	created := lastEvent(t, events, stream.ReconcilerConsumerID)
	if created.EventType != types.EventTypeCreated {
		t.Errorf("event type = %s, want %s", created.EventType, types.EventTypeCreated)
	}
	if created.ModelType != types.ModelTypeHost {
		t.Errorf("model type = %s, want %s", created.ModelType, types.ModelTypeHost)
	}
	if created.SerializedPrevious != nil {
		t.Error("created event carries a previous snapshot")
	}
	var current types.Host
	decodeSnapshot(t, created.SerializedCurrent, &current)
	if current.ID != host.ID {
		t.Errorf("current snapshot id = %s, want %s", current.ID, host.ID)
	}

	// Identical record: no write, no event.
	if _, err := svc.Hosts.Upsert(ctx, host, ""); err != nil {
		t.Fatalf("identical Upsert error: %v", err)
	}
	if got := queueDepth(t, events, stream.ReconcilerConsumerID); got != 1 {
		t.Errorf("reconciler queue depth after identical upsert = %d, want 1", got)
	}

	// Changed labels: an Updated event with both snapshots.
	relabeled := &types.Host{
		ID:     "azure-eastus2-1",
		Labels: []string{"region:westus2", "cloud:azure"},
	}
	if _, err := svc.Hosts.Upsert(ctx, relabeled, ""); err != nil {
		t.Fatalf("relabel Upsert error: %v", err)
	}
	if got := queueDepth(t, events, stream.ReconcilerConsumerID); got != 2 {
		t.Fatalf("reconciler queue depth after relabel = %d, want 2", got)
	}

	updated := lastEvent(t, events, stream.ReconcilerConsumerID)
	if updated.EventType != types.EventTypeUpdated {
		t.Errorf("event type = %s, want %s", updated.EventType, types.EventTypeUpdated)
	}
	var previous types.Host
	decodeSnapshot(t, updated.SerializedPrevious, &previous)
	if previous.Labels[0] != "region:eastus2" {
		t.Errorf("previous snapshot label = %s, want region:eastus2", previous.Labels[0])
	}
	decodeSnapshot(t, updated.SerializedCurrent, &current)
	if current.Labels[0] != "region:westus2" {
		t.Errorf("current snapshot label = %s, want region:westus2", current.Labels[0])
	}
}

func TestHostUpsertRequiresID(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Hosts.Upsert(context.Background(), &types.Host{Labels: []string{"cloud:azure"}}, "")

	var validationErr *types.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Upsert error = %v, want validation error", err)
	}
}

func TestHostDeleteEmitsPreviousSnapshot(t *testing.T) {
	svc, events := newTestServices(t)
	ctx := context.Background()

	host := &types.Host{ID: "azure-eastus2-1", Labels: []string{"region:eastus2"}}
	if _, err := svc.Hosts.Upsert(ctx, host, ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	if _, err := svc.Hosts.Delete(ctx, host.ID, ""); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	deleted := lastEvent(t, events, stream.ReconcilerConsumerID)
	if deleted.EventType != types.EventTypeDeleted {
		t.Errorf("event type = %s, want %s", deleted.EventType, types.EventTypeDeleted)
	}
	if deleted.SerializedCurrent != nil {
		t.Error("deleted event carries a current snapshot")
	}
	var previous types.Host
	decodeSnapshot(t, deleted.SerializedPrevious, &previous)
	if previous.ID != host.ID {
		t.Errorf("previous snapshot id = %s, want %s", previous.ID, host.ID)
	}

	if _, err := svc.Hosts.Delete(ctx, host.ID, ""); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestHostMatchingTarget(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	hosts := []*types.Host{
		{ID: "h1", Labels: []string{"region:eastus2", "cloud:azure"}},
		{ID: "h2", Labels: []string{"region:westus2", "cloud:azure"}},
		{ID: "h3", Labels: []string{"region:eastus2", "cloud:azure"}},
	}
	for _, host := range hosts {
		if _, err := svc.Hosts.Upsert(ctx, host, ""); err != nil {
			t.Fatalf("Upsert(%s) error: %v", host.ID, err)
		}
	}

	matching, err := svc.Hosts.GetMatchingTarget(ctx, &types.Target{
		ID:     "eastus2",
		Labels: []string{"region:eastus2"},
	})
	if err != nil {
		t.Fatalf("GetMatchingTarget error: %v", err)
	}
	if len(matching) != 2 {
		t.Fatalf("matching hosts = %d, want 2", len(matching))
	}
	if matching[0].ID != "h1" || matching[1].ID != "h3" {
		t.Errorf("matching hosts = %s, %s, want h1, h3", matching[0].ID, matching[1].ID)
	}
}
