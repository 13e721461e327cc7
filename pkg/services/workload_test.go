package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

func TestWorkloadUpsertDerivesID(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Templates.Upsert(ctx, &types.Template{
		ID:         "external-service",
		Repository: "https://github.com/fabriq-cloud/manifests",
		GitRef:     "main",
	}, ""); err != nil {
		t.Fatalf("seeding template: %v", err)
	}

	workload := &types.Workload{
		Name:       "cribbage",
		TeamID:     "fabriq-cloud:fabriq",
		TemplateID: "external-service",
	}
	if _, err := svc.Workloads.Upsert(ctx, workload, ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if workload.ID != "fabriq-cloud:fabriq:cribbage" {
		t.Errorf("derived id = %s, want fabriq-cloud:fabriq:cribbage", workload.ID)
	}

	fetched, err := svc.Workloads.Get(ctx, "fabriq-cloud:fabriq:cribbage")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if fetched.TeamID != "fabriq-cloud:fabriq" {
		t.Errorf("team id = %s, want fabriq-cloud:fabriq", fetched.TeamID)
	}
}

func TestWorkloadValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Templates.Upsert(ctx, &types.Template{
		ID:         "external-service",
		Repository: "https://github.com/fabriq-cloud/manifests",
		GitRef:     "main",
	}, ""); err != nil {
		t.Fatalf("seeding template: %v", err)
	}

	tests := []struct {
		name     string
		workload *types.Workload
	}{
		{
			name:     "missing name",
			workload: &types.Workload{TeamID: "fabriq-cloud:fabriq", TemplateID: "external-service"},
		},
		{
			name:     "team id without separator",
			workload: &types.Workload{Name: "cribbage", TeamID: "fabriq", TemplateID: "external-service"},
		},
		{
			name:     "team id with too many separators",
			workload: &types.Workload{Name: "cribbage", TeamID: "fabriq:cloud:fabriq", TemplateID: "external-service"},
		},
		{
			name:     "missing template",
			workload: &types.Workload{Name: "cribbage", TeamID: "fabriq-cloud:fabriq"},
		},
		{
			name:     "unknown template",
			workload: &types.Workload{Name: "cribbage", TeamID: "fabriq-cloud:fabriq", TemplateID: "missing"},
		},
		{
			name: "id not derived from natural key",
			workload: &types.Workload{
				ID:         "other:team:cribbage",
				Name:       "cribbage",
				TeamID:     "fabriq-cloud:fabriq",
				TemplateID: "external-service",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Workloads.Upsert(ctx, tt.workload, "")

			var validationErr *types.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Upsert error = %v, want validation error", err)
			}
		})
	}
}

func TestWorkloadGetByTemplate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	for _, id := range []string{"external-service", "worker-service"} {
		if _, err := svc.Templates.Upsert(ctx, &types.Template{
			ID:         id,
			Repository: "https://github.com/fabriq-cloud/manifests",
			GitRef:     "main",
		}, ""); err != nil {
			t.Fatalf("seeding template %s: %v", id, err)
		}
	}

	workloads := []*types.Workload{
		{Name: "cribbage", TeamID: "fabriq-cloud:fabriq", TemplateID: "external-service"},
		{Name: "hello-service", TeamID: "fabriq-cloud:fabriq", TemplateID: "external-service"},
		{Name: "billing", TeamID: "fabriq-cloud:platform", TemplateID: "worker-service"},
	}
	for _, workload := range workloads {
		if _, err := svc.Workloads.Upsert(ctx, workload, ""); err != nil {
			t.Fatalf("Upsert(%s) error: %v", workload.Name, err)
		}
	}

	external, err := svc.Workloads.GetByTemplate(ctx, "external-service")
	if err != nil {
		t.Fatalf("GetByTemplate error: %v", err)
	}
	if len(external) != 2 {
		t.Fatalf("external-service workloads = %d, want 2", len(external))
	}
	if external[0].Name != "cribbage" || external[1].Name != "hello-service" {
		t.Errorf("external-service workloads = %s, %s, want cribbage, hello-service", external[0].Name, external[1].Name)
	}

	worker, err := svc.Workloads.GetByTemplate(ctx, "worker-service")
	if err != nil {
		t.Fatalf("GetByTemplate error: %v", err)
	}
	if len(worker) != 1 || worker[0].Name != "billing" {
		t.Errorf("worker-service workloads = %v, want billing", worker)
	}
}
