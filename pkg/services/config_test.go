package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

func seedConfig(t *testing.T, svc *Services, ownerKind, ownerID, key, value string) {
	t.Helper()
	owner, err := types.MakeOwningModel(ownerKind, ownerID)
	if err != nil {
		t.Fatalf("MakeOwningModel error: %v", err)
	}
	config := &types.Config{
		OwningModel: owner,
		Key:         key,
		Value:       value,
		ValueType:   types.ConfigValueTypeString,
	}
	if _, err := svc.Configs.Upsert(context.Background(), config, ""); err != nil {
		t.Fatalf("seeding config %s/%s: %v", owner, key, err)
	}
}

func effectiveValues(configs []*types.Config) map[string]string {
	values := map[string]string{}
	for _, config := range configs {
		values[config.Key] = config.Value
	}
	return values
}

func TestConfigQueryDeploymentLayering(t *testing.T) {
	svc, _ := newTestServices(t)
	deployment := seedDeploymentGraph(t, svc)
	ctx := context.Background()

	seedConfig(t, svc, types.OwnerTemplate, "external-service", "image", "ghcr.io/x:v1")
	seedConfig(t, svc, types.OwnerWorkload, "fabriq-cloud:fabriq:cribbage", "cpu", "1000m")
	seedConfig(t, svc, types.OwnerWorkload, "fabriq-cloud:fabriq:cribbage", "image", "ghcr.io/x:v2")
	seedConfig(t, svc, types.OwnerDeployment, deployment.ID, "replicas", "5")

	configs, err := svc.Configs.Query(ctx, types.OwnerDeployment, deployment.ID)
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(configs) != 3 {
		t.Fatalf("effective configs = %d, want 3", len(configs))
	}

	values := effectiveValues(configs)
	want := map[string]string{
		"image":    "ghcr.io/x:v2",
		"cpu":      "1000m",
		"replicas": "5",
	}
	for key, wantValue := range want {
		if values[key] != wantValue {
			t.Errorf("effective %s = %q, want %q", key, values[key], wantValue)
		}
	}
}

func TestConfigQueryWorkloadScope(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDeploymentGraph(t, svc)
	ctx := context.Background()

	seedConfig(t, svc, types.OwnerTemplate, "external-service", "image", "ghcr.io/x:v1")
	seedConfig(t, svc, types.OwnerTemplate, "external-service", "memory", "128Mi")
	seedConfig(t, svc, types.OwnerWorkload, "fabriq-cloud:fabriq:cribbage", "image", "ghcr.io/x:v2")

	configs, err := svc.Configs.Query(ctx, types.OwnerWorkload, "fabriq-cloud:fabriq:cribbage")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}

	values := effectiveValues(configs)
	if values["image"] != "ghcr.io/x:v2" {
		t.Errorf("effective image = %q, want ghcr.io/x:v2", values["image"])
	}
	if values["memory"] != "128Mi" {
		t.Errorf("effective memory = %q, want 128Mi", values["memory"])
	}
}

func TestConfigQueryTemplateScope(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDeploymentGraph(t, svc)
	ctx := context.Background()

	seedConfig(t, svc, types.OwnerTemplate, "external-service", "image", "ghcr.io/x:v1")

	configs, err := svc.Configs.Query(ctx, types.OwnerTemplate, "external-service")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(configs) != 1 || configs[0].Value != "ghcr.io/x:v1" {
		t.Errorf("template configs = %v, want single image ghcr.io/x:v1", configs)
	}
}

func TestConfigQueryHonorsTemplateOverride(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDeploymentGraph(t, svc)
	ctx := context.Background()

	if _, err := svc.Templates.Upsert(ctx, &types.Template{
		ID:         "canary-service",
		Repository: "https://github.com/fabriq-cloud/manifests",
		GitRef:     "main",
		Path:       "templates/canary-service",
	}, ""); err != nil {
		t.Fatalf("seeding override template: %v", err)
	}

	overridden := &types.Deployment{
		Name:       "canary",
		WorkloadID: "fabriq-cloud:fabriq:cribbage",
		TargetID:   "eastus2",
		TemplateID: "canary-service",
		HostCount:  1,
	}
	if _, err := svc.Deployments.Upsert(ctx, overridden, ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	seedConfig(t, svc, types.OwnerTemplate, "external-service", "image", "ghcr.io/x:v1")
	seedConfig(t, svc, types.OwnerTemplate, "canary-service", "image", "ghcr.io/x:canary")

	configs, err := svc.Configs.Query(ctx, types.OwnerDeployment, overridden.ID)
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}

	values := effectiveValues(configs)
	if values["image"] != "ghcr.io/x:canary" {
		t.Errorf("effective image = %q, want ghcr.io/x:canary", values["image"])
	}
}

func TestConfigQueryUnknownScope(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Configs.Query(context.Background(), "cluster", "anything")

	var validationErr *types.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Query error = %v, want validation error", err)
	}
}

func TestConfigQueryMissingDeployment(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Configs.Query(context.Background(), types.OwnerDeployment, "fabriq-cloud:fabriq:cribbage:missing")

	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Query error = %v, want ErrNotFound", err)
	}
}

func TestConfigUpsertValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		config *types.Config
	}{
		{
			name:   "missing key",
			config: &types.Config{OwningModel: "workload/fabriq-cloud:fabriq:cribbage", Value: "x", ValueType: types.ConfigValueTypeString},
		},
		{
			name:   "unknown owner kind",
			config: &types.Config{OwningModel: "cluster/main", Key: "image", Value: "x", ValueType: types.ConfigValueTypeString},
		},
		{
			name:   "malformed owning model",
			config: &types.Config{OwningModel: "workload", Key: "image", Value: "x", ValueType: types.ConfigValueTypeString},
		},
		{
			name:   "unknown value type",
			config: &types.Config{OwningModel: "workload/fabriq-cloud:fabriq:cribbage", Key: "image", Value: "x", ValueType: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Configs.Upsert(ctx, tt.config, "")

			var validationErr *types.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Upsert error = %v, want validation error", err)
			}
		})
	}
}

func TestConfigIDDerivation(t *testing.T) {
	svc, _ := newTestServices(t)

	config := &types.Config{
		OwningModel: "workload/fabriq-cloud:fabriq:cribbage",
		Key:         "image",
		Value:       "ghcr.io/x:v1",
		ValueType:   types.ConfigValueTypeString,
	}
	if _, err := svc.Configs.Upsert(context.Background(), config, ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	want := "workload/fabriq-cloud:fabriq:cribbage|image"
	if config.ID != want {
		t.Errorf("derived id = %s, want %s", config.ID, want)
	}
}
