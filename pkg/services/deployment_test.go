package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

func TestDeploymentUpsertDerivesID(t *testing.T) {
	svc, _ := newTestServices(t)
	deployment := seedDeploymentGraph(t, svc)

	if deployment.ID != "fabriq-cloud:fabriq:cribbage:prod" {
		t.Errorf("derived id = %s, want fabriq-cloud:fabriq:cribbage:prod", deployment.ID)
	}

	byTarget, err := svc.Deployments.GetByTarget(context.Background(), "eastus2")
	if err != nil {
		t.Fatalf("GetByTarget error: %v", err)
	}
	if len(byTarget) != 1 || byTarget[0].ID != deployment.ID {
		t.Errorf("GetByTarget = %v, want [%s]", byTarget, deployment.ID)
	}
}

func TestDeploymentCrossReferences(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDeploymentGraph(t, svc)
	ctx := context.Background()

	tests := []struct {
		name       string
		deployment *types.Deployment
	}{
		{
			name: "unknown workload",
			deployment: &types.Deployment{
				Name:       "prod",
				WorkloadID: "fabriq-cloud:fabriq:missing",
				TargetID:   "eastus2",
				HostCount:  1,
			},
		},
		{
			name: "unknown target",
			deployment: &types.Deployment{
				Name:       "prod",
				WorkloadID: "fabriq-cloud:fabriq:cribbage",
				TargetID:   "missing",
				HostCount:  1,
			},
		},
		{
			name: "unknown template override",
			deployment: &types.Deployment{
				Name:       "prod",
				WorkloadID: "fabriq-cloud:fabriq:cribbage",
				TargetID:   "eastus2",
				TemplateID: "missing",
				HostCount:  1,
			},
		},
		{
			name: "negative host count",
			deployment: &types.Deployment{
				Name:       "prod",
				WorkloadID: "fabriq-cloud:fabriq:cribbage",
				TargetID:   "eastus2",
				HostCount:  -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Deployments.Upsert(ctx, tt.deployment, "")

			var validationErr *types.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Upsert error = %v, want validation error", err)
			}
		})
	}
}

func TestDeploymentAllHostsSentinel(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDeploymentGraph(t, svc)
	ctx := context.Background()

	deployment := &types.Deployment{
		Name:       "canary",
		WorkloadID: "fabriq-cloud:fabriq:cribbage",
		TargetID:   "eastus2",
		HostCount:  types.AllHosts,
	}
	if _, err := svc.Deployments.Upsert(ctx, deployment, ""); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	fetched, err := svc.Deployments.Get(ctx, deployment.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if fetched.HostCount != types.AllHosts {
		t.Errorf("host count = %d, want AllHosts sentinel", fetched.HostCount)
	}
}
