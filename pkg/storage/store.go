package storage

import (
	"context"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// Store defines the interface for control plane state persistence.
// Implemented by the PostgreSQL store and the in-memory store.
//
// Upsert methods return the number of rows affected: 1 when the record
// was inserted or its content changed, 0 when an identical record was
// already present. Get methods return types.ErrNotFound for missing ids.
// Delete methods are idempotent and return the number of rows removed.
type Store interface {
	// Assignments
	UpsertAssignment(ctx context.Context, assignment *types.Assignment) (int64, error)
	GetAssignment(ctx context.Context, id string) (*types.Assignment, error)
	GetAssignmentsByDeployment(ctx context.Context, deploymentID string) ([]*types.Assignment, error)
	ListAssignments(ctx context.Context) ([]*types.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) (int64, error)

	// Configs
	UpsertConfig(ctx context.Context, config *types.Config) (int64, error)
	GetConfig(ctx context.Context, id string) (*types.Config, error)
	GetConfigsByOwner(ctx context.Context, owningModel string) ([]*types.Config, error)
	ListConfigs(ctx context.Context) ([]*types.Config, error)
	DeleteConfig(ctx context.Context, id string) (int64, error)

	// Deployments
	UpsertDeployment(ctx context.Context, deployment *types.Deployment) (int64, error)
	GetDeployment(ctx context.Context, id string) (*types.Deployment, error)
	GetDeploymentsByTarget(ctx context.Context, targetID string) ([]*types.Deployment, error)
	GetDeploymentsByTemplate(ctx context.Context, templateID string) ([]*types.Deployment, error)
	GetDeploymentsByWorkload(ctx context.Context, workloadID string) ([]*types.Deployment, error)
	ListDeployments(ctx context.Context) ([]*types.Deployment, error)
	DeleteDeployment(ctx context.Context, id string) (int64, error)

	// Hosts
	UpsertHost(ctx context.Context, host *types.Host) (int64, error)
	GetHost(ctx context.Context, id string) (*types.Host, error)
	GetHostsMatchingTarget(ctx context.Context, target *types.Target) ([]*types.Host, error)
	ListHosts(ctx context.Context) ([]*types.Host, error)
	DeleteHost(ctx context.Context, id string) (int64, error)

	// Targets
	UpsertTarget(ctx context.Context, target *types.Target) (int64, error)
	GetTarget(ctx context.Context, id string) (*types.Target, error)
	GetTargetsMatchingHost(ctx context.Context, host *types.Host) ([]*types.Target, error)
	ListTargets(ctx context.Context) ([]*types.Target, error)
	DeleteTarget(ctx context.Context, id string) (int64, error)

	// Templates
	UpsertTemplate(ctx context.Context, template *types.Template) (int64, error)
	GetTemplate(ctx context.Context, id string) (*types.Template, error)
	ListTemplates(ctx context.Context) ([]*types.Template, error)
	DeleteTemplate(ctx context.Context, id string) (int64, error)

	// Workloads
	UpsertWorkload(ctx context.Context, workload *types.Workload) (int64, error)
	GetWorkload(ctx context.Context, id string) (*types.Workload, error)
	GetWorkloadsByTemplate(ctx context.Context, templateID string) ([]*types.Workload, error)
	ListWorkloads(ctx context.Context) ([]*types.Workload, error)
	DeleteWorkload(ctx context.Context, id string) (int64, error)

	// Utility
	Close() error
}
