package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// TestMemoryUpsertAffectedCount tests the insert / no-op / change gate
func TestMemoryUpsertAffectedCount(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	host := &types.Host{
		ID:     "azure-eastus2-1",
		Labels: []string{"location:eastus2", "cloud:azure"},
	}

	affected, err := store.UpsertHost(ctx, host)
	if err != nil {
		t.Fatalf("UpsertHost() error = %v", err)
	}
	if affected != 1 {
		t.Errorf("UpsertHost() first insert affected = %d, want 1", affected)
	}

	affected, err = store.UpsertHost(ctx, host)
	if err != nil {
		t.Fatalf("UpsertHost() error = %v", err)
	}
	if affected != 0 {
		t.Errorf("UpsertHost() identical record affected = %d, want 0", affected)
	}

	host.Labels = append(host.Labels, "region:eastus2")
	affected, err = store.UpsertHost(ctx, host)
	if err != nil {
		t.Fatalf("UpsertHost() error = %v", err)
	}
	if affected != 1 {
		t.Errorf("UpsertHost() changed record affected = %d, want 1", affected)
	}
}

// TestMemoryGetNotFound tests missing records return ErrNotFound
func TestMemoryGetNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetHost(ctx, "missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("GetHost() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetDeployment(ctx, "missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("GetDeployment() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetConfig(ctx, "missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("GetConfig() error = %v, want ErrNotFound", err)
	}
}

// TestMemoryListInsertionOrder tests listings preserve insertion order,
// including after an update to an existing record
func TestMemoryListInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ids := []string{"host-c", "host-a", "host-b"}
	for _, id := range ids {
		if _, err := store.UpsertHost(ctx, &types.Host{ID: id, Labels: []string{"cloud:azure"}}); err != nil {
			t.Fatalf("UpsertHost(%s) error = %v", id, err)
		}
	}

	// Updating the first host must not move it to the back.
	if _, err := store.UpsertHost(ctx, &types.Host{ID: "host-c", Labels: []string{"cloud:aws"}}); err != nil {
		t.Fatalf("UpsertHost(host-c) error = %v", err)
	}

	hosts, err := store.ListHosts(ctx)
	if err != nil {
		t.Fatalf("ListHosts() error = %v", err)
	}
	if len(hosts) != len(ids) {
		t.Fatalf("ListHosts() returned %d hosts, want %d", len(hosts), len(ids))
	}
	for i, host := range hosts {
		if host.ID != ids[i] {
			t.Errorf("ListHosts()[%d].ID = %q, want %q", i, host.ID, ids[i])
		}
	}
}

// TestMemoryDeleteIdempotent tests deletes succeed for missing records
func TestMemoryDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.UpsertTarget(ctx, &types.Target{ID: "eastus2", Labels: []string{"location:eastus2"}}); err != nil {
		t.Fatalf("UpsertTarget() error = %v", err)
	}

	affected, err := store.DeleteTarget(ctx, "eastus2")
	if err != nil {
		t.Fatalf("DeleteTarget() error = %v", err)
	}
	if affected != 1 {
		t.Errorf("DeleteTarget() affected = %d, want 1", affected)
	}

	affected, err = store.DeleteTarget(ctx, "eastus2")
	if err != nil {
		t.Errorf("DeleteTarget() second delete error = %v, want nil", err)
	}
	if affected != 0 {
		t.Errorf("DeleteTarget() second delete affected = %d, want 0", affected)
	}

	if _, err := store.DeleteTarget(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteTarget() missing record error = %v, want nil", err)
	}

	if _, err := store.GetTarget(ctx, "eastus2"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("GetTarget() after delete error = %v, want ErrNotFound", err)
	}
}

// TestMemoryAssignmentsByDeployment tests the deployment relation query
func TestMemoryAssignmentsByDeployment(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	deploymentID := "fabriq-cloud:fabriq:cribbage:prod"
	assignments := []*types.Assignment{
		{ID: deploymentID + "-host-1", DeploymentID: deploymentID, HostID: "host-1"},
		{ID: deploymentID + "-host-2", DeploymentID: deploymentID, HostID: "host-2"},
		{ID: "other:deployment-host-1", DeploymentID: "other:deployment", HostID: "host-1"},
	}
	for _, assignment := range assignments {
		if _, err := store.UpsertAssignment(ctx, assignment); err != nil {
			t.Fatalf("UpsertAssignment(%s) error = %v", assignment.ID, err)
		}
	}

	got, err := store.GetAssignmentsByDeployment(ctx, deploymentID)
	if err != nil {
		t.Fatalf("GetAssignmentsByDeployment() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetAssignmentsByDeployment() returned %d assignments, want 2", len(got))
	}
	if got[0].HostID != "host-1" || got[1].HostID != "host-2" {
		t.Errorf("GetAssignmentsByDeployment() hosts = %q, %q, want host-1, host-2", got[0].HostID, got[1].HostID)
	}

	all, err := store.ListAssignments(ctx)
	if err != nil {
		t.Fatalf("ListAssignments() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAssignments() returned %d assignments, want 3", len(all))
	}
}

// TestMemoryConfigsByOwner tests the owning model relation query
func TestMemoryConfigsByOwner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	workloadOwner := "workload/fabriq-cloud:fabriq:cribbage"
	deploymentOwner := "deployment/fabriq-cloud:fabriq:cribbage:prod"

	configs := []*types.Config{
		{ID: workloadOwner + "|cpu", OwningModel: workloadOwner, Key: "cpu", Value: "500m", ValueType: types.ConfigValueTypeString},
		{ID: workloadOwner + "|image", OwningModel: workloadOwner, Key: "image", Value: "ghcr.io/x:v1", ValueType: types.ConfigValueTypeString},
		{ID: deploymentOwner + "|replicas", OwningModel: deploymentOwner, Key: "replicas", Value: "5", ValueType: types.ConfigValueTypeString},
	}
	for _, config := range configs {
		if _, err := store.UpsertConfig(ctx, config); err != nil {
			t.Fatalf("UpsertConfig(%s) error = %v", config.ID, err)
		}
	}

	got, err := store.GetConfigsByOwner(ctx, workloadOwner)
	if err != nil {
		t.Fatalf("GetConfigsByOwner() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetConfigsByOwner() returned %d configs, want 2", len(got))
	}
	if got[0].Key != "cpu" || got[1].Key != "image" {
		t.Errorf("GetConfigsByOwner() keys = %q, %q, want cpu, image", got[0].Key, got[1].Key)
	}
}

// TestMemoryDeploymentRelations tests target, template, and workload queries
func TestMemoryDeploymentRelations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	deployments := []*types.Deployment{
		{ID: "fabriq-cloud:fabriq:cribbage:prod", Name: "prod", WorkloadID: "fabriq-cloud:fabriq:cribbage", TargetID: "eastus2", TemplateID: "external-service", HostCount: 2},
		{ID: "fabriq-cloud:fabriq:cribbage:canary", Name: "canary", WorkloadID: "fabriq-cloud:fabriq:cribbage", TargetID: "eastus2", TemplateID: "", HostCount: 1},
		{ID: "fabriq-cloud:fabriq:hello:prod", Name: "prod", WorkloadID: "fabriq-cloud:fabriq:hello", TargetID: "westus3", TemplateID: "external-service", HostCount: 1},
	}
	for _, deployment := range deployments {
		if _, err := store.UpsertDeployment(ctx, deployment); err != nil {
			t.Fatalf("UpsertDeployment(%s) error = %v", deployment.ID, err)
		}
	}

	byTarget, err := store.GetDeploymentsByTarget(ctx, "eastus2")
	if err != nil {
		t.Fatalf("GetDeploymentsByTarget() error = %v", err)
	}
	if len(byTarget) != 2 {
		t.Errorf("GetDeploymentsByTarget() returned %d deployments, want 2", len(byTarget))
	}

	byTemplate, err := store.GetDeploymentsByTemplate(ctx, "external-service")
	if err != nil {
		t.Fatalf("GetDeploymentsByTemplate() error = %v", err)
	}
	if len(byTemplate) != 2 {
		t.Errorf("GetDeploymentsByTemplate() returned %d deployments, want 2", len(byTemplate))
	}

	byWorkload, err := store.GetDeploymentsByWorkload(ctx, "fabriq-cloud:fabriq:cribbage")
	if err != nil {
		t.Fatalf("GetDeploymentsByWorkload() error = %v", err)
	}
	if len(byWorkload) != 2 {
		t.Errorf("GetDeploymentsByWorkload() returned %d deployments, want 2", len(byWorkload))
	}

	// A deployment with no template override is not reachable by template.
	canary, err := store.GetDeployment(ctx, "fabriq-cloud:fabriq:cribbage:canary")
	if err != nil {
		t.Fatalf("GetDeployment() error = %v", err)
	}
	if canary.TemplateID != "" {
		t.Errorf("GetDeployment() TemplateID = %q, want empty", canary.TemplateID)
	}
}

// TestMemoryWorkloadsByTemplate tests the workload template relation query
func TestMemoryWorkloadsByTemplate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	workloads := []*types.Workload{
		{ID: "fabriq-cloud:fabriq:cribbage", Name: "cribbage", TeamID: "fabriq-cloud:fabriq", TemplateID: "external-service"},
		{ID: "fabriq-cloud:fabriq:hello", Name: "hello", TeamID: "fabriq-cloud:fabriq", TemplateID: "external-service"},
		{ID: "fabriq-cloud:fabriq:worker", Name: "worker", TeamID: "fabriq-cloud:fabriq", TemplateID: "background-service"},
	}
	for _, workload := range workloads {
		if _, err := store.UpsertWorkload(ctx, workload); err != nil {
			t.Fatalf("UpsertWorkload(%s) error = %v", workload.ID, err)
		}
	}

	got, err := store.GetWorkloadsByTemplate(ctx, "external-service")
	if err != nil {
		t.Fatalf("GetWorkloadsByTemplate() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetWorkloadsByTemplate() returned %d workloads, want 2", len(got))
	}
	if got[0].Name != "cribbage" || got[1].Name != "hello" {
		t.Errorf("GetWorkloadsByTemplate() names = %q, %q, want cribbage, hello", got[0].Name, got[1].Name)
	}
}

// TestMemoryLabelMatching tests host and target containment queries
func TestMemoryLabelMatching(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	hosts := []*types.Host{
		{ID: "azure-eastus2-1", Labels: []string{"location:eastus2", "cloud:azure"}},
		{ID: "azure-westus3-1", Labels: []string{"location:westus3", "cloud:azure"}},
		{ID: "aws-useast1-1", Labels: []string{"location:useast1", "cloud:aws"}},
	}
	for _, host := range hosts {
		if _, err := store.UpsertHost(ctx, host); err != nil {
			t.Fatalf("UpsertHost(%s) error = %v", host.ID, err)
		}
	}

	targets := []*types.Target{
		{ID: "azure", Labels: []string{"cloud:azure"}},
		{ID: "eastus2", Labels: []string{"location:eastus2", "cloud:azure"}},
		{ID: "all", Labels: []string{}},
	}
	for _, target := range targets {
		if _, err := store.UpsertTarget(ctx, target); err != nil {
			t.Fatalf("UpsertTarget(%s) error = %v", target.ID, err)
		}
	}

	azureHosts, err := store.GetHostsMatchingTarget(ctx, targets[0])
	if err != nil {
		t.Fatalf("GetHostsMatchingTarget() error = %v", err)
	}
	if len(azureHosts) != 2 {
		t.Errorf("GetHostsMatchingTarget(azure) returned %d hosts, want 2", len(azureHosts))
	}

	eastusHosts, err := store.GetHostsMatchingTarget(ctx, targets[1])
	if err != nil {
		t.Fatalf("GetHostsMatchingTarget() error = %v", err)
	}
	if len(eastusHosts) != 1 || eastusHosts[0].ID != "azure-eastus2-1" {
		t.Errorf("GetHostsMatchingTarget(eastus2) = %v, want [azure-eastus2-1]", eastusHosts)
	}

	allHosts, err := store.GetHostsMatchingTarget(ctx, targets[2])
	if err != nil {
		t.Fatalf("GetHostsMatchingTarget() error = %v", err)
	}
	if len(allHosts) != 3 {
		t.Errorf("GetHostsMatchingTarget(all) returned %d hosts, want 3", len(allHosts))
	}

	// The eastus2 host satisfies all three targets; the aws host only the
	// label-free one.
	matched, err := store.GetTargetsMatchingHost(ctx, hosts[0])
	if err != nil {
		t.Fatalf("GetTargetsMatchingHost() error = %v", err)
	}
	if len(matched) != 3 {
		t.Errorf("GetTargetsMatchingHost(azure-eastus2-1) returned %d targets, want 3", len(matched))
	}

	matched, err = store.GetTargetsMatchingHost(ctx, hosts[2])
	if err != nil {
		t.Fatalf("GetTargetsMatchingHost() error = %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "all" {
		t.Errorf("GetTargetsMatchingHost(aws-useast1-1) = %v, want [all]", matched)
	}
}

// TestMemoryCloneIsolation tests callers cannot mutate stored records
func TestMemoryCloneIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &types.Host{ID: "host-1", Labels: []string{"cloud:azure"}}
	if _, err := store.UpsertHost(ctx, original); err != nil {
		t.Fatalf("UpsertHost() error = %v", err)
	}

	// Mutating the caller's record after upsert must not change the store.
	original.Labels[0] = "cloud:aws"

	stored, err := store.GetHost(ctx, "host-1")
	if err != nil {
		t.Fatalf("GetHost() error = %v", err)
	}
	if stored.Labels[0] != "cloud:azure" {
		t.Errorf("stored host labels mutated through caller's slice: %v", stored.Labels)
	}

	// Mutating a returned record must not change the store either.
	stored.Labels[0] = "cloud:gcp"

	again, err := store.GetHost(ctx, "host-1")
	if err != nil {
		t.Fatalf("GetHost() error = %v", err)
	}
	if again.Labels[0] != "cloud:azure" {
		t.Errorf("stored host labels mutated through returned record: %v", again.Labels)
	}
}

// TestMemoryTemplateRoundTrip tests template fields survive storage
func TestMemoryTemplateRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	template := &types.Template{
		ID:         "external-service",
		Repository: "https://github.com/fabriq-cloud/fabriq",
		GitRef:     "main",
		Path:       "templates/external-service",
	}
	if _, err := store.UpsertTemplate(ctx, template); err != nil {
		t.Fatalf("UpsertTemplate() error = %v", err)
	}

	got, err := store.GetTemplate(ctx, "external-service")
	if err != nil {
		t.Fatalf("GetTemplate() error = %v", err)
	}
	if got.Repository != template.Repository || got.GitRef != template.GitRef || got.Path != template.Path {
		t.Errorf("GetTemplate() = %+v, want %+v", got, template)
	}
}
