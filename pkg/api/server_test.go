package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/github"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
)

// testEnv bundles the grpc handlers over in-memory storage so tests can call
// them directly, without a listener.
type testEnv struct {
	svc    *services.Services
	oracle *github.StaticOracle

	assignments *assignmentServer
	configs     *configServer
	deployments *deploymentServer
	hosts       *hostServer
	targets     *targetServer
	templates   *templateServer
	workloads   *workloadServer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	svc := services.New(storage.NewMemoryStore(), stream.NewMemoryStream(stream.DefaultSubscribers()))
	oracle := &github.StaticOracle{Member: true}

	return &testEnv{
		svc:         svc,
		oracle:      oracle,
		assignments: newAssignmentServer(svc.Assignments),
		configs:     newConfigServer(svc.Configs, svc.Deployments, svc.Workloads, oracle),
		deployments: newDeploymentServer(svc.Deployments),
		hosts:       newHostServer(svc.Hosts),
		targets:     newTargetServer(svc.Targets),
		templates:   newTemplateServer(svc.Templates),
		workloads:   newWorkloadServer(svc.Workloads),
	}
}

// seedGraph creates a template, target, workload and deployment through the
// grpc handlers and returns the deployment id.
func (env *testEnv) seedGraph(ctx context.Context, t *testing.T) string {
	t.Helper()

	_, err := env.templates.Upsert(ctx, &proto.TemplateMessage{
		Id:         "external-service",
		Repository: "https://github.com/fabriq-cloud/templates",
		GitRef:     "main",
		Path:       "external-service",
	})
	require.NoError(t, err)

	_, err = env.targets.Upsert(ctx, &proto.TargetMessage{
		Id:     "eastus2",
		Labels: []string{"region:eastus2"},
	})
	require.NoError(t, err)

	_, err = env.workloads.Upsert(ctx, &proto.WorkloadMessage{
		Name:       "cribbage",
		TeamId:     "fabriq-cloud:fabriq",
		TemplateId: "external-service",
	})
	require.NoError(t, err)

	_, err = env.deployments.Upsert(ctx, &proto.DeploymentMessage{
		Name:       "prod",
		WorkloadId: "fabriq-cloud:fabriq:cribbage",
		TargetId:   "eastus2",
		HostCount:  2,
	})
	require.NoError(t, err)

	return "fabriq-cloud:fabriq:cribbage:prod"
}

// TestHostRoundTrip tests upsert, list and delete through the host handlers
func TestHostRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.hosts.Upsert(ctx, &proto.HostMessage{
		Id:     "azure-eastus2-1",
		Labels: []string{"region:eastus2", "cloud:azure"},
	})
	require.NoError(t, err)
	assert.Len(t, created.GetId(), 36)

	list, err := env.hosts.List(ctx, &proto.ListRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetHosts(), 1)
	assert.Equal(t, "azure-eastus2-1", list.GetHosts()[0].GetId())
	assert.Equal(t, []string{"region:eastus2", "cloud:azure"}, list.GetHosts()[0].GetLabels())

	deleted, err := env.hosts.Delete(ctx, &proto.IdRequest{Id: "azure-eastus2-1"})
	require.NoError(t, err)
	assert.Len(t, deleted.GetId(), 36)

	_, err = env.hosts.Delete(ctx, &proto.IdRequest{Id: "azure-eastus2-1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestUpsertValidationFailure tests that malformed messages map to InvalidArgument
func TestUpsertValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.hosts.Upsert(ctx, &proto.HostMessage{Labels: []string{"region:eastus2"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.workloads.Upsert(ctx, &proto.WorkloadMessage{
		Name:       "cribbage",
		TeamId:     "fabriq-cloud:fabriq",
		TemplateId: "missing-template",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestDeploymentQueries tests id derivation and the by-workload and
// by-template lookups
func TestDeploymentQueries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	deploymentID := env.seedGraph(ctx, t)

	byID, err := env.deployments.GetById(ctx, &proto.IdRequest{Id: deploymentID})
	require.NoError(t, err)
	assert.Equal(t, "prod", byID.GetName())
	assert.Equal(t, int32(2), byID.GetHostCount())

	byWorkload, err := env.deployments.GetByWorkloadId(ctx, &proto.WorkloadIdRequest{
		WorkloadId: "fabriq-cloud:fabriq:cribbage",
	})
	require.NoError(t, err)
	require.Len(t, byWorkload.GetDeployments(), 1)
	assert.Equal(t, deploymentID, byWorkload.GetDeployments()[0].GetId())

	_, err = env.templates.Upsert(ctx, &proto.TemplateMessage{
		Id:         "canary-service",
		Repository: "https://github.com/fabriq-cloud/templates",
		GitRef:     "main",
		Path:       "canary-service",
	})
	require.NoError(t, err)

	_, err = env.deployments.Upsert(ctx, &proto.DeploymentMessage{
		Name:       "canary",
		WorkloadId: "fabriq-cloud:fabriq:cribbage",
		TargetId:   "eastus2",
		TemplateId: "canary-service",
		HostCount:  1,
	})
	require.NoError(t, err)

	byTemplate, err := env.deployments.GetByTemplateId(ctx, &proto.TemplateIdRequest{
		TemplateId: "canary-service",
	})
	require.NoError(t, err)
	require.Len(t, byTemplate.GetDeployments(), 1)
	assert.Equal(t, "fabriq-cloud:fabriq:cribbage:canary", byTemplate.GetDeployments()[0].GetId())

	_, err = env.deployments.GetById(ctx, &proto.IdRequest{Id: "fabriq-cloud:fabriq:cribbage:missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestAssignmentsReadBack tests the assignment read endpoints against rows
// written through the assignment service
func TestAssignmentsReadBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	deploymentID := env.seedGraph(ctx, t)

	_, err := env.hosts.Upsert(ctx, &proto.HostMessage{
		Id:     "azure-eastus2-1",
		Labels: []string{"region:eastus2"},
	})
	require.NoError(t, err)

	_, err = env.assignments.Upsert(ctx, &proto.AssignmentMessage{
		DeploymentId: deploymentID,
		HostId:       "azure-eastus2-1",
	})
	require.NoError(t, err)

	byDeployment, err := env.assignments.GetByDeploymentId(ctx, &proto.DeploymentIdRequest{
		DeploymentId: deploymentID,
	})
	require.NoError(t, err)
	require.Len(t, byDeployment.GetAssignments(), 1)
	assert.Equal(t, deploymentID+"-azure-eastus2-1", byDeployment.GetAssignments()[0].GetId())

	list, err := env.assignments.List(ctx, &proto.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, list.GetAssignments(), 1)
}
