package api

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/github"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

type configServer struct {
	proto.UnimplementedConfigServer
	configs     *services.ConfigService
	deployments *services.DeploymentService
	workloads   *services.WorkloadService
	oracle      github.TeamOracle
}

func newConfigServer(configs *services.ConfigService, deployments *services.DeploymentService, workloads *services.WorkloadService, oracle github.TeamOracle) *configServer {
	return &configServer{
		configs:     configs,
		deployments: deployments,
		workloads:   workloads,
		oracle:      oracle,
	}
}

func (s *configServer) Upsert(ctx context.Context, msg *proto.ConfigMessage) (*proto.OperationIdResponse, error) {
	config := configFromProto(msg)

	if err := s.authorize(ctx, config); err != nil {
		return nil, err
	}

	operationID, err := s.configs.Upsert(ctx, config, "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *configServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	config, err := s.configs.Get(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}

	if err := s.authorize(ctx, config); err != nil {
		return nil, err
	}

	operationID, err := s.configs.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *configServer) Query(ctx context.Context, req *proto.QueryConfigRequest) (*proto.QueryConfigResponse, error) {
	configs, err := s.configs.Query(ctx, req.GetModelName(), req.GetModelId())
	if err != nil {
		return nil, statusFromError(err)
	}

	messages := make([]*proto.ConfigMessage, len(configs))
	for i, config := range configs {
		messages[i] = configToProto(config)
	}
	return &proto.QueryConfigResponse{Configs: messages}, nil
}

// authorize resolves the config's owning model to a workload and requires
// the caller's token to belong to the workload's team. Template-owned
// configs are not team-owned, so token presence suffices for them.
func (s *configServer) authorize(ctx context.Context, config *types.Config) error {
	kind, modelID, err := types.SplitOwningModel(config.OwningModel)
	if err != nil {
		return statusFromError(err)
	}

	var teamID string
	switch kind {
	case types.OwnerDeployment:
		deployment, err := s.deployments.Get(ctx, modelID)
		if err != nil {
			return statusFromError(err)
		}
		workload, err := s.workloads.Get(ctx, deployment.WorkloadID)
		if err != nil {
			return statusFromError(err)
		}
		teamID = workload.TeamID
	case types.OwnerWorkload:
		workload, err := s.workloads.Get(ctx, modelID)
		if err != nil {
			return statusFromError(err)
		}
		teamID = workload.TeamID
	case types.OwnerTemplate:
		return nil
	}

	token, ok := tokenFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing authorization header")
	}

	member, err := s.oracle.IsTeamMember(ctx, token, teamID)
	if err != nil {
		return status.Errorf(codes.Internal, "membership check for team %s failed: %v", teamID, err)
	}
	if !member {
		return status.Errorf(codes.PermissionDenied, "not a member of team %s", teamID)
	}
	return nil
}
