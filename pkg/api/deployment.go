package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

type deploymentServer struct {
	proto.UnimplementedDeploymentServer
	deployments *services.DeploymentService
}

func newDeploymentServer(deployments *services.DeploymentService) *deploymentServer {
	return &deploymentServer{deployments: deployments}
}

func (s *deploymentServer) Upsert(ctx context.Context, msg *proto.DeploymentMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.deployments.Upsert(ctx, deploymentFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *deploymentServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.deployments.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *deploymentServer) GetById(ctx context.Context, req *proto.IdRequest) (*proto.DeploymentMessage, error) {
	deployment, err := s.deployments.Get(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return deploymentToProto(deployment), nil
}

func (s *deploymentServer) GetByTemplateId(ctx context.Context, req *proto.TemplateIdRequest) (*proto.ListDeploymentsResponse, error) {
	deployments, err := s.deployments.GetByTemplate(ctx, req.GetTemplateId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return listDeploymentsResponse(deployments), nil
}

func (s *deploymentServer) GetByWorkloadId(ctx context.Context, req *proto.WorkloadIdRequest) (*proto.ListDeploymentsResponse, error) {
	deployments, err := s.deployments.GetByWorkload(ctx, req.GetWorkloadId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return listDeploymentsResponse(deployments), nil
}

func (s *deploymentServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListDeploymentsResponse, error) {
	deployments, err := s.deployments.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}
	return listDeploymentsResponse(deployments), nil
}

func listDeploymentsResponse(deployments []*types.Deployment) *proto.ListDeploymentsResponse {
	messages := make([]*proto.DeploymentMessage, len(deployments))
	for i, deployment := range deployments {
		messages[i] = deploymentToProto(deployment)
	}
	return &proto.ListDeploymentsResponse{Deployments: messages}
}
