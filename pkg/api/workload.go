package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
)

type workloadServer struct {
	proto.UnimplementedWorkloadServer
	workloads *services.WorkloadService
}

func newWorkloadServer(workloads *services.WorkloadService) *workloadServer {
	return &workloadServer{workloads: workloads}
}

func (s *workloadServer) Upsert(ctx context.Context, msg *proto.WorkloadMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.workloads.Upsert(ctx, workloadFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *workloadServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.workloads.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *workloadServer) GetById(ctx context.Context, req *proto.IdRequest) (*proto.WorkloadMessage, error) {
	workload, err := s.workloads.Get(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return workloadToProto(workload), nil
}

func (s *workloadServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListWorkloadsResponse, error) {
	workloads, err := s.workloads.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	messages := make([]*proto.WorkloadMessage, len(workloads))
	for i, workload := range workloads {
		messages[i] = workloadToProto(workload)
	}
	return &proto.ListWorkloadsResponse{Workloads: messages}, nil
}
