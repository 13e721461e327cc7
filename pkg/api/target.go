package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
)

type targetServer struct {
	proto.UnimplementedTargetServer
	targets *services.TargetService
}

func newTargetServer(targets *services.TargetService) *targetServer {
	return &targetServer{targets: targets}
}

func (s *targetServer) Upsert(ctx context.Context, msg *proto.TargetMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.targets.Upsert(ctx, targetFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *targetServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.targets.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *targetServer) GetById(ctx context.Context, req *proto.IdRequest) (*proto.TargetMessage, error) {
	target, err := s.targets.Get(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return targetToProto(target), nil
}

func (s *targetServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListTargetsResponse, error) {
	targets, err := s.targets.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	messages := make([]*proto.TargetMessage, len(targets))
	for i, target := range targets {
		messages[i] = targetToProto(target)
	}
	return &proto.ListTargetsResponse{Targets: messages}, nil
}
