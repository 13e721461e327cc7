package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
)

type hostServer struct {
	proto.UnimplementedHostServer
	hosts *services.HostService
}

func newHostServer(hosts *services.HostService) *hostServer {
	return &hostServer{hosts: hosts}
}

func (s *hostServer) Upsert(ctx context.Context, msg *proto.HostMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.hosts.Upsert(ctx, hostFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *hostServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.hosts.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *hostServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListHostsResponse, error) {
	hosts, err := s.hosts.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	messages := make([]*proto.HostMessage, len(hosts))
	for i, host := range hosts {
		messages[i] = hostToProto(host)
	}
	return &proto.ListHostsResponse{Hosts: messages}, nil
}
