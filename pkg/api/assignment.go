package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

type assignmentServer struct {
	proto.UnimplementedAssignmentServer
	assignments *services.AssignmentService
}

func newAssignmentServer(assignments *services.AssignmentService) *assignmentServer {
	return &assignmentServer{assignments: assignments}
}

func (s *assignmentServer) Upsert(ctx context.Context, msg *proto.AssignmentMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.assignments.Upsert(ctx, assignmentFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *assignmentServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.assignments.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *assignmentServer) GetByDeploymentId(ctx context.Context, req *proto.DeploymentIdRequest) (*proto.ListAssignmentsResponse, error) {
	assignments, err := s.assignments.GetByDeployment(ctx, req.GetDeploymentId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return listAssignmentsResponse(assignments), nil
}

func (s *assignmentServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListAssignmentsResponse, error) {
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}
	return listAssignmentsResponse(assignments), nil
}

func listAssignmentsResponse(assignments []*types.Assignment) *proto.ListAssignmentsResponse {
	messages := make([]*proto.AssignmentMessage, len(assignments))
	for i, assignment := range assignments {
		messages[i] = assignmentToProto(assignment)
	}
	return &proto.ListAssignmentsResponse{Assignments: messages}
}
