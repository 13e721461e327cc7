package api

import (
	"context"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/services"
)

type templateServer struct {
	proto.UnimplementedTemplateServer
	templates *services.TemplateService
}

func newTemplateServer(templates *services.TemplateService) *templateServer {
	return &templateServer{templates: templates}
}

func (s *templateServer) Upsert(ctx context.Context, msg *proto.TemplateMessage) (*proto.OperationIdResponse, error) {
	operationID, err := s.templates.Upsert(ctx, templateFromProto(msg), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *templateServer) Delete(ctx context.Context, req *proto.IdRequest) (*proto.OperationIdResponse, error) {
	operationID, err := s.templates.Delete(ctx, req.GetId(), "")
	if err != nil {
		return nil, statusFromError(err)
	}
	return &proto.OperationIdResponse{Id: operationID}, nil
}

func (s *templateServer) GetById(ctx context.Context, req *proto.IdRequest) (*proto.TemplateMessage, error) {
	template, err := s.templates.Get(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return templateToProto(template), nil
}

func (s *templateServer) List(ctx context.Context, _ *proto.ListRequest) (*proto.ListTemplatesResponse, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	messages := make([]*proto.TemplateMessage, len(templates))
	for i, template := range templates {
		messages[i] = templateToProto(template)
	}
	return &proto.ListTemplatesResponse{Templates: messages}, nil
}
