package api

import (
	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// Converters between wire messages and domain records. Wire messages carry
// the same fields as the domain types, so these are field-for-field copies.

func assignmentFromProto(msg *proto.AssignmentMessage) *types.Assignment {
	return &types.Assignment{
		ID:           msg.GetId(),
		DeploymentID: msg.GetDeploymentId(),
		HostID:       msg.GetHostId(),
	}
}

func assignmentToProto(assignment *types.Assignment) *proto.AssignmentMessage {
	return &proto.AssignmentMessage{
		Id:           assignment.ID,
		DeploymentId: assignment.DeploymentID,
		HostId:       assignment.HostID,
	}
}

func configFromProto(msg *proto.ConfigMessage) *types.Config {
	return &types.Config{
		ID:          msg.GetId(),
		OwningModel: msg.GetOwningModel(),
		Key:         msg.GetKey(),
		Value:       msg.GetValue(),
		ValueType:   types.ConfigValueType(msg.GetValueType()),
	}
}

func configToProto(config *types.Config) *proto.ConfigMessage {
	return &proto.ConfigMessage{
		Id:          config.ID,
		OwningModel: config.OwningModel,
		Key:         config.Key,
		Value:       config.Value,
		ValueType:   int32(config.ValueType),
	}
}

func deploymentFromProto(msg *proto.DeploymentMessage) *types.Deployment {
	return &types.Deployment{
		ID:         msg.GetId(),
		Name:       msg.GetName(),
		WorkloadID: msg.GetWorkloadId(),
		TargetID:   msg.GetTargetId(),
		TemplateID: msg.GetTemplateId(),
		HostCount:  msg.GetHostCount(),
	}
}

func deploymentToProto(deployment *types.Deployment) *proto.DeploymentMessage {
	return &proto.DeploymentMessage{
		Id:         deployment.ID,
		Name:       deployment.Name,
		WorkloadId: deployment.WorkloadID,
		TargetId:   deployment.TargetID,
		TemplateId: deployment.TemplateID,
		HostCount:  deployment.HostCount,
	}
}

func hostFromProto(msg *proto.HostMessage) *types.Host {
	return &types.Host{
		ID:     msg.GetId(),
		Labels: msg.GetLabels(),
	}
}

func hostToProto(host *types.Host) *proto.HostMessage {
	return &proto.HostMessage{
		Id:     host.ID,
		Labels: host.Labels,
	}
}

func targetFromProto(msg *proto.TargetMessage) *types.Target {
	return &types.Target{
		ID:     msg.GetId(),
		Labels: msg.GetLabels(),
	}
}

func targetToProto(target *types.Target) *proto.TargetMessage {
	return &proto.TargetMessage{
		Id:     target.ID,
		Labels: target.Labels,
	}
}

func templateFromProto(msg *proto.TemplateMessage) *types.Template {
	return &types.Template{
		ID:         msg.GetId(),
		Repository: msg.GetRepository(),
		GitRef:     msg.GetGitRef(),
		Path:       msg.GetPath(),
	}
}

func templateToProto(template *types.Template) *proto.TemplateMessage {
	return &proto.TemplateMessage{
		Id:         template.ID,
		Repository: template.Repository,
		GitRef:     template.GitRef,
		Path:       template.Path,
	}
}

func workloadFromProto(msg *proto.WorkloadMessage) *types.Workload {
	return &types.Workload{
		ID:         msg.GetId(),
		Name:       msg.GetName(),
		TeamID:     msg.GetTeamId(),
		TemplateID: msg.GetTemplateId(),
	}
}

func workloadToProto(workload *types.Workload) *proto.WorkloadMessage {
	return &proto.WorkloadMessage{
		Id:         workload.ID,
		Name:       workload.Name,
		TeamId:     workload.TeamID,
		TemplateId: workload.TemplateID,
	}
}
