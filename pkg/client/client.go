package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/fabriq-cloud/fabriq/api/proto"
)

// defaultTimeout bounds every RPC issued through the convenience methods.
const defaultTimeout = 10 * time.Second

// Client wraps the Fabriq gRPC surface for CLI and tool usage. Every call
// carries the configured token as a bearer authorization header.
type Client struct {
	conn *grpc.ClientConn

	assignments proto.AssignmentClient
	configs     proto.ConfigClient
	deployments proto.DeploymentClient
	hosts       proto.HostClient
	targets     proto.TargetClient
	templates   proto.TemplateClient
	workloads   proto.WorkloadClient
	health      proto.HealthClient
}

// New connects to a Fabriq API endpoint. The transport is plaintext h2c;
// authentication rides in per-request metadata. Extra dial options are
// appended after the defaults.
func New(addr, token string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(bearerInterceptor(token)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}

	return &Client{
		conn:        conn,
		assignments: proto.NewAssignmentClient(conn),
		configs:     proto.NewConfigClient(conn),
		deployments: proto.NewDeploymentClient(conn),
		hosts:       proto.NewHostClient(conn),
		targets:     proto.NewTargetClient(conn),
		templates:   proto.NewTemplateClient(conn),
		workloads:   proto.NewWorkloadClient(conn),
		health:      proto.NewHealthClient(conn),
	}, nil
}

// bearerInterceptor stamps the authorization header on every outgoing call.
func bearerInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultTimeout)
}

// UpsertHost creates or updates a host and returns the operation id.
func (c *Client) UpsertHost(host *proto.HostMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.hosts.Upsert(ctx, host)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteHost deletes a host by id and returns the operation id.
func (c *Client) DeleteHost(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.hosts.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// ListHosts lists all hosts.
func (c *Client) ListHosts() ([]*proto.HostMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.hosts.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetHosts(), nil
}

// UpsertTarget creates or updates a target and returns the operation id.
func (c *Client) UpsertTarget(target *proto.TargetMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.targets.Upsert(ctx, target)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteTarget deletes a target by id and returns the operation id.
func (c *Client) DeleteTarget(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.targets.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetTarget gets a target by id.
func (c *Client) GetTarget(id string) (*proto.TargetMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	return c.targets.GetById(ctx, &proto.IdRequest{Id: id})
}

// ListTargets lists all targets.
func (c *Client) ListTargets() ([]*proto.TargetMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.targets.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetTargets(), nil
}

// UpsertTemplate creates or updates a template and returns the operation id.
func (c *Client) UpsertTemplate(template *proto.TemplateMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.templates.Upsert(ctx, template)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteTemplate deletes a template by id and returns the operation id.
func (c *Client) DeleteTemplate(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.templates.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetTemplate gets a template by id.
func (c *Client) GetTemplate(id string) (*proto.TemplateMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	return c.templates.GetById(ctx, &proto.IdRequest{Id: id})
}

// ListTemplates lists all templates.
func (c *Client) ListTemplates() ([]*proto.TemplateMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.templates.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetTemplates(), nil
}

// UpsertWorkload creates or updates a workload and returns the operation id.
func (c *Client) UpsertWorkload(workload *proto.WorkloadMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.workloads.Upsert(ctx, workload)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteWorkload deletes a workload by id and returns the operation id.
func (c *Client) DeleteWorkload(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.workloads.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetWorkload gets a workload by id.
func (c *Client) GetWorkload(id string) (*proto.WorkloadMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	return c.workloads.GetById(ctx, &proto.IdRequest{Id: id})
}

// ListWorkloads lists all workloads.
func (c *Client) ListWorkloads() ([]*proto.WorkloadMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.workloads.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetWorkloads(), nil
}

// UpsertDeployment creates or updates a deployment and returns the
// operation id.
func (c *Client) UpsertDeployment(deployment *proto.DeploymentMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.deployments.Upsert(ctx, deployment)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteDeployment deletes a deployment by id and returns the operation id.
func (c *Client) DeleteDeployment(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.deployments.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetDeployment gets a deployment by id.
func (c *Client) GetDeployment(id string) (*proto.DeploymentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	return c.deployments.GetById(ctx, &proto.IdRequest{Id: id})
}

// GetDeploymentsByWorkload lists the deployments of one workload.
func (c *Client) GetDeploymentsByWorkload(workloadID string) ([]*proto.DeploymentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.deployments.GetByWorkloadId(ctx, &proto.WorkloadIdRequest{WorkloadId: workloadID})
	if err != nil {
		return nil, err
	}
	return resp.GetDeployments(), nil
}

// GetDeploymentsByTemplate lists the deployments overriding to one template.
func (c *Client) GetDeploymentsByTemplate(templateID string) ([]*proto.DeploymentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.deployments.GetByTemplateId(ctx, &proto.TemplateIdRequest{TemplateId: templateID})
	if err != nil {
		return nil, err
	}
	return resp.GetDeployments(), nil
}

// ListDeployments lists all deployments.
func (c *Client) ListDeployments() ([]*proto.DeploymentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.deployments.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetDeployments(), nil
}

// UpsertAssignment creates or updates an assignment and returns the
// operation id.
func (c *Client) UpsertAssignment(assignment *proto.AssignmentMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.assignments.Upsert(ctx, assignment)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteAssignment deletes an assignment by id and returns the operation id.
func (c *Client) DeleteAssignment(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.assignments.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetAssignmentsByDeployment lists the assignments of one deployment.
func (c *Client) GetAssignmentsByDeployment(deploymentID string) ([]*proto.AssignmentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.assignments.GetByDeploymentId(ctx, &proto.DeploymentIdRequest{DeploymentId: deploymentID})
	if err != nil {
		return nil, err
	}
	return resp.GetAssignments(), nil
}

// ListAssignments lists all assignments.
func (c *Client) ListAssignments() ([]*proto.AssignmentMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.assignments.List(ctx, &proto.ListRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetAssignments(), nil
}

// UpsertConfig creates or updates a config and returns the operation id.
func (c *Client) UpsertConfig(config *proto.ConfigMessage) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.configs.Upsert(ctx, config)
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// DeleteConfig deletes a config by id and returns the operation id.
func (c *Client) DeleteConfig(id string) (string, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.configs.Delete(ctx, &proto.IdRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// QueryConfigs resolves the effective config set for a scope. modelName is
// template, workload, or deployment.
func (c *Client) QueryConfigs(modelName, modelID string) ([]*proto.ConfigMessage, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.configs.Query(ctx, &proto.QueryConfigRequest{
		ModelName: modelName,
		ModelId:   modelID,
	})
	if err != nil {
		return nil, err
	}
	return resp.GetConfigs(), nil
}

// CheckHealth pings the health service.
func (c *Client) CheckHealth() (bool, error) {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := c.health.Health(ctx, &proto.HealthRequest{})
	if err != nil {
		return false, err
	}
	return resp.GetOk(), nil
}
