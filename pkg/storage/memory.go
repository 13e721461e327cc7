package storage

import (
	"context"
	"sync"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// MemoryStore keeps all control plane state in process memory.
// Used by tests and by servers running without a DATABASE_URL.
//
// Records are kept in insertion order so listings and reconciliation
// are deterministic, matching the sequenced ordering of the
// PostgreSQL store.
type MemoryStore struct {
	mu sync.RWMutex

	assignments map[string]*types.Assignment
	configs     map[string]*types.Config
	deployments map[string]*types.Deployment
	hosts       map[string]*types.Host
	targets     map[string]*types.Target
	templates   map[string]*types.Template
	workloads   map[string]*types.Workload

	assignmentOrder []string
	configOrder     []string
	deploymentOrder []string
	hostOrder       []string
	targetOrder     []string
	templateOrder   []string
	workloadOrder   []string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assignments: make(map[string]*types.Assignment),
		configs:     make(map[string]*types.Config),
		deployments: make(map[string]*types.Deployment),
		hosts:       make(map[string]*types.Host),
		targets:     make(map[string]*types.Target),
		templates:   make(map[string]*types.Template),
		workloads:   make(map[string]*types.Workload),
	}
}

// Assignments

func (s *MemoryStore) UpsertAssignment(ctx context.Context, assignment *types.Assignment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.assignments[assignment.ID]
	if ok && assignmentsEqual(existing, assignment) {
		return 0, nil
	}
	if !ok {
		s.assignmentOrder = append(s.assignmentOrder, assignment.ID)
	}
	s.assignments[assignment.ID] = cloneAssignment(assignment)
	return 1, nil
}

func (s *MemoryStore) GetAssignment(ctx context.Context, id string) (*types.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignment, ok := s.assignments[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneAssignment(assignment), nil
}

func (s *MemoryStore) GetAssignmentsByDeployment(ctx context.Context, deploymentID string) ([]*types.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignments := []*types.Assignment{}
	for _, id := range s.assignmentOrder {
		if assignment := s.assignments[id]; assignment.DeploymentID == deploymentID {
			assignments = append(assignments, cloneAssignment(assignment))
		}
	}
	return assignments, nil
}

func (s *MemoryStore) ListAssignments(ctx context.Context) ([]*types.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignments := make([]*types.Assignment, 0, len(s.assignmentOrder))
	for _, id := range s.assignmentOrder {
		assignments = append(assignments, cloneAssignment(s.assignments[id]))
	}
	return assignments, nil
}

func (s *MemoryStore) DeleteAssignment(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return 0, nil
	}
	delete(s.assignments, id)
	s.assignmentOrder = removeID(s.assignmentOrder, id)
	return 1, nil
}

// Configs

func (s *MemoryStore) UpsertConfig(ctx context.Context, config *types.Config) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.configs[config.ID]
	if ok && configsEqual(existing, config) {
		return 0, nil
	}
	if !ok {
		s.configOrder = append(s.configOrder, config.ID)
	}
	s.configs[config.ID] = cloneConfig(config)
	return 1, nil
}

func (s *MemoryStore) GetConfig(ctx context.Context, id string) (*types.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config, ok := s.configs[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneConfig(config), nil
}

func (s *MemoryStore) GetConfigsByOwner(ctx context.Context, owningModel string) ([]*types.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := []*types.Config{}
	for _, id := range s.configOrder {
		if config := s.configs[id]; config.OwningModel == owningModel {
			configs = append(configs, cloneConfig(config))
		}
	}
	return configs, nil
}

func (s *MemoryStore) ListConfigs(ctx context.Context) ([]*types.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := make([]*types.Config, 0, len(s.configOrder))
	for _, id := range s.configOrder {
		configs = append(configs, cloneConfig(s.configs[id]))
	}
	return configs, nil
}

func (s *MemoryStore) DeleteConfig(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[id]; !ok {
		return 0, nil
	}
	delete(s.configs, id)
	s.configOrder = removeID(s.configOrder, id)
	return 1, nil
}

// Deployments

func (s *MemoryStore) UpsertDeployment(ctx context.Context, deployment *types.Deployment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.deployments[deployment.ID]
	if ok && deploymentsEqual(existing, deployment) {
		return 0, nil
	}
	if !ok {
		s.deploymentOrder = append(s.deploymentOrder, deployment.ID)
	}
	s.deployments[deployment.ID] = cloneDeployment(deployment)
	return 1, nil
}

func (s *MemoryStore) GetDeployment(ctx context.Context, id string) (*types.Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deployment, ok := s.deployments[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneDeployment(deployment), nil
}

func (s *MemoryStore) GetDeploymentsByTarget(ctx context.Context, targetID string) ([]*types.Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deployments := []*types.Deployment{}
	for _, id := range s.deploymentOrder {
		if deployment := s.deployments[id]; deployment.TargetID == targetID {
			deployments = append(deployments, cloneDeployment(deployment))
		}
	}
	return deployments, nil
}

func (s *MemoryStore) GetDeploymentsByTemplate(ctx context.Context, templateID string) ([]*types.Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deployments := []*types.Deployment{}
	for _, id := range s.deploymentOrder {
		if deployment := s.deployments[id]; deployment.TemplateID == templateID {
			deployments = append(deployments, cloneDeployment(deployment))
		}
	}
	return deployments, nil
}

func (s *MemoryStore) GetDeploymentsByWorkload(ctx context.Context, workloadID string) ([]*types.Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deployments := []*types.Deployment{}
	for _, id := range s.deploymentOrder {
		if deployment := s.deployments[id]; deployment.WorkloadID == workloadID {
			deployments = append(deployments, cloneDeployment(deployment))
		}
	}
	return deployments, nil
}

func (s *MemoryStore) ListDeployments(ctx context.Context) ([]*types.Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deployments := make([]*types.Deployment, 0, len(s.deploymentOrder))
	for _, id := range s.deploymentOrder {
		deployments = append(deployments, cloneDeployment(s.deployments[id]))
	}
	return deployments, nil
}

func (s *MemoryStore) DeleteDeployment(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deployments[id]; !ok {
		return 0, nil
	}
	delete(s.deployments, id)
	s.deploymentOrder = removeID(s.deploymentOrder, id)
	return 1, nil
}

// Hosts

func (s *MemoryStore) UpsertHost(ctx context.Context, host *types.Host) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.hosts[host.ID]
	if ok && hostsEqual(existing, host) {
		return 0, nil
	}
	if !ok {
		s.hostOrder = append(s.hostOrder, host.ID)
	}
	s.hosts[host.ID] = cloneHost(host)
	return 1, nil
}

func (s *MemoryStore) GetHost(ctx context.Context, id string) (*types.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	host, ok := s.hosts[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneHost(host), nil
}

func (s *MemoryStore) GetHostsMatchingTarget(ctx context.Context, target *types.Target) ([]*types.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts := []*types.Host{}
	for _, id := range s.hostOrder {
		if host := s.hosts[id]; target.MatchesHost(host) {
			hosts = append(hosts, cloneHost(host))
		}
	}
	return hosts, nil
}

func (s *MemoryStore) ListHosts(ctx context.Context) ([]*types.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts := make([]*types.Host, 0, len(s.hostOrder))
	for _, id := range s.hostOrder {
		hosts = append(hosts, cloneHost(s.hosts[id]))
	}
	return hosts, nil
}

func (s *MemoryStore) DeleteHost(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hosts[id]; !ok {
		return 0, nil
	}
	delete(s.hosts, id)
	s.hostOrder = removeID(s.hostOrder, id)
	return 1, nil
}

// Targets

func (s *MemoryStore) UpsertTarget(ctx context.Context, target *types.Target) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.targets[target.ID]
	if ok && targetsEqual(existing, target) {
		return 0, nil
	}
	if !ok {
		s.targetOrder = append(s.targetOrder, target.ID)
	}
	s.targets[target.ID] = cloneTarget(target)
	return 1, nil
}

func (s *MemoryStore) GetTarget(ctx context.Context, id string) (*types.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.targets[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneTarget(target), nil
}

func (s *MemoryStore) GetTargetsMatchingHost(ctx context.Context, host *types.Host) ([]*types.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	targets := []*types.Target{}
	for _, id := range s.targetOrder {
		if target := s.targets[id]; target.MatchesHost(host) {
			targets = append(targets, cloneTarget(target))
		}
	}
	return targets, nil
}

func (s *MemoryStore) ListTargets(ctx context.Context) ([]*types.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	targets := make([]*types.Target, 0, len(s.targetOrder))
	for _, id := range s.targetOrder {
		targets = append(targets, cloneTarget(s.targets[id]))
	}
	return targets, nil
}

func (s *MemoryStore) DeleteTarget(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.targets[id]; !ok {
		return 0, nil
	}
	delete(s.targets, id)
	s.targetOrder = removeID(s.targetOrder, id)
	return 1, nil
}

// Templates

func (s *MemoryStore) UpsertTemplate(ctx context.Context, template *types.Template) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.templates[template.ID]
	if ok && templatesEqual(existing, template) {
		return 0, nil
	}
	if !ok {
		s.templateOrder = append(s.templateOrder, template.ID)
	}
	s.templates[template.ID] = cloneTemplate(template)
	return 1, nil
}

func (s *MemoryStore) GetTemplate(ctx context.Context, id string) (*types.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, ok := s.templates[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneTemplate(template), nil
}

func (s *MemoryStore) ListTemplates(ctx context.Context) ([]*types.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates := make([]*types.Template, 0, len(s.templateOrder))
	for _, id := range s.templateOrder {
		templates = append(templates, cloneTemplate(s.templates[id]))
	}
	return templates, nil
}

func (s *MemoryStore) DeleteTemplate(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return 0, nil
	}
	delete(s.templates, id)
	s.templateOrder = removeID(s.templateOrder, id)
	return 1, nil
}

// Workloads

func (s *MemoryStore) UpsertWorkload(ctx context.Context, workload *types.Workload) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.workloads[workload.ID]
	if ok && workloadsEqual(existing, workload) {
		return 0, nil
	}
	if !ok {
		s.workloadOrder = append(s.workloadOrder, workload.ID)
	}
	s.workloads[workload.ID] = cloneWorkload(workload)
	return 1, nil
}

func (s *MemoryStore) GetWorkload(ctx context.Context, id string) (*types.Workload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workload, ok := s.workloads[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return cloneWorkload(workload), nil
}

func (s *MemoryStore) GetWorkloadsByTemplate(ctx context.Context, templateID string) ([]*types.Workload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workloads := []*types.Workload{}
	for _, id := range s.workloadOrder {
		if workload := s.workloads[id]; workload.TemplateID == templateID {
			workloads = append(workloads, cloneWorkload(workload))
		}
	}
	return workloads, nil
}

func (s *MemoryStore) ListWorkloads(ctx context.Context) ([]*types.Workload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workloads := make([]*types.Workload, 0, len(s.workloadOrder))
	for _, id := range s.workloadOrder {
		workloads = append(workloads, cloneWorkload(s.workloads[id]))
	}
	return workloads, nil
}

func (s *MemoryStore) DeleteWorkload(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workloads[id]; !ok {
		return 0, nil
	}
	delete(s.workloads, id)
	s.workloadOrder = removeID(s.workloadOrder, id)
	return 1, nil
}

// Close releases nothing for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

// Helpers

func removeID(order []string, id string) []string {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func labelsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assignmentsEqual(a, b *types.Assignment) bool {
	return a.ID == b.ID && a.DeploymentID == b.DeploymentID && a.HostID == b.HostID
}

func configsEqual(a, b *types.Config) bool {
	return a.ID == b.ID && a.OwningModel == b.OwningModel &&
		a.Key == b.Key && a.Value == b.Value && a.ValueType == b.ValueType
}

func deploymentsEqual(a, b *types.Deployment) bool {
	return a.ID == b.ID && a.Name == b.Name && a.WorkloadID == b.WorkloadID &&
		a.TargetID == b.TargetID && a.TemplateID == b.TemplateID && a.HostCount == b.HostCount
}

func hostsEqual(a, b *types.Host) bool {
	return a.ID == b.ID && labelsEqual(a.Labels, b.Labels)
}

func targetsEqual(a, b *types.Target) bool {
	return a.ID == b.ID && labelsEqual(a.Labels, b.Labels)
}

func templatesEqual(a, b *types.Template) bool {
	return a.ID == b.ID && a.Repository == b.Repository &&
		a.GitRef == b.GitRef && a.Path == b.Path
}

func workloadsEqual(a, b *types.Workload) bool {
	return a.ID == b.ID && a.Name == b.Name &&
		a.TeamID == b.TeamID && a.TemplateID == b.TemplateID
}

func cloneAssignment(a *types.Assignment) *types.Assignment {
	clone := *a
	return &clone
}

func cloneConfig(c *types.Config) *types.Config {
	clone := *c
	return &clone
}

func cloneDeployment(d *types.Deployment) *types.Deployment {
	clone := *d
	return &clone
}

func cloneHost(h *types.Host) *types.Host {
	clone := *h
	clone.Labels = append([]string(nil), h.Labels...)
	return &clone
}

func cloneTarget(t *types.Target) *types.Target {
	clone := *t
	clone.Labels = append([]string(nil), t.Labels...)
	return &clone
}

func cloneTemplate(t *types.Template) *types.Template {
	clone := *t
	return &clone
}

func cloneWorkload(w *types.Workload) *types.Workload {
	clone := *w
	return &clone
}
