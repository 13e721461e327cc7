package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// Schema statements are idempotent so migration can run at every startup.
// The seq column is not part of the logical model; it gives listings and
// reconciliation a stable insertion order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assignments (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		deployment_id TEXT NOT NULL,
		host_id TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS assignments_deployment_id_idx ON assignments (deployment_id)`,
	`CREATE TABLE IF NOT EXISTS configs (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		owning_model TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		value_type INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS configs_owning_model_idx ON configs (owning_model)`,
	`CREATE TABLE IF NOT EXISTS deployments (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		workload_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		template_id TEXT,
		host_count INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS deployments_workload_id_idx ON deployments (workload_id)`,
	`CREATE INDEX IF NOT EXISTS deployments_target_id_idx ON deployments (target_id)`,
	`CREATE INDEX IF NOT EXISTS deployments_template_id_idx ON deployments (template_id)`,
	`CREATE TABLE IF NOT EXISTS hosts (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		labels TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS targets (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		labels TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS templates (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		repository TEXT NOT NULL,
		git_ref TEXT NOT NULL,
		path TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workloads (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		team_id TEXT NOT NULL,
		template_id TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS workloads_template_id_idx ON workloads (template_id)`,
}

// Upserts report 1 row affected only when the record was inserted or its
// content actually changed; an identical record is a no-op.
const (
	upsertAssignmentSQL = `
		INSERT INTO assignments (id, deployment_id, host_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET deployment_id = EXCLUDED.deployment_id,
		    host_id = EXCLUDED.host_id
		WHERE (assignments.deployment_id, assignments.host_id)
		      IS DISTINCT FROM (EXCLUDED.deployment_id, EXCLUDED.host_id)`
	getAssignmentSQL = `
		SELECT id, deployment_id, host_id FROM assignments WHERE id = $1`
	getAssignmentsByDeploymentSQL = `
		SELECT id, deployment_id, host_id FROM assignments
		WHERE deployment_id = $1 ORDER BY seq`
	listAssignmentsSQL = `
		SELECT id, deployment_id, host_id FROM assignments ORDER BY seq`
	deleteAssignmentSQL = `DELETE FROM assignments WHERE id = $1`

	upsertConfigSQL = `
		INSERT INTO configs (id, owning_model, key, value, value_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET owning_model = EXCLUDED.owning_model,
		    key = EXCLUDED.key,
		    value = EXCLUDED.value,
		    value_type = EXCLUDED.value_type
		WHERE (configs.owning_model, configs.key, configs.value, configs.value_type)
		      IS DISTINCT FROM (EXCLUDED.owning_model, EXCLUDED.key, EXCLUDED.value, EXCLUDED.value_type)`
	getConfigSQL = `
		SELECT id, owning_model, key, value, value_type FROM configs WHERE id = $1`
	getConfigsByOwnerSQL = `
		SELECT id, owning_model, key, value, value_type FROM configs
		WHERE owning_model = $1 ORDER BY seq`
	listConfigsSQL = `
		SELECT id, owning_model, key, value, value_type FROM configs ORDER BY seq`
	deleteConfigSQL = `DELETE FROM configs WHERE id = $1`

	upsertDeploymentSQL = `
		INSERT INTO deployments (id, name, workload_id, target_id, template_id, host_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    workload_id = EXCLUDED.workload_id,
		    target_id = EXCLUDED.target_id,
		    template_id = EXCLUDED.template_id,
		    host_count = EXCLUDED.host_count
		WHERE (deployments.name, deployments.workload_id, deployments.target_id, deployments.template_id, deployments.host_count)
		      IS DISTINCT FROM (EXCLUDED.name, EXCLUDED.workload_id, EXCLUDED.target_id, EXCLUDED.template_id, EXCLUDED.host_count)`
	getDeploymentSQL = `
		SELECT id, name, workload_id, target_id, COALESCE(template_id, ''), host_count
		FROM deployments WHERE id = $1`
	getDeploymentsByTargetSQL = `
		SELECT id, name, workload_id, target_id, COALESCE(template_id, ''), host_count
		FROM deployments WHERE target_id = $1 ORDER BY seq`
	getDeploymentsByTemplateSQL = `
		SELECT id, name, workload_id, target_id, COALESCE(template_id, ''), host_count
		FROM deployments WHERE template_id = $1 ORDER BY seq`
	getDeploymentsByWorkloadSQL = `
		SELECT id, name, workload_id, target_id, COALESCE(template_id, ''), host_count
		FROM deployments WHERE workload_id = $1 ORDER BY seq`
	listDeploymentsSQL = `
		SELECT id, name, workload_id, target_id, COALESCE(template_id, ''), host_count
		FROM deployments ORDER BY seq`
	deleteDeploymentSQL = `DELETE FROM deployments WHERE id = $1`

	upsertHostSQL = `
		INSERT INTO hosts (id, labels)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET labels = EXCLUDED.labels
		WHERE hosts.labels IS DISTINCT FROM EXCLUDED.labels`
	getHostSQL = `SELECT id, labels FROM hosts WHERE id = $1`
	getHostsMatchingTargetSQL = `
		SELECT id, labels FROM hosts WHERE labels @> $1 ORDER BY seq`
	listHostsSQL  = `SELECT id, labels FROM hosts ORDER BY seq`
	deleteHostSQL = `DELETE FROM hosts WHERE id = $1`

	upsertTargetSQL = `
		INSERT INTO targets (id, labels)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET labels = EXCLUDED.labels
		WHERE targets.labels IS DISTINCT FROM EXCLUDED.labels`
	getTargetSQL = `SELECT id, labels FROM targets WHERE id = $1`
	getTargetsMatchingHostSQL = `
		SELECT id, labels FROM targets WHERE labels <@ $1 ORDER BY seq`
	listTargetsSQL  = `SELECT id, labels FROM targets ORDER BY seq`
	deleteTargetSQL = `DELETE FROM targets WHERE id = $1`

	upsertTemplateSQL = `
		INSERT INTO templates (id, repository, git_ref, path)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET repository = EXCLUDED.repository,
		    git_ref = EXCLUDED.git_ref,
		    path = EXCLUDED.path
		WHERE (templates.repository, templates.git_ref, templates.path)
		      IS DISTINCT FROM (EXCLUDED.repository, EXCLUDED.git_ref, EXCLUDED.path)`
	getTemplateSQL   = `SELECT id, repository, git_ref, path FROM templates WHERE id = $1`
	listTemplatesSQL = `SELECT id, repository, git_ref, path FROM templates ORDER BY seq`
	deleteTemplateSQL = `DELETE FROM templates WHERE id = $1`

	upsertWorkloadSQL = `
		INSERT INTO workloads (id, name, team_id, template_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    team_id = EXCLUDED.team_id,
		    template_id = EXCLUDED.template_id
		WHERE (workloads.name, workloads.team_id, workloads.template_id)
		      IS DISTINCT FROM (EXCLUDED.name, EXCLUDED.team_id, EXCLUDED.template_id)`
	getWorkloadSQL = `
		SELECT id, name, team_id, template_id FROM workloads WHERE id = $1`
	getWorkloadsByTemplateSQL = `
		SELECT id, name, team_id, template_id FROM workloads
		WHERE template_id = $1 ORDER BY seq`
	listWorkloadsSQL = `
		SELECT id, name, team_id, template_id FROM workloads ORDER BY seq`
	deleteWorkloadSQL = `DELETE FROM workloads WHERE id = $1`
)

// PostgresStore persists control plane state in PostgreSQL
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect opens a PostgreSQL connection pool and verifies connectivity
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return pool, nil
}

// NewPostgresStore creates a store backed by an existing connection pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the entity tables if they do not exist
func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}
	return nil
}

// Assignments

func (s *PostgresStore) UpsertAssignment(ctx context.Context, assignment *types.Assignment) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertAssignmentSQL,
		assignment.ID, assignment.DeploymentID, assignment.HostID)
	if err != nil {
		return 0, fmt.Errorf("upserting assignment %s: %w", assignment.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetAssignment(ctx context.Context, id string) (*types.Assignment, error) {
	var assignment types.Assignment
	err := s.pool.QueryRow(ctx, getAssignmentSQL, id).
		Scan(&assignment.ID, &assignment.DeploymentID, &assignment.HostID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting assignment %s: %w", id, err)
	}
	return &assignment, nil
}

func (s *PostgresStore) GetAssignmentsByDeployment(ctx context.Context, deploymentID string) ([]*types.Assignment, error) {
	return s.queryAssignments(ctx, getAssignmentsByDeploymentSQL, deploymentID)
}

func (s *PostgresStore) ListAssignments(ctx context.Context) ([]*types.Assignment, error) {
	return s.queryAssignments(ctx, listAssignmentsSQL)
}

func (s *PostgresStore) queryAssignments(ctx context.Context, sql string, args ...any) ([]*types.Assignment, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*types.Assignment{}
	for rows.Next() {
		var assignment types.Assignment
		if err := rows.Scan(&assignment.ID, &assignment.DeploymentID, &assignment.HostID); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignments = append(assignments, &assignment)
	}
	return assignments, rows.Err()
}

func (s *PostgresStore) DeleteAssignment(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteAssignmentSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting assignment %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Configs

func (s *PostgresStore) UpsertConfig(ctx context.Context, config *types.Config) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertConfigSQL,
		config.ID, config.OwningModel, config.Key, config.Value, config.ValueType)
	if err != nil {
		return 0, fmt.Errorf("upserting config %s: %w", config.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetConfig(ctx context.Context, id string) (*types.Config, error) {
	var config types.Config
	err := s.pool.QueryRow(ctx, getConfigSQL, id).
		Scan(&config.ID, &config.OwningModel, &config.Key, &config.Value, &config.ValueType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting config %s: %w", id, err)
	}
	return &config, nil
}

func (s *PostgresStore) GetConfigsByOwner(ctx context.Context, owningModel string) ([]*types.Config, error) {
	return s.queryConfigs(ctx, getConfigsByOwnerSQL, owningModel)
}

func (s *PostgresStore) ListConfigs(ctx context.Context) ([]*types.Config, error) {
	return s.queryConfigs(ctx, listConfigsSQL)
}

func (s *PostgresStore) queryConfigs(ctx context.Context, sql string, args ...any) ([]*types.Config, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying configs: %w", err)
	}
	defer rows.Close()

	configs := []*types.Config{}
	for rows.Next() {
		var config types.Config
		if err := rows.Scan(&config.ID, &config.OwningModel, &config.Key, &config.Value, &config.ValueType); err != nil {
			return nil, fmt.Errorf("scanning config: %w", err)
		}
		configs = append(configs, &config)
	}
	return configs, rows.Err()
}

func (s *PostgresStore) DeleteConfig(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteConfigSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting config %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Deployments

func (s *PostgresStore) UpsertDeployment(ctx context.Context, deployment *types.Deployment) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertDeploymentSQL,
		deployment.ID, deployment.Name, deployment.WorkloadID, deployment.TargetID,
		nullableID(deployment.TemplateID), deployment.HostCount)
	if err != nil {
		return 0, fmt.Errorf("upserting deployment %s: %w", deployment.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetDeployment(ctx context.Context, id string) (*types.Deployment, error) {
	var deployment types.Deployment
	err := s.pool.QueryRow(ctx, getDeploymentSQL, id).
		Scan(&deployment.ID, &deployment.Name, &deployment.WorkloadID,
			&deployment.TargetID, &deployment.TemplateID, &deployment.HostCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting deployment %s: %w", id, err)
	}
	return &deployment, nil
}

func (s *PostgresStore) GetDeploymentsByTarget(ctx context.Context, targetID string) ([]*types.Deployment, error) {
	return s.queryDeployments(ctx, getDeploymentsByTargetSQL, targetID)
}

func (s *PostgresStore) GetDeploymentsByTemplate(ctx context.Context, templateID string) ([]*types.Deployment, error) {
	return s.queryDeployments(ctx, getDeploymentsByTemplateSQL, templateID)
}

func (s *PostgresStore) GetDeploymentsByWorkload(ctx context.Context, workloadID string) ([]*types.Deployment, error) {
	return s.queryDeployments(ctx, getDeploymentsByWorkloadSQL, workloadID)
}

func (s *PostgresStore) ListDeployments(ctx context.Context) ([]*types.Deployment, error) {
	return s.queryDeployments(ctx, listDeploymentsSQL)
}

func (s *PostgresStore) queryDeployments(ctx context.Context, sql string, args ...any) ([]*types.Deployment, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying deployments: %w", err)
	}
	defer rows.Close()

	deployments := []*types.Deployment{}
	for rows.Next() {
		var deployment types.Deployment
		if err := rows.Scan(&deployment.ID, &deployment.Name, &deployment.WorkloadID,
			&deployment.TargetID, &deployment.TemplateID, &deployment.HostCount); err != nil {
			return nil, fmt.Errorf("scanning deployment: %w", err)
		}
		deployments = append(deployments, &deployment)
	}
	return deployments, rows.Err()
}

func (s *PostgresStore) DeleteDeployment(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteDeploymentSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting deployment %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Hosts

func (s *PostgresStore) UpsertHost(ctx context.Context, host *types.Host) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertHostSQL, host.ID, host.Labels)
	if err != nil {
		return 0, fmt.Errorf("upserting host %s: %w", host.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetHost(ctx context.Context, id string) (*types.Host, error) {
	var host types.Host
	err := s.pool.QueryRow(ctx, getHostSQL, id).Scan(&host.ID, &host.Labels)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting host %s: %w", id, err)
	}
	return &host, nil
}

// GetHostsMatchingTarget returns hosts whose labels contain every label of
// the target, using native array containment.
func (s *PostgresStore) GetHostsMatchingTarget(ctx context.Context, target *types.Target) ([]*types.Host, error) {
	return s.queryHosts(ctx, getHostsMatchingTargetSQL, nonNilLabels(target.Labels))
}

func (s *PostgresStore) ListHosts(ctx context.Context) ([]*types.Host, error) {
	return s.queryHosts(ctx, listHostsSQL)
}

func (s *PostgresStore) queryHosts(ctx context.Context, sql string, args ...any) ([]*types.Host, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying hosts: %w", err)
	}
	defer rows.Close()

	hosts := []*types.Host{}
	for rows.Next() {
		var host types.Host
		if err := rows.Scan(&host.ID, &host.Labels); err != nil {
			return nil, fmt.Errorf("scanning host: %w", err)
		}
		hosts = append(hosts, &host)
	}
	return hosts, rows.Err()
}

func (s *PostgresStore) DeleteHost(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteHostSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting host %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Targets

func (s *PostgresStore) UpsertTarget(ctx context.Context, target *types.Target) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertTargetSQL, target.ID, target.Labels)
	if err != nil {
		return 0, fmt.Errorf("upserting target %s: %w", target.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetTarget(ctx context.Context, id string) (*types.Target, error) {
	var target types.Target
	err := s.pool.QueryRow(ctx, getTargetSQL, id).Scan(&target.ID, &target.Labels)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting target %s: %w", id, err)
	}
	return &target, nil
}

// GetTargetsMatchingHost returns targets whose labels are all present on the
// host.
func (s *PostgresStore) GetTargetsMatchingHost(ctx context.Context, host *types.Host) ([]*types.Target, error) {
	return s.queryTargets(ctx, getTargetsMatchingHostSQL, nonNilLabels(host.Labels))
}

func (s *PostgresStore) ListTargets(ctx context.Context) ([]*types.Target, error) {
	return s.queryTargets(ctx, listTargetsSQL)
}

func (s *PostgresStore) queryTargets(ctx context.Context, sql string, args ...any) ([]*types.Target, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying targets: %w", err)
	}
	defer rows.Close()

	targets := []*types.Target{}
	for rows.Next() {
		var target types.Target
		if err := rows.Scan(&target.ID, &target.Labels); err != nil {
			return nil, fmt.Errorf("scanning target: %w", err)
		}
		targets = append(targets, &target)
	}
	return targets, rows.Err()
}

func (s *PostgresStore) DeleteTarget(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteTargetSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting target %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Templates

func (s *PostgresStore) UpsertTemplate(ctx context.Context, template *types.Template) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertTemplateSQL,
		template.ID, template.Repository, template.GitRef, template.Path)
	if err != nil {
		return 0, fmt.Errorf("upserting template %s: %w", template.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetTemplate(ctx context.Context, id string) (*types.Template, error) {
	var template types.Template
	err := s.pool.QueryRow(ctx, getTemplateSQL, id).
		Scan(&template.ID, &template.Repository, &template.GitRef, &template.Path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting template %s: %w", id, err)
	}
	return &template, nil
}

func (s *PostgresStore) ListTemplates(ctx context.Context) ([]*types.Template, error) {
	rows, err := s.pool.Query(ctx, listTemplatesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	templates := []*types.Template{}
	for rows.Next() {
		var template types.Template
		if err := rows.Scan(&template.ID, &template.Repository, &template.GitRef, &template.Path); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, &template)
	}
	return templates, rows.Err()
}

func (s *PostgresStore) DeleteTemplate(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteTemplateSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting template %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Workloads

func (s *PostgresStore) UpsertWorkload(ctx context.Context, workload *types.Workload) (int64, error) {
	tag, err := s.pool.Exec(ctx, upsertWorkloadSQL,
		workload.ID, workload.Name, workload.TeamID, workload.TemplateID)
	if err != nil {
		return 0, fmt.Errorf("upserting workload %s: %w", workload.ID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) GetWorkload(ctx context.Context, id string) (*types.Workload, error) {
	var workload types.Workload
	err := s.pool.QueryRow(ctx, getWorkloadSQL, id).
		Scan(&workload.ID, &workload.Name, &workload.TeamID, &workload.TemplateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting workload %s: %w", id, err)
	}
	return &workload, nil
}

func (s *PostgresStore) GetWorkloadsByTemplate(ctx context.Context, templateID string) ([]*types.Workload, error) {
	return s.queryWorkloads(ctx, getWorkloadsByTemplateSQL, templateID)
}

func (s *PostgresStore) ListWorkloads(ctx context.Context) ([]*types.Workload, error) {
	return s.queryWorkloads(ctx, listWorkloadsSQL)
}

func (s *PostgresStore) queryWorkloads(ctx context.Context, sql string, args ...any) ([]*types.Workload, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workloads: %w", err)
	}
	defer rows.Close()

	workloads := []*types.Workload{}
	for rows.Next() {
		var workload types.Workload
		if err := rows.Scan(&workload.ID, &workload.Name, &workload.TeamID, &workload.TemplateID); err != nil {
			return nil, fmt.Errorf("scanning workload: %w", err)
		}
		workloads = append(workloads, &workload)
	}
	return workloads, rows.Err()
}

func (s *PostgresStore) DeleteWorkload(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteWorkloadSQL, id)
	if err != nil {
		return 0, fmt.Errorf("deleting workload %s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// nullableID maps an empty id to SQL NULL
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// nonNilLabels keeps nil label slices from encoding as SQL NULL, which would
// make containment comparisons return no rows.
func nonNilLabels(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}
