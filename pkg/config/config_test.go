package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load("fabriq-api")
	require.NoError(t, err)

	assert.Equal(t, "[::]:50051", settings.Endpoint)
	assert.Equal(t, "localhost:50051", settings.APIEndpoint)
	assert.Equal(t, []string{"reconciler", "gitops"}, settings.Subscribers)
	assert.Equal(t, "reconciler", settings.ReconcilerConsumerID)
	assert.Equal(t, "gitops", settings.GitOpsConsumerID)
	assert.Equal(t, "fabriq-api", settings.ServiceName)
	assert.Equal(t, "dev", settings.ServiceVersion)
	assert.Equal(t, "main", settings.GitOpsRepoBranch)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://fabriq@localhost/fabriq")
	t.Setenv("ENDPOINT", "127.0.0.1:9000")
	t.Setenv("SUBSCRIBERS", "reconciler, gitops ,audit")
	t.Setenv("SERVICE_VERSION", "1.2.3")
	t.Setenv("GITHUB_TOKEN", "ghp_gitops")

	settings, err := Load("fabriq-api")
	require.NoError(t, err)

	assert.NoError(t, settings.RequireDatabaseURL())
	assert.Equal(t, "127.0.0.1:9000", settings.Endpoint)
	assert.Equal(t, []string{"reconciler", "gitops", "audit"}, settings.Subscribers)
	assert.Equal(t, "1.2.3", settings.ServiceVersion)
	assert.Equal(t, "ghp_gitops", settings.GitHubToken)
}

func TestRequireDatabaseURL(t *testing.T) {
	settings := &Settings{}
	assert.Error(t, settings.RequireDatabaseURL())
}
