package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings carries the runtime configuration shared by the fabriq binaries.
// Every field is sourced from the environment; defaults cover local runs.
type Settings struct {
	DatabaseURL          string
	Endpoint             string
	APIEndpoint          string
	Subscribers          []string
	ReconcilerConsumerID string
	GitOpsConsumerID     string
	GitHubToken          string

	OTelEndpoint   string
	ServiceName    string
	ServiceVersion string

	GitOpsRepoURL    string
	GitOpsRepoBranch string
	GitOpsSSHKeyPath string

	LogLevel string
	LogJSON  bool
}

// Load reads settings from the environment. serviceName seeds the default
// for SERVICE_NAME so each binary reports its own identity.
func Load(serviceName string) (*Settings, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENDPOINT", "[::]:50051")
	v.SetDefault("API_ENDPOINT", "localhost:50051")
	v.SetDefault("SUBSCRIBERS", "reconciler,gitops")
	v.SetDefault("RECONCILER_CONSUMER_ID", "reconciler")
	v.SetDefault("GITOPS_CONSUMER_ID", "gitops")
	v.SetDefault("SERVICE_NAME", serviceName)
	v.SetDefault("SERVICE_VERSION", "dev")
	v.SetDefault("GITOPS_REPO_BRANCH", "main")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", true)

	settings := &Settings{
		DatabaseURL:          v.GetString("DATABASE_URL"),
		Endpoint:             v.GetString("ENDPOINT"),
		APIEndpoint:          v.GetString("API_ENDPOINT"),
		Subscribers:          splitList(v.GetString("SUBSCRIBERS")),
		ReconcilerConsumerID: v.GetString("RECONCILER_CONSUMER_ID"),
		GitOpsConsumerID:     v.GetString("GITOPS_CONSUMER_ID"),
		GitHubToken:          v.GetString("GITHUB_TOKEN"),
		OTelEndpoint:         v.GetString("OTEL_ENDPOINT"),
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServiceVersion:       v.GetString("SERVICE_VERSION"),
		GitOpsRepoURL:        v.GetString("GITOPS_REPO_URL"),
		GitOpsRepoBranch:     v.GetString("GITOPS_REPO_BRANCH"),
		GitOpsSSHKeyPath:     v.GetString("GITOPS_SSH_KEY_PATH"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogJSON:              v.GetBool("LOG_JSON"),
	}

	if len(settings.Subscribers) == 0 {
		return nil, fmt.Errorf("SUBSCRIBERS must name at least one consumer")
	}

	return settings, nil
}

// RequireDatabaseURL errors when DATABASE_URL is unset. The api and gitops
// binaries call it; the CLI does not need a database.
func (s *Settings) RequireDatabaseURL() error {
	if s.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
