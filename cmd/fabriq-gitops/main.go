package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/pkg/client"
	"github.com/fabriq-cloud/fabriq/pkg/config"
	"github.com/fabriq-cloud/fabriq/pkg/gitops"
	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
	"github.com/fabriq-cloud/fabriq/pkg/telemetry"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fabriq-gitops",
	Short: "Fabriq GitOps processor",
	Long: `Runs the Fabriq GitOps processor: consumes the gitops event queue
and renders every deployment into the cluster gitops repository, one
commit and push per deployment event.

Configuration comes from the environment; DATABASE_URL, GITOPS_REPO_URL,
and GITHUB_TOKEN are required. GITOPS_SSH_KEY_PATH points at the private
key used for git pushes and private template checkouts.`,
	Version: Version,
	RunE:    runProcessor,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"fabriq-gitops version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))
}

func runProcessor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("fabriq-gitops")
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabaseURL(); err != nil {
		return err
	}
	if cfg.GitOpsRepoURL == "" {
		return fmt.Errorf("GITOPS_REPO_URL is required")
	}
	if cfg.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}

	log.Init(log.Config{Level: log.Level(cfg.LogLevel), JSONOutput: cfg.LogJSON})
	logger := log.WithComponent("fabriq-gitops")

	ctx := context.Background()
	if err := telemetry.Init(ctx, cfg.OTelEndpoint, cfg.ServiceName, cfg.ServiceVersion); err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	var sshKey string
	if cfg.GitOpsSSHKeyPath != "" {
		key, err := os.ReadFile(cfg.GitOpsSSHKeyPath)
		if err != nil {
			return fmt.Errorf("reading ssh key: %w", err)
		}
		sshKey = string(key)
	}

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	events := stream.NewPostgresStream(pool, cfg.Subscribers)
	if err := events.Migrate(ctx); err != nil {
		return err
	}

	repo, err := gitops.Clone(gitops.Config{
		URL:        cfg.GitOpsRepoURL,
		Branch:     cfg.GitOpsRepoBranch,
		PrivateKey: sshKey,
	})
	if err != nil {
		return fmt.Errorf("cloning gitops repository: %w", err)
	}
	defer repo.Close()

	data, err := client.New(cfg.APIEndpoint, cfg.GitHubToken)
	if err != nil {
		return fmt.Errorf("dialing api: %w", err)
	}
	defer data.Close()

	clone := func(cloneCfg gitops.Config) (gitops.Repo, error) {
		return gitops.Clone(cloneCfg)
	}
	processor := gitops.NewProcessor(repo, clone, data, events, sshKey, cfg.GitOpsConsumerID)
	processor.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info().Str("signal", sig.String()).Msg("Shutting down")

	processor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	logger.Info().Msg("Shutdown complete")
	return nil
}
