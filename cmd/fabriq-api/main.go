package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/pkg/api"
	"github.com/fabriq-cloud/fabriq/pkg/config"
	"github.com/fabriq-cloud/fabriq/pkg/github"
	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/reconciler"
	"github.com/fabriq-cloud/fabriq/pkg/services"
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
	Use:   "fabriq-api",
	Short: "Fabriq control plane API server",
	Long: `Runs the Fabriq control plane: the gRPC API with its HTTP side
channel, the PostgreSQL-backed model store and event stream, and the
reconciler that converts deployment, host, target, template, and workload
changes into assignments.

Configuration comes from the environment; DATABASE_URL is required.`,
	Version: Version,
	RunE:    runServer,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"fabriq-api version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("fabriq-api")
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabaseURL(); err != nil {
		return err
	}

	log.Init(log.Config{Level: log.Level(cfg.LogLevel), JSONOutput: cfg.LogJSON})
	logger := log.WithComponent("fabriq-api")

	ctx := context.Background()
	if err := telemetry.Init(ctx, cfg.OTelEndpoint, cfg.ServiceName, cfg.ServiceVersion); err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	metrics.SetVersion(Version)

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := storage.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	metrics.RegisterComponent("database", true, "")

	events := stream.NewPostgresStream(pool, cfg.Subscribers)
	if err := events.Migrate(ctx); err != nil {
		return err
	}
	metrics.RegisterComponent("stream", true, "")

	svc := services.New(store, events)

	rec := reconciler.New(store, svc.Assignments, events, cfg.ReconcilerConsumerID)
	rec.Start()

	collector := metrics.NewCollector(events, cfg.Subscribers)
	collector.Start()

	server := api.NewServer(svc, github.NewOracle())
	metrics.RegisterComponent("api", true, "")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Endpoint)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop the server before the reconciler so no new events are accepted
	// while the in-flight event finishes and commits its ack.
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("API server shutdown failed")
	}
	rec.Stop()
	collector.Stop()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	logger.Info().Msg("Shutdown complete")
	return serveErr
}
