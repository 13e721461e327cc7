package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/pkg/client"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const defaultEndpoint = "localhost:50051"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fabriq",
	Short: "Fabriq - declarative deployment control plane CLI",
	Long: `fabriq manages hosts, targets, templates, workloads, deployments,
and config through the Fabriq control plane.

Authenticate once with 'fabriq login <token>' using a GitHub personal
access token; every other command reads the stored profile.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"fabriq version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("endpoint", endpointDefault(), "Fabriq API endpoint")

	rootCmd.AddCommand(assignmentCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(deploymentCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(workloadCmd)
}

// endpointDefault lets FABRIQ_ENDPOINT override the built-in default so
// scripts can point at another control plane without repeating --endpoint.
func endpointDefault() string {
	if endpoint := os.Getenv("FABRIQ_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	return defaultEndpoint
}

// apiClient dials the API with the stored profile's token.
func apiClient(cmd *cobra.Command) (*client.Client, error) {
	endpoint, _ := cmd.Flags().GetString("endpoint")

	profile, err := loadProfile()
	if err != nil {
		return nil, err
	}
	if profile.PAT == "" {
		return nil, fmt.Errorf("not logged in; run 'fabriq login <token>' first")
	}

	return client.New(endpoint, profile.PAT)
}

// table starts tab-aligned list output with the given header row. Callers
// write rows and Flush.
func table(cmd *cobra.Command, header string) *tabwriter.Writer {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	return w
}
