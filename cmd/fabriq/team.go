package main

import (
	"fmt"

	gh "github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

const teamsPageSize = 100

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Browse GitHub teams",
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an organization's teams",
	Long: `Lists the teams of a GitHub organization with the team ids fabriq
uses as owners for workloads and config. Teams live on GitHub, not in the
control plane; the stored token must be able to read the organization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		org, _ := cmd.Flags().GetString("organization")

		profile, err := loadProfile()
		if err != nil {
			return err
		}
		if profile.PAT == "" {
			return fmt.Errorf("not logged in; run 'fabriq login <token>' first")
		}

		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: profile.PAT})
		ghClient := gh.NewClient(oauth2.NewClient(cmd.Context(), source))

		w := table(cmd, "ID\tNAME\tDESCRIPTION")
		opts := &gh.ListOptions{PerPage: teamsPageSize}
		for {
			teams, resp, err := ghClient.Teams.ListTeams(cmd.Context(), org, opts)
			if err != nil {
				return fmt.Errorf("listing teams for %s: %w", org, err)
			}

			for _, team := range teams {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					types.MakeTeamID(org, team.GetSlug()), team.GetName(), team.GetDescription())
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return w.Flush()
	},
}

func init() {
	teamCmd.AddCommand(teamListCmd)

	teamListCmd.Flags().StringP("organization", "o", "", "GitHub organization")
	teamListCmd.MarkFlagRequired("organization")
}
