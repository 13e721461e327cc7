package main

import (
	"fmt"

	gh "github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

var loginCmd = &cobra.Command{
	Use:   "login TOKEN",
	Short: "Authenticate with a GitHub personal access token",
	Long: `Validates the token against GitHub and stores it in the profile at
~/.fabriq/config.yaml. The control plane checks the same token on every
API call, and config changes are authorized by the teams the token's
user belongs to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := args[0]

		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		ghClient := gh.NewClient(oauth2.NewClient(cmd.Context(), source))

		user, _, err := ghClient.Users.Get(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("validating token: %w", err)
		}
		login := user.GetLogin()

		path, err := saveProfile(&Profile{PAT: token, Login: login})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Logged in as %s (profile: %s)\n", login, path)
		return nil
	},
}
