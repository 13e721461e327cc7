package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v57/github"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/fabriq-cloud/fabriq/pkg/log"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// membersPageSize is the page size used when listing team members.
const membersPageSize = 100

// TeamOracle answers whether the holder of a bearer token belongs to a team.
// The production implementation is Oracle; tests substitute StaticOracle.
type TeamOracle interface {
	IsTeamMember(ctx context.Context, token, teamID string) (bool, error)
}

// Oracle checks team membership against the GitHub API. A fresh client is
// built per call so each check authenticates with the caller's own token.
type Oracle struct {
	baseURL string // overrides the public API endpoint, used in tests
	logger  zerolog.Logger
}

// NewOracle creates an oracle backed by the public GitHub API.
func NewOracle() *Oracle {
	return &Oracle{
		logger: log.WithComponent("github-oracle"),
	}
}

// IsTeamMember reports whether the token's authenticated user appears in the
// member list of the team identified by teamID (org:team). An inaccessible
// team reads as not a member rather than an error; a token GitHub rejects is
// an error.
func (o *Oracle) IsTeamMember(ctx context.Context, token, teamID string) (bool, error) {
	org, team, err := types.SplitTeamID(teamID)
	if err != nil {
		return false, err
	}

	client, err := o.newClient(ctx, token)
	if err != nil {
		return false, fmt.Errorf("building github client: %w", err)
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return false, fmt.Errorf("getting authenticated user: %w", err)
	}
	login := user.GetLogin()

	opts := &gh.TeamListTeamMembersOptions{
		ListOptions: gh.ListOptions{PerPage: membersPageSize},
	}
	for {
		members, resp, err := client.Teams.ListTeamMembersBySlug(ctx, org, team, opts)
		if err != nil {
			o.logger.Debug().
				Err(err).
				Str("team_id", teamID).
				Msg("Team member listing failed, denying membership")
			return false, nil
		}

		for _, member := range members {
			if member.GetLogin() == login {
				return true, nil
			}
		}

		if resp.NextPage == 0 {
			return false, nil
		}
		opts.Page = resp.NextPage
	}
}

func (o *Oracle) newClient(ctx context.Context, token string) (*gh.Client, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(ctx, source))
	if o.baseURL != "" {
		return client.WithEnterpriseURLs(o.baseURL, o.baseURL)
	}
	return client, nil
}
