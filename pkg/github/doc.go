/*
Package github resolves team membership for bearer tokens through the
GitHub API.

The API layer guards config mutations by team: it resolves the config's
owner to a workload, takes the workload's team id (org:team), and asks this
package whether the caller's token belongs to that team.

# Architecture

	┌──────────────── MEMBERSHIP CHECK ────────────────┐
	│                                                   │
	│  IsTeamMember(token, "org:team")                  │
	│      │                                            │
	│      ▼                                            │
	│  client per call (token auth)                     │
	│      │                                            │
	│      ├── GET /user            → caller login      │
	│      └── GET /orgs/{org}/teams/{team}/members     │
	│              │ (paged)                            │
	│              ▼                                    │
	│      login ∈ members?                             │
	└───────────────────────────────────────────────────┘

# Core Components

  - TeamOracle: the interface the API layer depends on
  - Oracle: production implementation over the GitHub REST API
  - StaticOracle: fixed-verdict double that records the teams it was
    asked about

A team the token cannot list reads as "not a member" rather than an error,
so revoked or misspelled team ids deny access. A token GitHub itself
rejects surfaces as an error.

# Usage

	oracle := github.NewOracle()

	ok, err := oracle.IsTeamMember(ctx, token, workload.TeamID)
	if err != nil {
		return err
	}
	if !ok {
		return status.Error(codes.PermissionDenied, "not a team member")
	}

# Integration Points

This package integrates with:

  - pkg/api: the config authorization interceptor calls the oracle
  - pkg/types: team ids are split with types.SplitTeamID

# See Also

  - pkg/api for where membership gates mutations
*/
package github
