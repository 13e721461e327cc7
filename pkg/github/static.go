package github

import (
	"context"
	"sync"
)

// StaticOracle answers membership checks with a fixed verdict and records
// the team ids it was asked about. Tests and local development use it in
// place of the GitHub-backed Oracle.
type StaticOracle struct {
	Member bool
	Err    error

	mu      sync.Mutex
	checked []string
}

// IsTeamMember records the team id and returns the configured verdict.
func (s *StaticOracle) IsTeamMember(_ context.Context, _, teamID string) (bool, error) {
	s.mu.Lock()
	s.checked = append(s.checked, teamID)
	s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}
	return s.Member, nil
}

// CheckedTeams returns the team ids passed to IsTeamMember, in call order.
func (s *StaticOracle) CheckedTeams() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.checked...)
}
