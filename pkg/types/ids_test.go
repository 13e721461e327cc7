package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeIDs(t *testing.T) {
	teamID := MakeTeamID("fabriq-cloud", "fabriq")
	assert.Equal(t, "fabriq-cloud:fabriq", teamID)

	workloadID := MakeWorkloadID(teamID, "cribbage")
	assert.Equal(t, "fabriq-cloud:fabriq:cribbage", workloadID)

	deploymentID := MakeDeploymentID(workloadID, "prod")
	assert.Equal(t, "fabriq-cloud:fabriq:cribbage:prod", deploymentID)

	assignmentID := MakeAssignmentID(deploymentID, "host-1")
	assert.Equal(t, "fabriq-cloud:fabriq:cribbage:prod-host-1", assignmentID)
}

func TestSplitTeamID(t *testing.T) {
	tests := []struct {
		name    string
		teamID  string
		org     string
		team    string
		wantErr bool
	}{
		{name: "valid", teamID: "fabriq-cloud:fabriq", org: "fabriq-cloud", team: "fabriq"},
		{name: "no separator", teamID: "fabriq", wantErr: true},
		{name: "too many separators", teamID: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, team, err := SplitTeamID(tt.teamID)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.org, org)
			assert.Equal(t, tt.team, team)
		})
	}
}

func TestSplitDeploymentID(t *testing.T) {
	teamID, workloadName, deploymentName, err := SplitDeploymentID("fabriq-cloud:fabriq:cribbage:prod")
	require.NoError(t, err)
	assert.Equal(t, "fabriq-cloud:fabriq", teamID)
	assert.Equal(t, "cribbage", workloadName)
	assert.Equal(t, "prod", deploymentName)

	_, _, _, err = SplitDeploymentID("fabriq-cloud:fabriq:cribbage")
	require.Error(t, err)
}
