package types

import "strings"

// Separators used when deriving ids from natural keys. Two records with the
// same natural key always map to the same id.
const (
	IDSeparator           = ":"
	AssignmentIDSeparator = "-"
)

// MakeTeamID derives a team id from its org and team slugs.
func MakeTeamID(org, team string) string {
	return org + IDSeparator + team
}

// SplitTeamID splits a team id into org and team slugs. A team id has
// exactly one separator.
func SplitTeamID(teamID string) (string, string, error) {
	parts := strings.Split(teamID, IDSeparator)
	if len(parts) != 2 {
		return "", "", NewValidationError("invalid team id %q: want org%steam", teamID, IDSeparator)
	}
	return parts[0], parts[1], nil
}

// MakeWorkloadID derives a workload id from its team id and name.
func MakeWorkloadID(teamID, name string) string {
	return teamID + IDSeparator + name
}

// MakeDeploymentID derives a deployment id from its workload id and name.
func MakeDeploymentID(workloadID, name string) string {
	return workloadID + IDSeparator + name
}

// SplitDeploymentID splits a deployment id into the owning team id, the
// workload name, and the deployment name.
func SplitDeploymentID(deploymentID string) (teamID, workloadName, deploymentName string, err error) {
	parts := strings.Split(deploymentID, IDSeparator)
	if len(parts) != 4 {
		return "", "", "", NewValidationError("invalid deployment id %q: want org%steam%sworkload%sname",
			deploymentID, IDSeparator, IDSeparator, IDSeparator)
	}
	return MakeTeamID(parts[0], parts[1]), parts[2], parts[3], nil
}

// MakeAssignmentID derives an assignment id from its deployment and host.
func MakeAssignmentID(deploymentID, hostID string) string {
	return deploymentID + AssignmentIDSeparator + hostID
}
