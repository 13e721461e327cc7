package types

import (
	"math"
	"slices"
	"time"
)

// Host is a label-bearing execution substrate node.
type Host struct {
	ID     string
	Labels []string
}

// Target selects hosts by labels: a host matches when its label set contains
// every label of the target.
type Target struct {
	ID     string
	Labels []string
}

// MatchesHost reports whether every label of the target is present on the
// host. A target with no labels matches every host.
func (t *Target) MatchesHost(h *Host) bool {
	for _, label := range t.Labels {
		if !slices.Contains(h.Labels, label) {
			return false
		}
	}
	return true
}

// Template references manifest sources in an external git repository.
type Template struct {
	ID         string
	Repository string
	GitRef     string
	Path       string
}

// Workload is a named, team-owned deployable unit.
type Workload struct {
	ID         string // derived: team_id ":" name
	Name       string
	TeamID     string // org ":" team
	TemplateID string
}

// Deployment is a sized instance of a workload at a target.
type Deployment struct {
	ID         string // derived: workload_id ":" name
	Name       string
	WorkloadID string
	TargetID   string
	TemplateID string // optional override of the workload's template
	HostCount  int32
}

// AllHosts as a Deployment.HostCount means "every host matching the target".
const AllHosts int32 = math.MaxInt32

// Assignment is a committed binding of a deployment to a host.
type Assignment struct {
	ID           string // derived: deployment_id "-" host_id
	DeploymentID string
	HostID       string
}

// Config is a single key/value override owned by a template, workload, or
// deployment.
type Config struct {
	ID          string // derived: owning_model "|" key
	OwningModel string // kind "/" model_id
	Key         string
	Value       string
	ValueType   ConfigValueType
}

// ModelType tags which entity kind an event's snapshots carry.
type ModelType string

const (
	ModelTypeAssignment ModelType = "Assignment"
	ModelTypeConfig     ModelType = "Config"
	ModelTypeDeployment ModelType = "Deployment"
	ModelTypeHost       ModelType = "Host"
	ModelTypeTarget     ModelType = "Target"
	ModelTypeTemplate   ModelType = "Template"
	ModelTypeWorkload   ModelType = "Workload"
)

// EventType classifies the transition an event records.
type EventType string

const (
	EventTypeCreated EventType = "Created"
	EventTypeUpdated EventType = "Updated"
	EventTypeDeleted EventType = "Deleted"
)

// Event is a durable record of one state transition. Producers emit a single
// logical event whose id derives from (operation id, model id); the stream
// fans it out into one row per subscriber, keyed by (event id, consumer id).
// Re-sending the same transition is a no-op while the row exists. At least
// one snapshot is always present: Created carries current, Deleted carries
// previous, Updated carries both.
type Event struct {
	ID                 string
	Timestamp          time.Time
	ConsumerID         string
	OperationID        string
	ModelType          ModelType
	EventType          EventType
	SerializedPrevious []byte
	SerializedCurrent  []byte
}
