package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOperationID returns a fresh operation id (UUIDv4) correlating one
// request with every event it produces, including events emitted downstream.
func NewOperationID() string {
	return uuid.NewString()
}

// EnsureOperationID returns the given operation id, or a fresh one when the
// caller did not supply any.
func EnsureOperationID(operationID string) string {
	if operationID == "" {
		return NewOperationID()
	}
	return operationID
}

// MakeEventID derives the id of one logical event from its operation and the
// model it describes. Rebuilding the same transition yields the same id, which
// is what lets the stream deduplicate replays.
func MakeEventID(operationID, modelID string) string {
	return operationID + AssignmentIDSeparator + modelID
}

// NewEvent builds the envelope for the transition of the model identified by
// modelID. previous and current are the snapshots before and after the write;
// at least one must be non-nil.
func NewEvent(modelID string, previous, current any, eventType EventType, modelType ModelType, operationID string) (*Event, error) {
	if previous == nil && current == nil {
		return nil, NewValidationError("%s %s event carries no snapshots", modelType, eventType)
	}
	if modelID == "" {
		return nil, NewValidationError("%s %s event carries no model id", modelType, eventType)
	}
	if operationID == "" {
		return nil, NewValidationError("%s %s event carries no operation id", modelType, eventType)
	}

	event := &Event{
		ID:          MakeEventID(operationID, modelID),
		Timestamp:   time.Now().UTC(),
		OperationID: operationID,
		ModelType:   modelType,
		EventType:   eventType,
	}

	if previous != nil {
		serialized, err := json.Marshal(previous)
		if err != nil {
			return nil, fmt.Errorf("serialize previous %s snapshot: %w", modelType, err)
		}
		event.SerializedPrevious = serialized
	}
	if current != nil {
		serialized, err := json.Marshal(current)
		if err != nil {
			return nil, fmt.Errorf("serialize current %s snapshot: %w", modelType, err)
		}
		event.SerializedCurrent = serialized
	}

	return event, nil
}
