package stream

import (
	"context"
	"sync"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// MemoryStream is an in-process EventStream with one FIFO queue per
// subscriber. Used by tests and by the api server when no database is
// configured.
type MemoryStream struct {
	mu          sync.Mutex
	subscribers []string
	queues      map[string][]*types.Event
}

// NewMemoryStream creates a stream fanning out to the given subscribers.
func NewMemoryStream(subscribers []string) *MemoryStream {
	queues := make(map[string][]*types.Event, len(subscribers))
	for _, consumerID := range subscribers {
		queues[consumerID] = []*types.Event{}
	}
	return &MemoryStream{
		subscribers: subscribers,
		queues:      queues,
	}
}

func (s *MemoryStream) Send(ctx context.Context, event *types.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, consumerID := range s.subscribers {
		if queued(s.queues[consumerID], event.ID) {
			continue
		}
		queuedEvent := cloneEvent(event)
		queuedEvent.ConsumerID = consumerID
		s.queues[consumerID] = append(s.queues[consumerID], queuedEvent)
	}
	return nil
}

func (s *MemoryStream) SendMany(ctx context.Context, events []*types.Event) error {
	for _, event := range events {
		if err := s.Send(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStream) Receive(ctx context.Context, consumerID string) ([]*types.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[consumerID]
	events := make([]*types.Event, 0, len(queue))
	for _, event := range queue {
		events = append(events, cloneEvent(event))
	}
	return events, nil
}

func (s *MemoryStream) Delete(ctx context.Context, event *types.Event, consumerID string) (int64, error) {
	if event.ID == "" {
		return 0, types.NewValidationError("event carries no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[consumerID]
	for i, queuedEvent := range queue {
		if queuedEvent.ID == event.ID {
			s.queues[consumerID] = append(queue[:i:i], queue[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStream) Len(ctx context.Context, consumerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queues[consumerID]), nil
}

func queued(queue []*types.Event, eventID string) bool {
	for _, event := range queue {
		if event.ID == eventID {
			return true
		}
	}
	return false
}

func cloneEvent(event *types.Event) *types.Event {
	clone := *event
	if event.SerializedPrevious != nil {
		clone.SerializedPrevious = append([]byte(nil), event.SerializedPrevious...)
	}
	if event.SerializedCurrent != nil {
		clone.SerializedCurrent = append([]byte(nil), event.SerializedCurrent...)
	}
	return &clone
}

func validateEvent(event *types.Event) error {
	if event.OperationID == "" {
		return types.NewValidationError("event carries no operation id")
	}
	if event.ID == "" {
		return types.NewValidationError("event carries no id")
	}
	return nil
}
