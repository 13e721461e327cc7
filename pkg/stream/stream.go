package stream

import (
	"context"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// Consumer ids of the long-running subscribers shipped with fabriq. Streams
// are constructed with the subscriber set to fan out to; these are the
// defaults used by the api server.
const (
	ReconcilerConsumerID = "reconciler"
	GitOpsConsumerID     = "gitops"
)

// DefaultSubscribers returns the subscriber set the api server fans events
// out to.
func DefaultSubscribers() []string {
	return []string{ReconcilerConsumerID, GitOpsConsumerID}
}

// EventStream is the durable change feed connecting the services to their
// consumers. Send fans each event out into one row per subscriber, keyed by
// (event id, consumer id) with a do-nothing conflict policy, so re-sending
// the same transition while a row exists is a no-op. Delivery is
// at-least-once per subscriber: an event stays visible to Receive until the
// subscriber deletes it, and subscribers never block one another.
//
// Implemented by the PostgreSQL stream and the in-memory stream.
type EventStream interface {
	// Send persists one copy of the event per subscriber. It fails if the
	// event carries no operation id or event id.
	Send(ctx context.Context, event *types.Event) error

	// SendMany sends events in order; visibility order within the batch
	// follows send order.
	SendMany(ctx context.Context, events []*types.Event) error

	// Receive returns the events currently visible to the consumer, oldest
	// first. Events remain visible until deleted.
	Receive(ctx context.Context, consumerID string) ([]*types.Event, error)

	// Delete acknowledges an event for the consumer, returning the number of
	// rows removed (0 when already acknowledged).
	Delete(ctx context.Context, event *types.Event, consumerID string) (int64, error)

	// Len reports the number of events queued for the consumer.
	Len(ctx context.Context, consumerID string) (int, error)
}
