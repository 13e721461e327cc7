package stream

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// The composite primary key carries the fan-out contract: one row per
// (event, consumer), inserts of an existing pair are silently dropped.
var eventQueueMigrations = []string{
	`CREATE TABLE IF NOT EXISTS event_queue (
		seq BIGSERIAL,
		id TEXT NOT NULL,
		consumer_id TEXT NOT NULL,
		event_timestamp TIMESTAMPTZ NOT NULL,
		operation_id TEXT NOT NULL,
		model_type TEXT NOT NULL,
		event_type TEXT NOT NULL,
		serialized_previous BYTEA,
		serialized_current BYTEA,
		PRIMARY KEY (id, consumer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS event_queue_consumer_id_idx ON event_queue (consumer_id)`,
}

const (
	insertEventSQL = `
		INSERT INTO event_queue
			(id, consumer_id, event_timestamp, operation_id, model_type, event_type,
			 serialized_previous, serialized_current)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id, consumer_id) DO NOTHING`
	receiveEventsSQL = `
		SELECT id, consumer_id, event_timestamp, operation_id, model_type, event_type,
		       serialized_previous, serialized_current
		FROM event_queue WHERE consumer_id = $1 ORDER BY seq`
	deleteEventSQL   = `DELETE FROM event_queue WHERE id = $1 AND consumer_id = $2`
	queueLengthSQL   = `SELECT COUNT(*) FROM event_queue WHERE consumer_id = $1`
)

// PostgresStream is the durable EventStream, one row per (event, consumer)
// in the event_queue table.
type PostgresStream struct {
	pool        *pgxpool.Pool
	subscribers []string
}

// NewPostgresStream creates a stream over an existing connection pool,
// fanning out to the given subscribers.
func NewPostgresStream(pool *pgxpool.Pool, subscribers []string) *PostgresStream {
	return &PostgresStream{
		pool:        pool,
		subscribers: subscribers,
	}
}

// Migrate creates the event_queue table if it does not exist.
func (s *PostgresStream) Migrate(ctx context.Context) error {
	for _, stmt := range eventQueueMigrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("running event queue migration: %w", err)
		}
	}
	return nil
}

func (s *PostgresStream) Send(ctx context.Context, event *types.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	for _, consumerID := range s.subscribers {
		_, err := s.pool.Exec(ctx, insertEventSQL,
			event.ID, consumerID, event.Timestamp, event.OperationID,
			event.ModelType, event.EventType,
			event.SerializedPrevious, event.SerializedCurrent)
		if err != nil {
			return fmt.Errorf("queueing event %s for %s: %w", event.ID, consumerID, err)
		}
	}
	return nil
}

func (s *PostgresStream) SendMany(ctx context.Context, events []*types.Event) error {
	for _, event := range events {
		if err := s.Send(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStream) Receive(ctx context.Context, consumerID string) ([]*types.Event, error) {
	rows, err := s.pool.Query(ctx, receiveEventsSQL, consumerID)
	if err != nil {
		return nil, fmt.Errorf("receiving events for %s: %w", consumerID, err)
	}
	defer rows.Close()

	events := []*types.Event{}
	for rows.Next() {
		var event types.Event
		if err := rows.Scan(&event.ID, &event.ConsumerID, &event.Timestamp,
			&event.OperationID, &event.ModelType, &event.EventType,
			&event.SerializedPrevious, &event.SerializedCurrent); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}

func (s *PostgresStream) Delete(ctx context.Context, event *types.Event, consumerID string) (int64, error) {
	if event.ID == "" {
		return 0, types.NewValidationError("event carries no id")
	}

	tag, err := s.pool.Exec(ctx, deleteEventSQL, event.ID, consumerID)
	if err != nil {
		return 0, fmt.Errorf("deleting event %s for %s: %w", event.ID, consumerID, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStream) Len(ctx context.Context, consumerID string) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queueLengthSQL, consumerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting events for %s: %w", consumerID, err)
	}
	return count, nil
}
