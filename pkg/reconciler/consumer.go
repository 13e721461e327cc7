package reconciler

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// emptyPollInterval is how long the consumer sleeps after draining its
// queue before polling again.
const emptyPollInterval = time.Second

// Start launches the consumer loop.
func (r *Reconciler) Start() {
	go r.run()
}

// Stop signals the consumer loop to exit and waits for it. The in-flight
// event finishes and commits its acknowledgement first.
func (r *Reconciler) Stop() {
	close(r.stopCh)
	<-r.done
}

// run receives batches, processes the events one at a time in order, and
// acknowledges each on success. A transient failure leaves the event
// unacknowledged for redelivery and continues; a fatal event stops the
// loop for operator intervention.
func (r *Reconciler) run() {
	defer close(r.done)
	ctx := context.Background()

	r.logger.Info().Msg("Reconciler started")

	for {
		select {
		case <-r.stopCh:
			r.logger.Info().Msg("Reconciler stopped")
			return
		default:
		}

		events, err := r.events.Receive(ctx, r.consumerID)
		if err != nil {
			r.logger.Error().Err(err).Msg("Receiving events failed")
			if !r.pause() {
				return
			}
			continue
		}
		if len(events) == 0 {
			if !r.pause() {
				r.logger.Info().Msg("Reconciler stopped")
				return
			}
			continue
		}

		for _, event := range events {
			if fatal := r.processOne(ctx, event); fatal {
				r.logger.Error().Msg("Reconciler stopped on unprocessable event")
				return
			}

			select {
			case <-r.stopCh:
				r.logger.Info().Msg("Reconciler stopped")
				return
			default:
			}
		}
	}
}

// processOne runs one event through Process, acknowledging it on success.
// The return value reports whether the loop must stop.
func (r *Reconciler) processOne(ctx context.Context, event *types.Event) bool {
	timer := prometheus.NewTimer(metrics.ReconcileDuration)
	err := r.Process(ctx, event)
	timer.ObserveDuration()

	var fatalErr *FatalEventError
	switch {
	case errors.As(err, &fatalErr):
		metrics.EventsProcessed.WithLabelValues(r.consumerID, "fatal").Inc()
		r.logger.Error().
			Str("event_id", event.ID).
			Str("model_type", string(event.ModelType)).
			Err(err).
			Msg("Event can never be processed")
		return true
	case err != nil:
		metrics.EventsProcessed.WithLabelValues(r.consumerID, "error").Inc()
		r.logger.Error().
			Str("event_id", event.ID).
			Err(err).
			Msg("Processing event failed, leaving it queued for redelivery")
		return false
	}

	if _, err := r.events.Delete(ctx, event, r.consumerID); err != nil {
		// The event stays queued and will be processed again; the
		// affected-count gate keeps the replay silent.
		metrics.EventsProcessed.WithLabelValues(r.consumerID, "error").Inc()
		r.logger.Error().
			Str("event_id", event.ID).
			Err(err).
			Msg("Acknowledging event failed")
		return false
	}

	metrics.EventsProcessed.WithLabelValues(r.consumerID, "ok").Inc()
	return false
}

// pause sleeps for the empty-poll interval, returning false when the
// consumer was stopped while sleeping.
func (r *Reconciler) pause() bool {
	select {
	case <-r.stopCh:
		return false
	case <-time.After(emptyPollInterval):
		return true
	}
}
