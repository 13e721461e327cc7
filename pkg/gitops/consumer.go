package gitops

import (
	"context"
	"errors"
	"time"

	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// emptyPollInterval is how long the consumer sleeps after draining its
// queue before polling again.
const emptyPollInterval = time.Second

// Start launches the consumer loop.
func (p *Processor) Start() {
	go p.run()
}

// Stop signals the consumer loop to exit and waits for it. The in-flight
// event finishes and commits its acknowledgement first.
func (p *Processor) Stop() {
	close(p.stopCh)
	<-p.done
}

// run receives batches, processes the events one at a time in order, and
// acknowledges each on success. A transient failure leaves the event
// unacknowledged for redelivery and continues; a fatal event stops the
// loop for operator intervention.
func (p *Processor) run() {
	defer close(p.done)
	ctx := context.Background()

	p.logger.Info().Msg("GitOps processor started")

	for {
		select {
		case <-p.stopCh:
			p.logger.Info().Msg("GitOps processor stopped")
			return
		default:
		}

		events, err := p.events.Receive(ctx, p.consumerID)
		if err != nil {
			p.logger.Error().Err(err).Msg("Receiving events failed")
			if !p.pause() {
				return
			}
			continue
		}
		if len(events) == 0 {
			if !p.pause() {
				p.logger.Info().Msg("GitOps processor stopped")
				return
			}
			continue
		}

		for _, event := range events {
			if fatal := p.processOne(ctx, event); fatal {
				p.logger.Error().Msg("GitOps processor stopped on unprocessable event")
				return
			}

			select {
			case <-p.stopCh:
				p.logger.Info().Msg("GitOps processor stopped")
				return
			default:
			}
		}
	}
}

// processOne runs one event through Process, acknowledging it on success.
// The return value reports whether the loop must stop.
func (p *Processor) processOne(ctx context.Context, event *types.Event) bool {
	err := p.Process(ctx, event)

	var fatalErr *FatalEventError
	switch {
	case errors.As(err, &fatalErr):
		metrics.EventsProcessed.WithLabelValues(p.consumerID, "fatal").Inc()
		p.logger.Error().
			Str("event_id", event.ID).
			Str("model_type", string(event.ModelType)).
			Err(err).
			Msg("Event can never be processed")
		return true
	case err != nil:
		metrics.EventsProcessed.WithLabelValues(p.consumerID, "error").Inc()
		p.logger.Error().
			Str("event_id", event.ID).
			Err(err).
			Msg("Processing event failed, leaving it queued for redelivery")
		return false
	}

	if _, err := p.events.Delete(ctx, event, p.consumerID); err != nil {
		// The event stays queued and will be rendered again; rendering is
		// deterministic, so the replay commits nothing new.
		metrics.EventsProcessed.WithLabelValues(p.consumerID, "error").Inc()
		p.logger.Error().
			Str("event_id", event.ID).
			Err(err).
			Msg("Acknowledging event failed")
		return false
	}

	metrics.EventsProcessed.WithLabelValues(p.consumerID, "ok").Inc()
	return false
}

// pause sleeps for the empty-poll interval, returning false when the
// consumer was stopped while sleeping.
func (p *Processor) pause() bool {
	select {
	case <-p.stopCh:
		return false
	case <-time.After(emptyPollInterval):
		return true
	}
}
