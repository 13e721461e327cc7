package metrics

import (
	"context"
	"time"
)

// QueueDepthReporter reports the number of undelivered events for a consumer.
// Implemented by the event stream.
type QueueDepthReporter interface {
	Len(ctx context.Context, consumerID string) (int, error)
}

// Collector periodically samples event queue depth for each consumer
type Collector struct {
	stream    QueueDepthReporter
	consumers []string
	interval  time.Duration
	stopCh    chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(stream QueueDepthReporter, consumers []string) *Collector {
	return &Collector{
		stream:    stream,
		consumers: consumers,
		interval:  15 * time.Second,
		stopCh:    make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, consumer := range c.consumers {
		depth, err := c.stream.Len(ctx, consumer)
		if err != nil {
			// Leave the previous gauge value in place
			continue
		}
		EventQueueDepth.WithLabelValues(consumer).Set(float64(depth))
	}
}
