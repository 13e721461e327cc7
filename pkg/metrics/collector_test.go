package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubDepthReporter struct {
	depths map[string]int
	err    error
	calls  int
}

func (s *stubDepthReporter) Len(ctx context.Context, consumerID string) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.depths[consumerID], nil
}

func TestCollectorSamplesEachConsumer(t *testing.T) {
	stream := &stubDepthReporter{depths: map[string]int{
		"reconciler": 3,
		"gitops":     0,
	}}

	c := NewCollector(stream, []string{"reconciler", "gitops"})
	c.collect()

	if stream.calls != 2 {
		t.Errorf("expected 2 Len calls, got %d", stream.calls)
	}
}

func TestCollectorSkipsFailedSamples(t *testing.T) {
	stream := &stubDepthReporter{err: errors.New("connection refused")}

	c := NewCollector(stream, []string{"reconciler"})

	// Must not panic or block when the stream is unavailable
	c.collect()

	if stream.calls != 1 {
		t.Errorf("expected 1 Len call, got %d", stream.calls)
	}
}

func TestCollectorStartStop(t *testing.T) {
	stream := &stubDepthReporter{depths: map[string]int{"reconciler": 1}}

	c := NewCollector(stream, []string{"reconciler"})
	c.interval = 10 * time.Millisecond
	c.Start()

	time.Sleep(35 * time.Millisecond)
	c.Stop()

	// Initial collect plus at least two ticks
	if stream.calls < 3 {
		t.Errorf("expected at least 3 Len calls, got %d", stream.calls)
	}
}
