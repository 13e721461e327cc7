/*
Package metrics provides Prometheus metrics collection and exposition for Fabriq.

The metrics package defines and registers all Fabriq metrics using the Prometheus
client library, providing observability into event flow, reconciliation latency,
assignment churn, and API performance. Metrics are exposed via HTTP endpoint for
scraping by Prometheus servers, alongside health and readiness handlers used by
the HTTP side channel.

# Architecture

Fabriq's metrics system follows Prometheus best practices with instrumentation
across the API surface, the event stream, and the reconciler:

	┌──────────────────── METRICS SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │          Prometheus Registry                │          │
	│  │  - Global DefaultRegistry                   │          │
	│  │  - MustRegister at package init             │          │
	│  │  - Automatic Go runtime metrics             │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Metric Categories                 │          │
	│  │                                              │          │
	│  │  Stream: Events sent, processed, depth      │          │
	│  │  Reconciler: Cycle duration, assignments    │          │
	│  │  API: Request count, duration               │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          Queue Depth Collector              │          │
	│  │  - Samples stream.Len per consumer          │          │
	│  │  - 15 second interval                       │          │
	│  │  - Updates fabriq_event_queue_depth         │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          HTTP Metrics Endpoint              │          │
	│  │  - Path: /metrics                           │          │
	│  │  - Format: Prometheus text exposition       │          │
	│  │  - Handler: promhttp.Handler()              │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Metric Registry:
  - Global Prometheus DefaultRegistry
  - All metrics registered at package init
  - Automatic collection of Go runtime metrics
  - Thread-safe for concurrent updates

Queue Depth Collector:
  - Polls the event stream for undelivered event counts
  - One gauge sample per registered consumer
  - Failed samples are skipped, keeping the last good value

Timer Helper:
  - Convenience wrapper for timing operations
  - Start timer, observe duration to histogram
  - Supports label values for histogram vectors

Health Checker:
  - Tracks per-component health (database, stream, api)
  - Serves /health, /ready, and /live HTTP endpoints
  - Readiness requires all critical components healthy

# Metrics Catalog

Stream Metrics:

fabriq_events_sent_total{model_type, event_type}:
  - Type: Counter
  - Description: Events fanned out to the durable queue
  - Example: fabriq_events_sent_total{model_type="Deployment",event_type="Updated"} 12

fabriq_events_processed_total{consumer, status}:
  - Type: Counter
  - Description: Events consumed, by consumer and outcome (ok/error)
  - Example: fabriq_events_processed_total{consumer="reconciler",status="ok"} 118

fabriq_event_queue_depth{consumer}:
  - Type: Gauge
  - Description: Undelivered events waiting for a consumer
  - Example: fabriq_event_queue_depth{consumer="gitops"} 4

Reconciler Metrics:

fabriq_reconcile_duration_seconds:
  - Type: Histogram
  - Description: Time to process one event through the reconciler
  - Buckets: Prometheus defaults

fabriq_assignments_created_total:
  - Type: Counter
  - Description: Assignments created by reconciliation

fabriq_assignments_deleted_total:
  - Type: Counter
  - Description: Assignments deleted by reconciliation

API Metrics:

fabriq_api_requests_total{method, status}:
  - Type: Counter
  - Description: RPC requests by full method name and status code
  - Example: fabriq_api_requests_total{method="/fabriq.Host/Upsert",status="OK"} 3

fabriq_api_request_duration_seconds{method}:
  - Type: Histogram
  - Description: RPC handler latency by full method name

# Usage

Exposing Metrics:

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())

Recording Events:

	metrics.EventsSent.WithLabelValues("Deployment", "Updated").Inc()
	metrics.EventsProcessed.WithLabelValues("reconciler", "ok").Inc()

Timing Operations:

	timer := metrics.NewTimer()
	// ... process event ...
	timer.ObserveDuration(metrics.ReconcileDuration)

Timing with Labels:

	timer := metrics.NewTimer()
	// ... handle request ...
	timer.ObserveDurationVec(metrics.APIRequestDuration, "/fabriq.Host/Upsert")

Sampling Queue Depth:

	collector := metrics.NewCollector(stream, []string{"reconciler", "gitops"})
	collector.Start()
	defer collector.Stop()

Tracking Component Health:

	metrics.SetVersion("0.3.0")
	metrics.RegisterComponent("database", true, "")
	metrics.UpdateComponent("stream", false, "connection refused")

# Integration Points

This package integrates with:

  - pkg/api: Request counters and latency via the metrics interceptor
  - pkg/stream: Queue depth sampling and send counters
  - pkg/reconciler: Cycle duration and assignment churn
  - cmd/fabriq-api: Wires the HTTP handlers and collector at startup

# Design Patterns

Package-Level Metrics:
  - Metrics declared as package vars, registered in init
  - Callers reference metrics.X directly, no plumbing
  - Single registry per process

Accept-Interface Collector:
  - Collector depends on QueueDepthReporter, not the stream package
  - Avoids an import cycle and simplifies testing

Skip-On-Error Sampling:
  - A failed depth sample leaves the previous gauge value
  - Scrapes never block on a slow or down database

# See Also

  - pkg/stream for the durable event queue
  - pkg/reconciler for the event consumer loop
  - Prometheus best practices: https://prometheus.io/docs/practices/naming/
*/
package metrics
