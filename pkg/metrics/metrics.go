package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Event stream metrics
	EventsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fabriq_events_sent_total",
			Help: "Total number of events fanned out to the queue by model type and event type",
		},
		[]string{"model_type", "event_type"},
	)

	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fabriq_events_processed_total",
			Help: "Total number of events processed by consumer and outcome",
		},
		[]string{"consumer", "status"},
	)

	EventQueueDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fabriq_event_queue_depth",
			Help: "Number of undelivered events per consumer",
		},
		[]string{"consumer"},
	)

	// Reconciler metrics
	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fabriq_reconcile_duration_seconds",
			Help:    "Time taken to process one event in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AssignmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fabriq_assignments_created_total",
			Help: "Total number of assignments created by the reconciler",
		},
	)

	AssignmentsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fabriq_assignments_deleted_total",
			Help: "Total number of assignments deleted by the reconciler",
		},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fabriq_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fabriq_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(EventsSent)
	prometheus.MustRegister(EventsProcessed)
	prometheus.MustRegister(EventQueueDepth)
	prometheus.MustRegister(ReconcileDuration)
	prometheus.MustRegister(AssignmentsCreated)
	prometheus.MustRegister(AssignmentsDeleted)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
