package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/github"
	"github.com/fabriq-cloud/fabriq/pkg/metrics"
	"github.com/fabriq-cloud/fabriq/pkg/services"
	"github.com/fabriq-cloud/fabriq/pkg/storage"
	"github.com/fabriq-cloud/fabriq/pkg/stream"
)

// TestHealthService tests the grpc health check
func TestHealthService(t *testing.T) {
	resp, err := newHealthServer().Health(context.Background(), &proto.HealthRequest{})

	require.NoError(t, err)
	assert.True(t, resp.GetOk())
}

// TestHTTPMuxRoutes tests the HTTP side channel endpoints
func TestHTTPMuxRoutes(t *testing.T) {
	mux := newHTTPMux()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "health probe",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "liveness probe",
			path:           "/live",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "webhook receiver",
			path:           "/event_handler",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown path",
			path:           "/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Path: %s", tt.path)
		})
	}
}

// TestHealthEndpointJSONFormat tests the health probe response format
func TestHealthEndpointJSONFormat(t *testing.T) {
	mux := newHTTPMux()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response metrics.HealthStatus
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "healthy", response.Status)
	assert.False(t, response.Timestamp.IsZero())
}

// TestReadinessTransition tests that /ready reports 503 until the critical
// components register healthy
func TestReadinessTransition(t *testing.T) {
	mux := newHTTPMux()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var notReady metrics.HealthStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&notReady))
	assert.Equal(t, "not_ready", notReady.Status)
	assert.Contains(t, notReady.Components, "database")

	metrics.RegisterComponent("database", true, "")
	metrics.RegisterComponent("stream", true, "")
	metrics.RegisterComponent("api", true, "")

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var ready metrics.HealthStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
}

// TestMetricsEndpointExposesCounters tests that the registry serves the
// process counters in Prometheus exposition format
func TestMetricsEndpointExposesCounters(t *testing.T) {
	metrics.EventsSent.WithLabelValues("host", "created").Inc()

	mux := newHTTPMux()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fabriq_events_sent_total")
}

// TestWebhookReceiver tests the push event placeholder endpoint
func TestWebhookReceiver(t *testing.T) {
	mux := newHTTPMux()

	req := httptest.NewRequest(http.MethodPost, "/event_handler", strings.NewReader(`{"ref":"refs/heads/main"}`))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

// TestServerHandlerRoutesPlainHTTP tests that the shared listener handler
// sends non-grpc traffic to the HTTP mux
func TestServerHandlerRoutesPlainHTTP(t *testing.T) {
	svc := services.New(storage.NewMemoryStore(), stream.NewMemoryStream(stream.DefaultSubscribers()))
	server := NewServer(svc, &github.StaticOracle{Member: true})

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// grpc content type over HTTP/1 still belongs to the mux, the grpc
	// branch requires an HTTP/2 request.
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/fabriq.Host/List", nil)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/grpc")

	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
