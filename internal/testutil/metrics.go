package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
)

// NewTelemetry builds a recorder backed by real OpenTelemetry instruments
// and returns the Prometheus scrape handler alongside it. The meter provider
// shuts down at test cleanup.
func NewTelemetry(t testing.TB) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-draft-service-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}

// Scrape returns the Prometheus exposition text served by handler.
func Scrape(t testing.TB, handler http.Handler) string {
	t.Helper()
	rr := Serve(handler, http.MethodGet, "/metrics", nil)
	AssertStatus(t, rr, http.StatusOK)
	return rr.Body.String()
}
