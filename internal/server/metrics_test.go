package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/reducebench/internal/logging"
)

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

// TestNewMetricsIndependentRegistries verifies two instances never collide,
// which is what lets every test construct its own Metrics.
func TestNewMetricsIndependentRegistries(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("constructing two Metrics panicked: %v", r)
		}
	}()
	_ = NewMetrics()
	_ = NewMetrics()
}

// TestMetrics_RunLifecycle tests the run instruments.
func TestMetrics_RunLifecycle(t *testing.T) {
	m := NewMetrics()

	m.RunStarted()
	m.RunCompleted("lockfree", 125*time.Millisecond, nil)
	m.RunStarted()
	m.RunCompleted("locked", 0, errors.New("canceled"))

	body := scrape(t, m)

	for _, want := range []string{
		`reducebench_runs_total{outcome="success",strategy="lockfree"} 1`,
		`reducebench_runs_total{outcome="error",strategy="locked"} 1`,
		"reducebench_run_duration_seconds",
		"reducebench_active_runs 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

// TestMetrics_WritePrometheus tests the Prometheus metrics endpoint.
func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics()

	m.IncrementActiveRequests()
	defer m.DecrementActiveRequests()

	body := scrape(t, m)

	t.Run("Contains active requests metric", func(t *testing.T) {
		if !strings.Contains(body, "reducebench_active_requests") {
			t.Error("metrics output should contain reducebench_active_requests")
		}
	})

	t.Run("Contains total requests metric", func(t *testing.T) {
		if !strings.Contains(body, "reducebench_requests_total") {
			t.Error("metrics output should contain reducebench_requests_total")
		}
	})

	t.Run("Contains Go runtime metrics", func(t *testing.T) {
		if !strings.Contains(body, "go_") {
			t.Error("metrics output should contain Go runtime metrics")
		}
	})
}

// TestServer_metricsMiddleware tests the request tracking middleware.
func TestServer_metricsMiddleware(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewMetrics(), logging.NewLogger(io.Discard, "test"))

	nextCalled := false
	next := func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	}

	handler := s.metricsMiddleware(next)
	req := httptest.NewRequest("GET", "/test", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !nextCalled {
		t.Error("middleware should call the next handler")
	}

	body := scrape(t, s.Metrics())
	if !strings.Contains(body, "reducebench_requests_total 1") {
		t.Errorf("request should have been counted:\n%s", body)
	}
	if !strings.Contains(body, "reducebench_active_requests 0") {
		t.Error("active requests should return to zero")
	}
}

// TestServer_Endpoints verifies routing via the registered mux.
func TestServer_Endpoints(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewMetrics(), logging.NewLogger(io.Discard, "test"))
	ts := httptest.NewServer(s.httpSrv.Handler)
	defer ts.Close()

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/healthz")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/metrics")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "reducebench_") {
			t.Error("metrics endpoint should expose reducebench instruments")
		}
	})
}

// TestServer_Shutdown verifies a started server shuts down cleanly.
func TestServer_Shutdown(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewMetrics(), logging.NewLogger(io.Discard, "test"))
	s.Start()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

// scrape collects the exposition output of m.
func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)
	return rec.Body.String()
}
