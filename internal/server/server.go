package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/reducebench/internal/logging"
)

// shutdownGrace bounds how long Shutdown waits for in-flight requests.
const shutdownGrace = 2 * time.Second

// Server serves the metrics endpoint for the lifetime of a benchmark
// invocation.
type Server struct {
	addr    string
	metrics *Metrics
	logger  logging.Logger
	httpSrv *http.Server
}

// NewServer creates a server listening on addr once started.
func NewServer(addr string, metrics *Metrics, logger logging.Logger) *Server {
	s := &Server{addr: addr, metrics: metrics, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(metrics.WritePrometheus))
	mux.HandleFunc("/healthz", s.metricsMiddleware(handleHealth))

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving in a background goroutine. Listen errors other than
// graceful closure are logged, not fatal: metrics are an observation aid,
// never a reason to abort a benchmark run.
func (s *Server) Start() {
	s.logger.Info("metrics server listening", logging.String("addr", s.addr))
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", err, logging.String("addr", s.addr))
		}
	}()
}

// Shutdown stops the server, waiting briefly for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// Metrics returns the server's instrument set.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// metricsMiddleware tracks request counts and concurrency around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleHealth reports liveness.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
