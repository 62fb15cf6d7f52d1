package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adydas-lantern/naia-standings/internal/logger"
)

// Version is the API version reported by the root and health endpoints.
const Version = "1.0.0"

// Config holds server configuration.
type Config struct {
	Port int
}

// Server serves the read-only standings API.
type Server struct {
	httpServer *http.Server
	data       *Dataset
}

// New creates a server over an already-loaded dataset.
func New(cfg Config, data *Dataset) *Server {
	s := &Server{data: data}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/stats", s.handleStats)
	mux.HandleFunc("GET /api/v1/schools", s.handleListSchools)
	mux.HandleFunc("GET /api/v1/schools/{name}", s.handleGetSchool)
	mux.HandleFunc("GET /api/v1/conferences", s.handleListConferences)
	mux.HandleFunc("GET /api/v1/conferences/{name}", s.handleGetConference)
	mux.HandleFunc("GET /api/v1/conferences/{name}/standings", s.handleConferenceStandings)
	mux.HandleFunc("GET /api/v1/standings/{year}", s.handleStandingsByYear)
	mux.HandleFunc("GET /api/v1/standings/{year}/{conference}", s.handleStandingsByYearAndConference)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens for requests until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server listening", logger.Fields{"addr": s.httpServer.Addr})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	logger.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// withCORS allows cross-origin reads; the API is public and read-only.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per request and records request metrics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		logger.IncrCounter("http.requests")
		logger.RecordTiming("http.request", elapsed)
		logger.Info("request", logger.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": elapsed.String(),
		})
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response", nil, err)
	}
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Error: http.StatusText(status), Detail: detail})
}
