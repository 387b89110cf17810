// Package handler provides HTTP request handlers for gitops-demo.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/yndnr/gitops-demo/internal/core/service"
	"github.com/yndnr/gitops-demo/internal/telemetry/metric"
)

// Handler serves the greeting, probe and version endpoints.
type Handler struct {
	greeting *service.GreetingService
	metrics  *metric.Registry
	logger   *slog.Logger
	ready    atomic.Bool
}

// New creates a new Handler. metrics may be nil.
func New(greeting *service.GreetingService, metrics *metric.Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		greeting: greeting,
		metrics:  metrics,
		logger:   logger,
	}
}

// RegisterRoutes registers every route served by h on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Greeting endpoints
	mux.HandleFunc("GET /{$}", h.handleHello)
	mux.HandleFunc("GET /api/hello", h.handleAPIHello)

	// Probes
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /ready", h.handleReady)
	mux.HandleFunc("GET /version", h.handleVersion)
}

// SetReady marks the service as ready (or not) to receive traffic.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports the current readiness flag.
func (h *Handler) IsReady() bool {
	return h.ready.Load()
}

// writeJSON writes data as the JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, data, h.logger)
}

// WriteJSON writes data as a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Code: code, Message: message}, nil)
}
