// Package handler provides HTTP request handlers for gitops-demo.
package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/gitops-demo/internal/infra/buildinfo"
)

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, StatusResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady handles GET /ready.
func (h *Handler) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !h.IsReady() {
		h.writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "starting"})
		return
	}
	h.writeJSON(w, http.StatusOK, StatusResponse{
		Status: "ready",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion handles GET /version.
func (h *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, buildinfo.Get())
}
