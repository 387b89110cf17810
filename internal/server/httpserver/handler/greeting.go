// Package handler provides HTTP request handlers for gitops-demo.
package handler

import "net/http"

// handleHello handles GET /.
func (h *Handler) handleHello(w http.ResponseWriter, _ *http.Request) {
	if h.metrics != nil {
		h.metrics.IncGreeting("root")
	}
	h.writeJSON(w, http.StatusOK, h.greeting.Hello())
}

// handleAPIHello handles GET /api/hello.
func (h *Handler) handleAPIHello(w http.ResponseWriter, _ *http.Request) {
	if h.metrics != nil {
		h.metrics.IncGreeting("api")
	}
	h.writeJSON(w, http.StatusOK, h.greeting.APIHello())
}
