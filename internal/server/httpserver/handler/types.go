// Package handler provides HTTP request handlers for gitops-demo.
package handler

// ErrorResponse is the body written for non-2xx responses produced by this
// service. Greeting responses are plain mappings and never use it.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes carried in ErrorResponse.Code.
const (
	CodeInternal    = "internal_error"
	CodeRateLimited = "rate_limited"
)

// StatusResponse is the body of the health and readiness probes.
type StatusResponse struct {
	Status string `json:"status"`
	Time   string `json:"time,omitempty"`
}
