// Package httpserver provides the HTTP server for gitops-demo.
package httpserver

import (
	"net/http"

	"github.com/yndnr/gitops-demo/internal/server/httpserver/handler"
	"github.com/yndnr/gitops-demo/internal/telemetry/logger"
	"github.com/yndnr/gitops-demo/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Handler serves the greeting, probe and version routes.
	Handler *handler.Handler

	// Metrics is the registry behind /metrics and request instrumentation.
	// Nil disables both.
	Metrics *metric.Registry

	// Logger for request and panic logging.
	Logger logger.Logger

	// RateLimit is the per-IP limit in requests/second (0 = disabled).
	RateLimit int

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = no CORS headers).
	CORSAllowedOrigins []string

	// EnableAudit enables access logging for all requests.
	EnableAudit bool

	// TrustProxy honours X-Forwarded-For / X-Real-IP for client IPs.
	TrustProxy bool
}

// probePaths bypass the rate limiter.
var probePaths = []string{"/health", "/ready", "/metrics"}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	mux := http.NewServeMux()
	cfg.Handler.RegisterRoutes(mux)

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	middlewares := []Middleware{
		Recover(log),
		RequestID(log),
		CORS(cfg.CORSAllowedOrigins),
		RateLimit(RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit,
			SkipPaths:         probePaths,
			Metrics:           cfg.Metrics,
			TrustProxy:        cfg.TrustProxy,
		}),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(cfg.TrustProxy))
	}

	return Chain(mux, middlewares...)
}
