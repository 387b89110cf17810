// Package metric provides Prometheus metrics for gitops-demo.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gitops_demo"

// Registry holds all application metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	GreetingsServed *prometheus.CounterVec
	RateLimited     prometheus.Counter
}

// NewRegistry creates a registry with Go runtime, process and build
// collectors already registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		GreetingsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "greetings_served_total",
			Help:      "Greeting mappings served by endpoint.",
		}, []string{"endpoint"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		NewCollector(),
		r.RequestsTotal,
		r.RequestDuration,
		r.GreetingsServed,
		r.RateLimited,
	)

	return r
}

// Handler returns the /metrics handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})
}

// RecordRequest counts a finished HTTP request and its latency.
func (r *Registry) RecordRequest(method, route, status string, seconds float64) {
	r.RequestsTotal.WithLabelValues(method, route, status).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncGreeting counts a greeting mapping served from endpoint.
func (r *Registry) IncGreeting(endpoint string) {
	r.GreetingsServed.WithLabelValues(endpoint).Inc()
}

// IncRateLimited counts a rejected request.
func (r *Registry) IncRateLimited() {
	r.RateLimited.Inc()
}
