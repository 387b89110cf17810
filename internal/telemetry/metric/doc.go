// Package metric provides Prometheus metrics for gitops-demo.
//
//   - prometheus.go: Registry, request and greeting metrics, /metrics handler
//   - collector.go: build info and uptime collector
//
// Metrics are exposed at /metrics in Prometheus text format when
// metrics.enabled is true.
package metric
