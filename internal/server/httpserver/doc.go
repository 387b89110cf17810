// Package httpserver provides the HTTP server for gitops-demo.
//
// This package wires the public surface on top of stdlib net/http:
//
//   - Greeting endpoints: /, /api/hello
//   - Probe endpoints: /health, /ready, /version
//   - Metrics endpoint: /metrics
//
// Features:
//
//   - Explicit route registration at startup
//   - Middleware chain: Recover, RequestID, CORS, RateLimit, Metrics, Audit
//   - Graceful shutdown
package httpserver
