// Package handler provides HTTP request handlers for gitops-demo.
//
// This package contains handlers for all HTTP endpoints:
//
//   - greeting.go: GET / and GET /api/hello
//   - health.go: liveness, readiness and version
//
// Greeting handlers ask service.GreetingService for a mapping and write it
// as the JSON body unchanged. They cannot fail.
package handler
