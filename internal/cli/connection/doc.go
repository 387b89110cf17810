// Package connection provides the HTTP client the CLI uses to talk to a
// running gitops-demo server.
package connection
