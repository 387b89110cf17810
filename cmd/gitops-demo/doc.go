// Command gitops-demo is the greeting service deployed by the GitOps demo
// pipeline.
//
// With no arguments it runs the HTTP server. Configuration comes from
// defaults, an optional YAML file (--config) and GITOPS_DEMO_* environment
// variables, in increasing priority.
//
// Build information is injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/gitops-demo/internal/infra/buildinfo.Version=v1.0.0" ./cmd/gitops-demo
package main
