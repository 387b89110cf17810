// Package config provides server configuration for gitops-demo.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//   - greeting.go: Derived greeting settings and listen address
//
// Configuration is loaded via internal/infra/confloader from a YAML file and
// GITOPS_DEMO_* environment variables, once, at process start.
package config
