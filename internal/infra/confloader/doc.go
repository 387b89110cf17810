// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader backed by koanf:
//
//   - loader.go: YAML file and environment variable sources
//   - provider.go: in-memory map source for tests and overrides
//   - watcher.go: fsnotify based change notification
//
// Priority (highest to lowest):
//
//  1. Environment variables (GITOPS_DEMO_*)
//  2. Configuration file
//  3. Default values
package confloader
