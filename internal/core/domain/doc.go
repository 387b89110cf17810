// Package domain defines the core domain values for gitops-demo.
//
// The service has a single entity, the response mapping returned by the
// greeting endpoints, plus the immutable settings that feed it:
//
//   - greeting.go: fixed messages, mapping keys, GreetingSettings
//
// Nothing here performs IO.
package domain
