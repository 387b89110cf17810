// Package service provides domain services for gitops-demo.
//
// GreetingService builds the response mappings served by the root and API
// greeting endpoints. It is a pure function of the immutable greeting
// settings and the clock, and holds no per-request state.
package service
