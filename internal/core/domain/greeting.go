// Package domain defines the core domain models for gitops-demo.
package domain

import "strings"

// Fixed greeting values.
const (
	GreetingMessage    = "Hello from GitOps Demo!"
	APIGreetingMessage = "Hello from API endpoint!"
	StatusRunning      = "running"
)

// Response mapping keys.
const (
	KeyMessage     = "message"
	KeyApplication = "application"
	KeyPort        = "port"
	KeyStatus      = "status"
	KeyTimestamp   = "timestamp"
)

// Default greeting settings.
const (
	DefaultApplicationName = "demo"
	DefaultPort            = "8080"
)

// GreetingSettings holds the configured values shown by the root greeting.
//
// Port is display-only. It is whatever the configuration says and may differ
// from the address the listener is actually bound to.
type GreetingSettings struct {
	ApplicationName string
	Port            string
}

// DefaultGreetingSettings returns the settings used when nothing is configured.
func DefaultGreetingSettings() GreetingSettings {
	return GreetingSettings{
		ApplicationName: DefaultApplicationName,
		Port:            DefaultPort,
	}
}

// WithDefaults returns a copy with blank fields replaced by their defaults.
func (s GreetingSettings) WithDefaults() GreetingSettings {
	if strings.TrimSpace(s.ApplicationName) == "" {
		s.ApplicationName = DefaultApplicationName
	}
	if strings.TrimSpace(s.Port) == "" {
		s.Port = DefaultPort
	}
	return s
}
