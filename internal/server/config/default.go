// Package config defines the server configuration structure.
package config

import (
	"time"

	"github.com/yndnr/gitops-demo/internal/core/domain"
)

// Default configuration values.
const (
	DefaultApplicationName = domain.DefaultApplicationName
	DefaultPort            = domain.DefaultPort

	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Application: ApplicationSection{
			Name: DefaultApplicationName,
		},
		Server: ServerSection{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
			Audit:           true,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
