// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for gitops-demo.
type ServerConfig struct {
	Application ApplicationSection `koanf:"application" yaml:"application" json:"application"`
	Server      ServerSection      `koanf:"server" yaml:"server" json:"server"`
	Metrics     MetricsSection     `koanf:"metrics" yaml:"metrics" json:"metrics"`
	Log         LogSection         `koanf:"log" yaml:"log" json:"log"`
}

// ApplicationSection configures the values shown by the greeting endpoints.
type ApplicationSection struct {
	Name string `koanf:"name" yaml:"name" json:"name"`
}

// ServerSection configures the HTTP server.
type ServerSection struct {
	// Port is displayed by GET /. When Addr is empty it is also the listen port.
	Port string `koanf:"port" yaml:"port" json:"port"`

	// Addr overrides the listen address (host:port).
	Addr string `koanf:"addr" yaml:"addr" json:"addr"`

	ShutdownTimeout time.Duration `koanf:"shutdowntimeout" yaml:"shutdowntimeout" json:"shutdowntimeout"`

	// RateLimit is requests/second per client IP. Zero disables limiting.
	RateLimit int `koanf:"ratelimit" yaml:"ratelimit" json:"ratelimit"`

	// CORS lists allowed origins. Empty means no CORS headers are sent.
	CORS []string `koanf:"cors" yaml:"cors" json:"cors"`

	Audit bool `koanf:"audit" yaml:"audit" json:"audit"`

	// TrustProxy takes client IPs from X-Forwarded-For / X-Real-IP. Enable
	// only behind an ingress that sets those headers itself.
	TrustProxy bool `koanf:"trustproxy" yaml:"trustproxy" json:"trustproxy"`
}

// MetricsSection configures Prometheus exposition.
type MetricsSection struct {
	Enabled bool `koanf:"enabled" yaml:"enabled" json:"enabled"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}
