// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidConfig is wrapped by every error returned from Verify.
var ErrInvalidConfig = errors.New("invalid configuration")

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := verifyApplication(&cfg.Application); err != nil {
		return err
	}
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return nil
}

func verifyApplication(cfg *ApplicationSection) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("%w: application.name is required", ErrInvalidConfig)
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return fmt.Errorf("%w: server.port is required", ErrInvalidConfig)
	}

	// server.port is only display text when an explicit addr is set.
	if cfg.Addr == "" {
		if err := verifyPort(cfg.Port); err != nil {
			return err
		}
	} else if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("%w: server.addr %q: %v", ErrInvalidConfig, cfg.Addr, err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdowntimeout must be positive", ErrInvalidConfig)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("%w: server.ratelimit must not be negative", ErrInvalidConfig)
	}
	return nil
}

func verifyPort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: server.port %q is not a TCP port", ErrInvalidConfig, port)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, cfg.Level)
	}

	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, cfg.Format)
	}
	return nil
}
