// Package service provides domain services for gitops-demo.
package service

import (
	"strconv"
	"time"

	"github.com/yndnr/gitops-demo/internal/core/domain"
)

// GreetingService builds the greeting response mappings.
//
// It is safe for concurrent use: the settings are copied at construction
// and never written again, and every call returns a fresh map.
type GreetingService struct {
	settings domain.GreetingSettings
	now      func() time.Time
}

// GreetingOption configures a GreetingService.
type GreetingOption func(*GreetingService)

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) GreetingOption {
	return func(s *GreetingService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGreetingService creates a GreetingService. Blank settings fall back to
// domain defaults.
func NewGreetingService(settings domain.GreetingSettings, opts ...GreetingOption) *GreetingService {
	s := &GreetingService{
		settings: settings.WithDefaults(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Hello returns the root greeting mapping.
func (s *GreetingService) Hello() map[string]string {
	return map[string]string{
		domain.KeyMessage:     domain.GreetingMessage,
		domain.KeyApplication: s.settings.ApplicationName,
		domain.KeyPort:        s.settings.Port,
		domain.KeyStatus:      domain.StatusRunning,
	}
}

// APIHello returns the API greeting mapping stamped with the current time in
// milliseconds since the Unix epoch.
func (s *GreetingService) APIHello() map[string]string {
	return map[string]string{
		domain.KeyMessage:   domain.APIGreetingMessage,
		domain.KeyTimestamp: strconv.FormatInt(s.now().UnixMilli(), 10),
	}
}
