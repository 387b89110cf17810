// Package config defines the server configuration structure.
package config

import (
	"net"

	"github.com/yndnr/gitops-demo/internal/core/domain"
)

// GreetingSettings extracts the immutable settings shown by GET /.
func (c *ServerConfig) GreetingSettings() domain.GreetingSettings {
	return domain.GreetingSettings{
		ApplicationName: c.Application.Name,
		Port:            c.Server.Port,
	}.WithDefaults()
}

// ListenAddr returns the address the HTTP server binds to.
//
// An explicit server.addr wins; otherwise the server listens on all
// interfaces at server.port.
func (c *ServerConfig) ListenAddr() string {
	if c.Server.Addr != "" {
		return c.Server.Addr
	}
	return net.JoinHostPort("", c.Server.Port)
}
