// Package command provides the gitops-demo command-line interface.
//
// It uses urfave/cli/v2 for command parsing. Commands:
//
//   - serve: run the HTTP server (default when no command is given)
//   - probe: query a running server and print its greetings
//   - config show / config validate: inspect the effective configuration
//   - version: print build information
package command
