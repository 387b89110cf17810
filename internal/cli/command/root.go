// Package command provides CLI command definitions for gitops-demo.
package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/gitops-demo/internal/infra/buildinfo"
)

// Environment variables read by CLI flags. They share the configuration
// prefix and are excluded from configuration loading.
const (
	EnvConfigFile  = "GITOPS_DEMO_CONFIG"
	EnvProbeServer = "GITOPS_DEMO_PROBE_SERVER"
)

// flagEnvVars are never treated as configuration keys.
var flagEnvVars = []string{EnvConfigFile, EnvProbeServer, "GITOPS_DEMO_SERVER"}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitops-demo",
		Usage:   "Greeting service deployed by the GitOps demo pipeline",
		Version: buildinfo.String(),
		Flags:   serveFlags(),
		Action:  serveAction,
		Commands: []*cli.Command{
			ServeCommand(),
			ProbeCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		// --set values may contain commas (server.cors=a,b).
		DisableSliceFlagSeparator: true,
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to YAML configuration file",
		EnvVars: []string{EnvConfigFile},
	}
}

func setFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  "set",
		Usage: "Override a configuration key, e.g. --set server.port=9090 (repeatable)",
	}
}

// parseOverrides turns key=value pairs into a dotted-key map.
func parseOverrides(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", p)
		}
		out[strings.ToLower(k)] = v
	}
	return out, nil
}

func outputFlag(def string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format: table, json, yaml",
		Value:   def,
	}
}
