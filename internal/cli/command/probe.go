// Package command provides CLI command definitions for gitops-demo.
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/gitops-demo/internal/cli/connection"
	"github.com/yndnr/gitops-demo/internal/cli/output"
)

// ProbeResult holds the mappings returned by both greeting endpoints.
type ProbeResult struct {
	Server string            `json:"server" yaml:"server"`
	Root   map[string]string `json:"root" yaml:"root"`
	API    map[string]string `json:"api" yaml:"api"`
}

// ProbeCommand returns the probe command.
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Query a running server and print its greetings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Server address (e.g., localhost:8080)",
				EnvVars: []string{EnvProbeServer},
				Value:   "localhost:8080",
			},
			outputFlag("table"),
		},
		Action: probe,
	}
}

func probe(c *cli.Context) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}

	client := connection.NewHTTPClient(c.String("server"))
	result, err := runProbe(c.Context, client)
	if err != nil {
		return err
	}

	if format == output.FormatTable {
		return result.Table().Render(c.App.Writer)
	}
	return output.NewFormatter(format).Format(c.App.Writer, result)
}

func runProbe(ctx context.Context, client *connection.HTTPClient) (*ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, connection.DefaultTimeout)
	defer cancel()

	result := &ProbeResult{Server: client.BaseURL()}
	if err := client.GetJSON(ctx, "/", &result.Root); err != nil {
		return nil, err
	}
	if err := client.GetJSON(ctx, "/api/hello", &result.API); err != nil {
		return nil, err
	}
	return result, nil
}

// Table renders both mappings as ENDPOINT/KEY/VALUE rows.
func (r *ProbeResult) Table() *output.Table {
	t := &output.Table{Headers: []string{"ENDPOINT", "KEY", "VALUE"}}
	addMapping(t, "/", r.Root)
	addMapping(t, "/api/hello", r.API)
	return t
}

func addMapping(t *output.Table, endpoint string, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.AddRow(endpoint, k, m[k])
	}
}
