// Package command provides CLI command definitions for gitops-demo.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/gitops-demo/internal/cli/output"
	"github.com/yndnr/gitops-demo/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print build information",
		Flags:  []cli.Flag{outputFlag("table")},
		Action: version,
	}
}

func version(c *cli.Context) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}

	if format == output.FormatTable {
		_, err := fmt.Fprintf(c.App.Writer, "gitops-demo %s\n", buildinfo.String())
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, buildinfo.Get())
}
