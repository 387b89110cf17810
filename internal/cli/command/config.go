// Package command provides CLI command definitions for gitops-demo.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/gitops-demo/internal/cli/output"
	"github.com/yndnr/gitops-demo/internal/infra/confloader"
	"github.com/yndnr/gitops-demo/internal/server/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration inspection",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration (defaults, file and environment merged)",
				Flags:  []cli.Flag{configFlag(), setFlag(), outputFlag("yaml")},
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the effective configuration",
				Flags:  []cli.Flag{configFlag(), setFlag()},
				Action: configValidate,
			},
		},
	}
}

// loadConfig resolves defaults, the optional file, the environment and
// --set overrides, then validates the result.
func loadConfig(configFile string, overrides map[string]any) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithEnvIgnore(flagEnvVars...)}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}
	if len(overrides) > 0 {
		opts = append(opts, confloader.WithOverrides(overrides))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configShow(c *cli.Context) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		format = output.FormatYAML
	}

	cfg, err := loadConfigFromFlags(c)
	if err != nil {
		return err
	}

	return output.NewFormatter(format).Format(c.App.Writer, cfg)
}

func configValidate(c *cli.Context) error {
	if _, err := loadConfigFromFlags(c); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "configuration is valid")
	return nil
}

func loadConfigFromFlags(c *cli.Context) (*config.ServerConfig, error) {
	overrides, err := parseOverrides(c.StringSlice("set"))
	if err != nil {
		return nil, err
	}
	return loadConfig(c.String("config"), overrides)
}
