package command

import (
	"github.com/urfave/cli/v2"

	"github.com/DistributedDoge/oss-directory/internal/cli/config"
	"github.com/DistributedDoge/oss-directory/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the effective configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "keys",
						Usage: "List only the keys set by the config file, environment or flags",
					},
				},
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration without running",
				Action: configValidate,
			},
		},
	}
}

// configShow prints the merged configuration. Table output falls back to YAML.
// With --keys only the explicitly set keys are listed.
func configShow(c *cli.Context) error {
	cfg, keys, err := config.LoadWithKeys(c.String("config"), overrides(c, nil))
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	if c.Bool("keys") {
		return showKeys(c, format, keys)
	}
	if format == output.FormatTable {
		format = output.FormatYAML
	}
	return output.NewFormatter(format).Format(c.App.Writer, cfg)
}

func configValidate(c *cli.Context) error {
	if _, err := config.Load(c.String("config"), overrides(c, nil)); err != nil {
		return err
	}
	_, err := c.App.Writer.Write([]byte("configuration is valid\n"))
	return err
}

func showKeys(c *cli.Context, format output.Format, keys []string) error {
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(c.App.Writer, keys)
	}

	table := &output.Table{}
	table.SetHeaders("KEY")
	for _, k := range keys {
		table.AddRow(k)
	}
	return output.NewFormatter(format).Format(c.App.Writer, table)
}
