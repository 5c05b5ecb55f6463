package command

import (
	"github.com/urfave/cli/v2"

	"github.com/DistributedDoge/oss-directory/internal/cli/output"
	"github.com/DistributedDoge/oss-directory/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			f, format, err := formatter(c)
			if err != nil {
				return err
			}

			info := buildinfo.Get()
			if format != output.FormatTable {
				return f.Format(c.App.Writer, info)
			}

			table := &output.Table{}
			table.SetHeaders("FIELD", "VALUE")
			table.AddRow("version", info.Version)
			table.AddRow("commit", info.Commit)
			table.AddRow("build_time", info.BuildTime)
			table.AddRow("go_version", info.GoVersion)
			return f.Format(c.App.Writer, table)
		},
	}
}
