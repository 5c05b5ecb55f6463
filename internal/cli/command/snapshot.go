package command

import (
	"github.com/urfave/cli/v2"

	"github.com/DistributedDoge/oss-directory/internal/cli/output"
	"github.com/DistributedDoge/oss-directory/internal/core/service"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// SnapshotCommand returns the snapshot command group. Without a
// subcommand it writes both snapshots.
func SnapshotCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Generate lookup snapshots from the project registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "chain",
				Usage: "Network whose addresses are included",
			},
		},
		Action: snapshotAll,
		Subcommands: []*cli.Command{
			{
				Name:  "repos",
				Usage: "Write the repository URL -> slug snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output path",
					},
				},
				Action: snapshotRepos,
			},
			{
				Name:  "addresses",
				Usage: "Write the address -> slug snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output path",
					},
					&cli.StringFlag{
						Name:  "chain",
						Usage: "Network whose addresses are included",
					},
				},
				Action: snapshotAddresses,
			},
		},
	}
}

func (r *run) generator() *service.Generator {
	return service.NewGenerator(r.loader(), r.writer(),
		service.WithMapOptions(service.MapOptions{Lowercase: r.cfg.Snapshot.Lowercase}),
		service.WithGeneratorMetrics(r.metrics),
	)
}

func snapshotAll(c *cli.Context) error {
	r, err := newRun(c, nil)
	if err != nil {
		return err
	}

	gen := r.generator()
	repos, err := gen.RepoSnapshot(r.ctx, r.cfg.Snapshot.Repos)
	if err != nil {
		return err
	}
	addrs, err := gen.AddressSnapshot(r.ctx, r.cfg.Snapshot.Addresses, r.cfg.Snapshot.Chain)
	if err != nil {
		return err
	}

	if err := printSnapshots(c, repos, addrs); err != nil {
		return err
	}
	return r.finish()
}

func snapshotRepos(c *cli.Context) error {
	r, err := newRun(c, map[string]string{"out": "snapshot.repos"})
	if err != nil {
		return err
	}

	info, err := r.generator().RepoSnapshot(r.ctx, r.cfg.Snapshot.Repos)
	if err != nil {
		return err
	}

	if err := printSnapshots(c, info); err != nil {
		return err
	}
	return r.finish()
}

func snapshotAddresses(c *cli.Context) error {
	r, err := newRun(c, map[string]string{"out": "snapshot.addresses"})
	if err != nil {
		return err
	}

	info, err := r.generator().AddressSnapshot(r.ctx, r.cfg.Snapshot.Addresses, r.cfg.Snapshot.Chain)
	if err != nil {
		return err
	}

	if err := printSnapshots(c, info); err != nil {
		return err
	}
	return r.finish()
}

// printSnapshots reports the written files in the selected format.
func printSnapshots(c *cli.Context, infos ...*snapshot.Info) error {
	f, format, err := formatter(c)
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return f.Format(c.App.Writer, infos)
	}

	table := snapshotTable(infos)
	return f.Format(c.App.Writer, table)
}
