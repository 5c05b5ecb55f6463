package command

import (
	"github.com/urfave/cli/v2"

	"github.com/DistributedDoge/oss-directory/internal/cli/output"
	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/core/service"
	"github.com/DistributedDoge/oss-directory/internal/registry"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// NamespaceSnapshotName names the reconcile output in logs.
const NamespaceSnapshotName = "namespaces"

// ReconcileCommand returns the reconcile command.
func ReconcileCommand() *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "Assign registry slugs to the namespaces of a Dune dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dataset",
				Aliases:  []string{"d"},
				Usage:    "Namespace dataset file (JSON or YAML)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "chain",
				Usage: "Network whose addresses take part",
			},
			&cli.StringFlag{
				Name:  "addresses",
				Usage: "Resolve against this address snapshot instead of loading the registry",
			},
			&cli.StringSliceFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Report only these namespaces (repeatable)",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the namespace -> slug mapping to this YAML file instead of printing it",
			},
		},
		Action: reconcile,
	}
}

func reconcile(c *cli.Context) error {
	r, err := newRun(c, nil)
	if err != nil {
		return err
	}

	f, _, err := formatter(c)
	if err != nil {
		return err
	}

	dataset, err := registry.LoadDataset(c.String("dataset"))
	if err != nil {
		return err
	}

	rec := service.NewReconciler(r.loader(), service.WithReconcilerMetrics(r.metrics))

	var res domain.Resolution
	if path := c.String("addresses"); path != "" {
		known, err := snapshot.Read(path)
		if err != nil {
			return domain.ErrDatasetRead.WithDetails(path).Wrap(err)
		}
		res = rec.ReconcileKnown(r.ctx, dataset, r.cfg.Snapshot.Chain, known)
	} else if res, err = rec.Reconcile(r.ctx, dataset, r.cfg.Snapshot.Chain); err != nil {
		return err
	}

	if names := c.StringSlice("namespace"); len(names) > 0 {
		res = selectNamespaces(r, res, names)
	}

	if out := c.String("out"); out != "" {
		if _, err := r.writer().WriteNode(NamespaceSnapshotName, out, output.ResolutionNode(res), len(res)); err != nil {
			return err
		}
	} else if err := f.Format(c.App.Writer, res); err != nil {
		return err
	}

	return r.finish()
}

// selectNamespaces keeps the named entries in ranking order. Names that are
// not in res (no address on the chain) are logged and skipped.
func selectNamespaces(r *run, res domain.Resolution, names []string) domain.Resolution {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := res.Get(name); !ok {
			r.log.Warn("namespace not in result", "namespace", name)
			continue
		}
		want[name] = true
	}

	out := make(domain.Resolution, 0, len(want))
	for _, ns := range res {
		if want[ns.Namespace] {
			out = append(out, ns)
		}
	}
	return out
}
