package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/DistributedDoge/oss-directory/internal/cli/config"
	"github.com/DistributedDoge/oss-directory/internal/cli/output"
	"github.com/DistributedDoge/oss-directory/internal/infra/buildinfo"
	"github.com/DistributedDoge/oss-directory/internal/registry"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/logger"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/metric"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "ossd",
		Usage:   "OSS Directory snapshot and reconciliation tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			SnapshotCommand(),
			ReconcileCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file (default ./" + config.DefaultConfigFile + " if present)",
			EnvVars: []string{"OSSD_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "data-root",
			Usage: "Directory scanned for project YAML files",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write run metrics to this node_exporter textfile",
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "Keep addresses and repository URLs as written (no lowercasing)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
	}
}

// flagKeys maps flags to the config keys they override.
var flagKeys = map[string]string{
	"data-root":        "data.root",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"metrics-textfile": "metrics.textfile",
	"chain":            "snapshot.chain",
}

// overrides collects the config overrides given on the command line.
// extra maps command specific flags to config keys.
func overrides(c *cli.Context, extra map[string]string) map[string]any {
	out := make(map[string]any)
	for _, keys := range []map[string]string{flagKeys, extra} {
		for flag, key := range keys {
			if c.IsSet(flag) {
				out[key] = c.String(flag)
			}
		}
	}
	if c.Bool("raw") {
		out["snapshot.lowercase"] = false
	}
	return out
}

// run is the state shared by a single command invocation.
type run struct {
	cfg     *config.Config
	log     logger.Logger
	metrics *metric.Recorder
	ctx     context.Context
}

// newRun loads the configuration and prepares logging and metrics.
func newRun(c *cli.Context, extra map[string]string) (*run, error) {
	cfg, err := config.Load(c.String("config"), overrides(c, extra))
	if err != nil {
		return nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = c.App.ErrWriter
	if logCfg.Output == nil {
		logCfg.Output = os.Stderr
	}
	base, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	logger.SetDefault(base)

	runID := logger.NewRunID()
	ctx := logger.WithRunID(logger.WithLogger(c.Context, base), runID)

	return &run{
		cfg:     cfg,
		log:     logger.L(ctx),
		metrics: metric.NewRecorder(),
		ctx:     ctx,
	}, nil
}

func (r *run) loader() *registry.Loader {
	return registry.NewLoader(r.cfg.Data.Root, registry.WithLogger(r.log))
}

func (r *run) writer() *snapshot.Writer {
	return snapshot.NewWriter(snapshot.WithLogger(r.log))
}

// finish stamps the run and exports metrics when configured.
func (r *run) finish() error {
	r.metrics.MarkCompleted(time.Now())
	if r.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	r.log.Debug("wrote metrics", "path", r.cfg.Metrics.Textfile)
	return nil
}

// formatter returns the formatter selected by --output.
func formatter(c *cli.Context) (output.Formatter, output.Format, error) {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return nil, "", err
	}
	return output.NewFormatter(format), format, nil
}
