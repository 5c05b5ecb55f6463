package service

import (
	"context"
	"fmt"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// Snapshot names, used in logs and metric labels.
const (
	RepoSnapshotName    = "repos"
	AddressSnapshotName = "addresses"
)

// Generator builds snapshots from the project corpus.
type Generator struct {
	source  ProjectSource
	writer  SnapshotWriter
	opts    MapOptions
	metrics Recorder
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMapOptions overrides the key normalization options.
func WithMapOptions(opts MapOptions) GeneratorOption {
	return func(g *Generator) {
		g.opts = opts
	}
}

// WithGeneratorMetrics sets the recorder that receives corpus and snapshot stats.
func WithGeneratorMetrics(m Recorder) GeneratorOption {
	return func(g *Generator) {
		if m != nil {
			g.metrics = m
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(source ProjectSource, writer SnapshotWriter, opts ...GeneratorOption) *Generator {
	g := &Generator{
		source:  source,
		writer:  writer,
		opts:    DefaultMapOptions(),
		metrics: nopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RepoSnapshot writes the repository URL -> slug snapshot to path.
func (g *Generator) RepoSnapshot(ctx context.Context, path string) (*snapshot.Info, error) {
	projects, err := g.load(ctx)
	if err != nil {
		return nil, err
	}
	return g.write(RepoSnapshotName, path, MapReposToSlugs(projects, g.opts))
}

// AddressSnapshot writes the address -> slug snapshot for chain to path.
func (g *Generator) AddressSnapshot(ctx context.Context, path, chain string) (*snapshot.Info, error) {
	projects, err := g.load(ctx)
	if err != nil {
		return nil, err
	}
	return g.write(AddressSnapshotName, path, MapAddressesToSlugs(projects, chain, g.opts))
}

func (g *Generator) load(ctx context.Context) ([]domain.Project, error) {
	projects, stats, err := g.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	g.metrics.ObserveCorpus(stats)
	return projects, nil
}

func (g *Generator) write(name, path string, mapping map[string]string) (*snapshot.Info, error) {
	info, err := g.writer.Write(name, path, mapping)
	if err != nil {
		return nil, fmt.Errorf("write %s snapshot: %w", name, err)
	}
	g.metrics.ObserveSnapshot(name, info.Entries)
	return info, nil
}
