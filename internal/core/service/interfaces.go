package service

import (
	"context"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/registry"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// ProjectSource provides the project corpus. *registry.Loader implements it.
type ProjectSource interface {
	Load(ctx context.Context) ([]domain.Project, registry.Stats, error)
}

// SnapshotWriter persists a key -> slug mapping. *snapshot.Writer implements it.
type SnapshotWriter interface {
	Write(name, path string, mapping map[string]string) (*snapshot.Info, error)
}

// Recorder receives run statistics. *metric.Recorder implements it.
type Recorder interface {
	ObserveCorpus(stats registry.Stats)
	ObserveSnapshot(name string, entries int)
	ObserveResolution(resolved, unresolved int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCorpus(registry.Stats) {}
func (nopRecorder) ObserveSnapshot(string, int) {}
func (nopRecorder) ObserveResolution(int, int) {}
