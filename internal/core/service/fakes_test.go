package service

import (
	"context"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/registry"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

type fakeSource struct {
	projects []domain.Project
	err      error
	loads    int
}

func (f *fakeSource) Load(ctx context.Context) ([]domain.Project, registry.Stats, error) {
	f.loads++
	if f.err != nil {
		return nil, registry.Stats{}, f.err
	}
	return f.projects, registry.Stats{Files: len(f.projects)}, nil
}

type fakeWriter struct {
	written map[string]map[string]string
	err     error
}

func (f *fakeWriter) Write(name, path string, mapping map[string]string) (*snapshot.Info, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.written == nil {
		f.written = make(map[string]map[string]string)
	}
	f.written[path] = mapping
	return &snapshot.Info{Name: name, Path: path, Entries: len(mapping)}, nil
}

type fakeRecorder struct {
	corpusFiles int
	snapshots   map[string]int
	resolved    int
	unresolved  int
}

func (f *fakeRecorder) ObserveCorpus(stats registry.Stats) {
	f.corpusFiles += stats.Files
}

func (f *fakeRecorder) ObserveSnapshot(name string, entries int) {
	if f.snapshots == nil {
		f.snapshots = make(map[string]int)
	}
	f.snapshots[name] = entries
}

func (f *fakeRecorder) ObserveResolution(resolved, unresolved int) {
	f.resolved = resolved
	f.unresolved = unresolved
}
