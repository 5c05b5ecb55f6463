package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

func sampleCorpus() []domain.Project {
	return []domain.Project{
		{
			Slug:   "alpha",
			Github: []domain.GithubEntry{{URL: "https://github.com/Alpha/"}},
			Blockchain: []domain.BlockchainEntry{
				{Networks: []string{"mainnet"}, Address: "0xAA"},
				{Networks: []string{"base"}, Address: "0xBB"},
			},
		},
		{},
		{Slug: "beta", Github: []domain.GithubEntry{{URL: "https://github.com/beta/core"}}},
	}
}

func TestGenerator_RepoSnapshot(t *testing.T) {
	source := &fakeSource{projects: sampleCorpus()}
	writer := &fakeWriter{}
	rec := &fakeRecorder{}

	info, err := NewGenerator(source, writer, WithGeneratorMetrics(rec)).RepoSnapshot(context.Background(), "repo_snapshot.yaml")
	if err != nil {
		t.Fatalf("RepoSnapshot() error = %v", err)
	}
	if info.Entries != 2 {
		t.Errorf("Entries = %d, want 2", info.Entries)
	}

	got := writer.written["repo_snapshot.yaml"]
	if got["https://github.com/alpha"] != "alpha" || got["https://github.com/beta/core"] != "beta" {
		t.Errorf("written = %v", got)
	}
	if rec.snapshots[RepoSnapshotName] != 2 {
		t.Errorf("recorded entries = %d, want 2", rec.snapshots[RepoSnapshotName])
	}
}

func TestGenerator_AddressSnapshot(t *testing.T) {
	source := &fakeSource{projects: sampleCorpus()}
	writer := &fakeWriter{}
	g := NewGenerator(source, writer)

	if _, err := g.AddressSnapshot(context.Background(), "mainnet.yaml", "mainnet"); err != nil {
		t.Fatalf("AddressSnapshot() error = %v", err)
	}
	if _, err := g.AddressSnapshot(context.Background(), "base.yaml", "base"); err != nil {
		t.Fatalf("AddressSnapshot() error = %v", err)
	}

	if got := writer.written["mainnet.yaml"]; len(got) != 1 || got["0xaa"] != "alpha" {
		t.Errorf("mainnet = %v, want map[0xaa:alpha]", got)
	}
	if got := writer.written["base.yaml"]; len(got) != 1 || got["0xbb"] != "alpha" {
		t.Errorf("base = %v, want map[0xbb:alpha]", got)
	}
	if source.loads != 2 {
		t.Errorf("loads = %d, want 2 (corpus is reloaded per snapshot)", source.loads)
	}
}

func TestGenerator_RawKeys(t *testing.T) {
	writer := &fakeWriter{}
	g := NewGenerator(&fakeSource{projects: sampleCorpus()}, writer, WithMapOptions(MapOptions{}))

	if _, err := g.RepoSnapshot(context.Background(), "raw.yaml"); err != nil {
		t.Fatalf("RepoSnapshot() error = %v", err)
	}
	if got := writer.written["raw.yaml"]; got["https://github.com/Alpha/"] != "alpha" {
		t.Errorf("raw = %v, want untouched URL", got)
	}
}

func TestGenerator_EmptyCorpusStillWrites(t *testing.T) {
	writer := &fakeWriter{}
	info, err := NewGenerator(&fakeSource{}, writer).RepoSnapshot(context.Background(), "empty.yaml")
	if err != nil {
		t.Fatalf("RepoSnapshot() error = %v", err)
	}
	if info.Entries != 0 {
		t.Errorf("Entries = %d, want 0", info.Entries)
	}
	if _, ok := writer.written["empty.yaml"]; !ok {
		t.Error("empty mapping should still be written")
	}
}

func TestGenerator_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewGenerator(&fakeSource{err: boom}, &fakeWriter{}).RepoSnapshot(context.Background(), "x.yaml")
	if !errors.Is(err, boom) {
		t.Errorf("source error = %v, want %v", err, boom)
	}

	_, err = NewGenerator(&fakeSource{projects: sampleCorpus()}, &fakeWriter{err: domain.ErrSnapshotWrite}).
		AddressSnapshot(context.Background(), "x.yaml", "mainnet")
	if !errors.Is(err, domain.ErrSnapshotWrite) {
		t.Errorf("writer error = %v, want ErrSnapshotWrite", err)
	}
}
