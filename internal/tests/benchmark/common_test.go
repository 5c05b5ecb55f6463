package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/registry"
)

// ProjectCounts defines the registry sizes for benchmarking.
var ProjectCounts = []int{1000, 5000, 10000}

// address returns a deterministic mixed-case address for project i.
func address(i, n int) string {
	return fmt.Sprintf("0x%038X%02x", i, n)
}

// newProjects builds count projects with two addresses and one repo each.
func newProjects(count int) []domain.Project {
	projects := make([]domain.Project, count)
	for i := range projects {
		slug := fmt.Sprintf("project-%d", i)
		projects[i] = domain.Project{
			Slug: slug,
			Blockchain: []domain.BlockchainEntry{
				{Address: address(i, 0), Networks: []string{"mainnet"}},
				{Address: address(i, 1), Networks: []string{"mainnet", "optimism"}},
			},
			Github: []domain.GithubEntry{
				{URL: "https://github.com/Org/" + slug + "/"},
			},
		}
	}
	return projects
}

// newDataset builds a dataset whose namespaces reference every other project.
func newDataset(count int) domain.NamespaceDataset {
	ds := make(domain.NamespaceDataset, count/2)
	for i := 0; i < count; i += 2 {
		ds[fmt.Sprintf("ns_%d", i)] = map[string]domain.AddressDetails{
			strings.ToLower(address(i, 0)): {Networks: []string{"mainnet"}},
			fmt.Sprintf("0xunknown%d", i):  {Networks: []string{"mainnet"}},
		}
	}
	return ds
}

// writeRegistry writes count project files below a temp dir and returns
// the root.
func writeRegistry(b *testing.B, count int) string {
	b.Helper()
	root := b.TempDir()
	for i := 0; i < count; i++ {
		dir := filepath.Join(root, fmt.Sprintf("%02d", i%100))
		if err := os.MkdirAll(dir, 0755); err != nil {
			b.Fatalf("mkdir: %v", err)
		}
		content := fmt.Sprintf("slug: project-%d\nblockchain:\n  - address: %q\n    networks: [mainnet]\n", i, address(i, 0))
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("project-%d.yaml", i)), []byte(content), 0644); err != nil {
			b.Fatalf("write: %v", err)
		}
	}
	return root
}

// staticSource serves a prebuilt corpus.
type staticSource []domain.Project

func (s staticSource) Load(context.Context) ([]domain.Project, registry.Stats, error) {
	return s, registry.Stats{Files: len(s)}, nil
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.HeapAlloc)/1024/1024, prefix+"_heap_MB")
}
