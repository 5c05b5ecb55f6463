package registry

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

// LoadDataset reads a namespace dataset from path.
//
// The file maps namespace -> address -> {networks, slug}. JSON exports
// decode as well, since JSON is valid YAML. An empty file yields an empty
// dataset. Any failure is returned as domain.ErrDatasetRead.
func LoadDataset(path string) (domain.NamespaceDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrDatasetRead.WithDetails(path).Wrap(err)
	}

	ds := make(domain.NamespaceDataset)
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, domain.ErrDatasetRead.WithDetails(path).Wrap(err)
	}
	return ds, nil
}
