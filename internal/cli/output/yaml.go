package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// YAMLFormatter formats data as YAML.
type YAMLFormatter struct{}

// Format formats data as YAML.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case domain.Resolution:
		return snapshot.EncodeNode(w, ResolutionNode(v))
	case map[string]string:
		return snapshot.EncodeNode(w, snapshot.MappingNode(v))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(snapshot.Indent)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
