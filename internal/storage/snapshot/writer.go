package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaolacci/murmur3"
	"gopkg.in/yaml.v3"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/logger"
)

const (
	dirMode  = 0750
	fileMode = 0644
)

// Info describes a written snapshot.
type Info struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Entries int    `json:"entries" yaml:"entries"`
	Size    int64  `json:"size" yaml:"size"`
	// Checksum is the murmur3 64-bit fingerprint of the file content, hex encoded.
	Checksum string `json:"checksum" yaml:"checksum"`
}

// Writer writes snapshots to the filesystem.
type Writer struct {
	log logger.Logger
}

// Option is a function that configures the Writer.
type Option func(*Writer)

// WithLogger sets the logger used to report written snapshots.
func WithLogger(l logger.Logger) Option {
	return func(w *Writer) {
		w.log = l
	}
}

// NewWriter creates a snapshot writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{log: logger.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes mapping and atomically replaces the file at path. The
// parent directory is created if needed. Errors are returned as
// domain.ErrSnapshotWrite.
func (w *Writer) Write(name, path string, mapping map[string]string) (*Info, error) {
	return w.WriteNode(name, path, MappingNode(mapping), len(mapping))
}

// WriteNode is Write for a prepared document, used when key order must
// be preserved as given. entries is reported in Info and the log.
func (w *Writer) WriteNode(name, path string, node *yaml.Node, entries int) (*Info, error) {
	var buf bytes.Buffer
	if err := EncodeNode(&buf, node); err != nil {
		return nil, domain.ErrSnapshotWrite.WithDetails("encode " + name).Wrap(err)
	}
	data := buf.Bytes()

	if err := writeAtomic(path, data); err != nil {
		return nil, domain.ErrSnapshotWrite.WithDetails(path).Wrap(err)
	}

	info := &Info{
		Name:     name,
		Path:     path,
		Entries:  entries,
		Size:     int64(len(data)),
		Checksum: Checksum(data),
	}
	w.log.Info("generated snapshot",
		"name", name,
		"path", path,
		"entries", info.Entries,
		"checksum", info.Checksum)

	return info, nil
}

// Read loads a snapshot written by Write.
func Read(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	return m, nil
}

// Checksum returns the hex murmur3 fingerprint of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", murmur3.Sum64(data))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := file.Name()
	defer os.Remove(tempPath)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tempPath, fileMode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
