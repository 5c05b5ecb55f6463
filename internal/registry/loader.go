package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/logger"
)

// FileSuffix is the suffix of project record files.
const FileSuffix = ".yaml"

// DefaultRoot is the data directory used when none is configured.
const DefaultRoot = "data/projects"

// Stats summarizes a load.
type Stats struct {
	Files       int
	ParseErrors int
}

// Loader reads project records from a directory tree.
type Loader struct {
	root string
	log  logger.Logger
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		ld.log = l
	}
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string, opts ...Option) *Loader {
	if root == "" {
		root = DefaultRoot
	}
	l := &Loader{
		root: root,
		log:  logger.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load finds and decodes every project file under the root.
//
// The returned slice has one entry per file, in walk order. A file that
// failed to parse contributes what could be decoded, which is the zero
// domain.Project on a syntax error. When no files are
// found the result is empty and err is nil.
func (l *Loader) Load(ctx context.Context) ([]domain.Project, Stats, error) {
	files, err := l.FindYAMLFiles()
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Files: len(files)}
	if len(files) == 0 {
		l.log.Warn("no YAML files found", "path", l.root)
		return []domain.Project{}, stats, nil
	}
	l.log.Info("found yaml files", "count", len(files), "path", l.root)

	projects := make([]domain.Project, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		p, err := LoadFile(file)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				return nil, stats, err
			}
			l.log.Warn("yaml parse error", "file", file, "error", perr.Err)
			stats.ParseErrors++
		}
		projects = append(projects, p)
	}

	return projects, stats, nil
}

// FindYAMLFiles lists the project files below the root in lexical walk
// order. A root that does not exist yields no files. Unreadable
// subdirectories are skipped, as are entries that are not regular files
// after following symlinks.
func (l *Loader) FindYAMLFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			if d != nil && d.IsDir() && path != l.root {
				l.log.Debug("skipping unreadable directory", "path", path, "error", err)
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), FileSuffix) {
			return nil
		}
		if isRegularFile(path, d) {
			files = append(files, path)
		} else {
			l.log.Debug("skipping non-regular file", "path", path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ErrCorpusRead.WithDetails(l.root).Wrap(err)
	}
	return files, nil
}

// isRegularFile reports whether the entry is a regular file, resolving
// symlinks. Dangling links are not.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ParseError reports a project file that is not a valid record document.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile reads a single project file.
//
// A read failure is returned as domain.ErrCorpusRead. A decode failure is
// returned as *ParseError together with whatever Parse recovered. An
// empty document yields the zero Project and no error.
func LoadFile(path string) (domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Project{}, domain.ErrCorpusRead.WithDetails(path).Wrap(err)
	}

	p, err := Parse(data)
	if err != nil {
		return p, &ParseError{File: path, Err: err}
	}
	return p, nil
}

// Parse decodes exactly one YAML document into a Project.
//
// Repeated mapping keys are accepted and the last one wins. When a field
// has the wrong type the rest of the record is still decoded and returned
// alongside the *yaml.TypeError. Any other failure yields the zero Project.
func Parse(data []byte) (domain.Project, error) {
	var doc yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Project{}, nil
		}
		return domain.Project{}, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return domain.Project{}, err
		}
		return domain.Project{}, errors.New("expected a single document in the stream")
	}

	dropDuplicateKeys(&doc)

	var p domain.Project
	if err := doc.Decode(&p); err != nil {
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			return p, err
		}
		return domain.Project{}, err
	}
	return p, nil
}

// dropDuplicateKeys keeps only the last occurrence of each scalar key in
// every mapping below n.
func dropDuplicateKeys(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		last := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; k.Kind == yaml.ScalarNode {
				last[k.Value] = i
			}
		}

		content := n.Content[:0]
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.ScalarNode && last[k.Value] != i {
				continue
			}
			content = append(content, k, n.Content[i+1])
		}
		n.Content = content
	}

	for _, c := range n.Content {
		dropDuplicateKeys(c)
	}
}
