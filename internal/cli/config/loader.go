package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/DistributedDoge/oss-directory/internal/infra/confloader"
)

// DefaultConfigFile is read when present and no file is given explicitly.
const DefaultConfigFile = "ossd.yaml"

// Load builds the configuration from defaults, the config file,
// OSSD_* environment variables and overrides, in increasing priority, and
// verifies the result.
//
// An explicitly given path must exist. With an empty path DefaultConfigFile
// is used if it exists in the working directory.
func Load(path string, overrides map[string]any) (*Config, error) {
	cfg, _, err := LoadWithKeys(path, overrides)
	return cfg, err
}

// LoadWithKeys is Load that also returns the sorted keys set explicitly by
// the file, the environment or the overrides. Keys not listed hold defaults.
func LoadWithKeys(path string, overrides map[string]any) (*Config, []string, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("stat %s: %w", DefaultConfigFile, err)
		}
	}

	opts := []confloader.Option{confloader.WithOverrides(overrides)}
	if path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, loader.Keys(), nil
}
