package config

import "github.com/DistributedDoge/oss-directory/internal/registry"

// Default configuration values.
const (
	DefaultDataRoot      = registry.DefaultRoot
	DefaultChain         = "mainnet"
	DefaultReposPath     = "repo_snapshot.yaml"
	DefaultAddressesPath = "address_snapshot.yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Data: DataSection{
			Root: DefaultDataRoot,
		},
		Snapshot: SnapshotSection{
			Chain:     DefaultChain,
			Lowercase: true,
			Repos:     DefaultReposPath,
			Addresses: DefaultAddressesPath,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
