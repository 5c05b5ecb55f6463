package config

// Config is the root configuration for ossd.
type Config struct {
	Data     DataSection     `koanf:"data" yaml:"data"`
	Snapshot SnapshotSection `koanf:"snapshot" yaml:"snapshot"`
	Log      LogSection      `koanf:"log" yaml:"log"`
	Metrics  MetricsSection  `koanf:"metrics" yaml:"metrics"`
}

// DataSection locates the project registry.
type DataSection struct {
	// Root is the directory scanned recursively for project YAML files.
	Root string `koanf:"root" yaml:"root"`
}

// SnapshotSection configures snapshot generation.
type SnapshotSection struct {
	// Chain filters addresses by network.
	Chain string `koanf:"chain" yaml:"chain"`

	// Lowercase normalizes keys. Disable to keep addresses and URLs as written.
	Lowercase bool `koanf:"lowercase" yaml:"lowercase"`

	// Repos is the output path of the repository snapshot.
	Repos string `koanf:"repos" yaml:"repos"`

	// Addresses is the output path of the address snapshot.
	Addresses string `koanf:"addresses" yaml:"addresses"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// MetricsSection configures metrics export.
type MetricsSection struct {
	// Textfile is a node_exporter textfile path. Empty disables export.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}
