package confloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Data struct {
		Root string `koanf:"root"`
	} `koanf:"data"`
	Snapshot struct {
		Chain     string `koanf:"chain"`
		Lowercase bool   `koanf:"lowercase"`
	} `koanf:"snapshot"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ossd.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithConfigFile("/path/to/config.yaml"),
		WithOverrides(map[string]any{"data.root": "x"}),
	)

	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if l.overrides["data.root"] != "x" {
		t.Errorf("overrides = %v", l.overrides)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
data:
  root: /srv/oss-directory/data/projects
snapshot:
  chain: optimism
  lowercase: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.k.String("data.root"); got != "/srv/oss-directory/data/projects" {
		t.Errorf("data.root = %q", got)
	}
	if !l.k.Bool("snapshot.lowercase") {
		t.Error("snapshot.lowercase should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("OSSD_DATA_ROOT", "/from/env")
	t.Setenv("OSSD_SNAPSHOT_CHAIN", "base")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.k.String("data.root"); got != "/from/env" {
		t.Errorf("data.root = %q, want %q", got, "/from/env")
	}
	if got := l.k.String("snapshot.chain"); got != "base" {
		t.Errorf("snapshot.chain = %q, want %q", got, "base")
	}
}

func TestLoader_LoadMap_Unflattens(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"snapshot.chain": "arbitrum"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Snapshot.Chain != "arbitrum" {
		t.Errorf("Chain = %q, want %q", cfg.Snapshot.Chain, "arbitrum")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
data:
  root: from-file
snapshot:
  chain: from-file
  lowercase: true
`)
	t.Setenv("OSSD_SNAPSHOT_CHAIN", "from-env")
	t.Setenv("OSSD_SNAPSHOT_LOWERCASE", "false")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"data.root": "from-flag"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.Root != "from-flag" {
		t.Errorf("Root = %q, want %q (flag should override file)", cfg.Data.Root, "from-flag")
	}
	if cfg.Snapshot.Chain != "from-env" {
		t.Errorf("Chain = %q, want %q (env should override file)", cfg.Snapshot.Chain, "from-env")
	}
	if cfg.Snapshot.Lowercase {
		t.Error("Lowercase should be false from env")
	}

	want := []string{"data.root", "snapshot.chain", "snapshot.lowercase"}
	if got := l.Keys(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	var cfg testConfig
	cfg.Data.Root = "data/projects"
	cfg.Snapshot.Chain = "mainnet"

	path := writeConfig(t, "snapshot:\n  chain: optimism\n")
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.Root != "data/projects" {
		t.Errorf("Root = %q, want default kept", cfg.Data.Root)
	}
	if cfg.Snapshot.Chain != "optimism" {
		t.Errorf("Chain = %q, want %q", cfg.Snapshot.Chain, "optimism")
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := (mapProvider{}).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}
