package config

import (
	"fmt"
	"strings"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/logger"
)

// Verify validates the configuration. Failures wrap domain.ErrInvalidConfig.
func Verify(cfg *Config) error {
	if err := verifyData(&cfg.Data); err != nil {
		return err
	}
	if err := verifySnapshot(&cfg.Snapshot); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyData(cfg *DataSection) error {
	if strings.TrimSpace(cfg.Root) == "" {
		return invalid("data.root is required")
	}
	return nil
}

func verifySnapshot(cfg *SnapshotSection) error {
	if strings.TrimSpace(cfg.Chain) == "" {
		return invalid("snapshot.chain is required")
	}
	if cfg.Repos == "" {
		return invalid("snapshot.repos is required")
	}
	if cfg.Addresses == "" {
		return invalid("snapshot.addresses is required")
	}
	if cfg.Repos == cfg.Addresses {
		return invalid("snapshot.repos and snapshot.addresses must differ")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return invalid(fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Level))
	}
	switch strings.ToLower(cfg.Format) {
	case "text", "console", "json":
	default:
		return invalid(fmt.Sprintf("log.format %q is not one of text, json", cfg.Format))
	}
	return nil
}

func invalid(details string) error {
	return domain.ErrInvalidConfig.WithDetails(details)
}
