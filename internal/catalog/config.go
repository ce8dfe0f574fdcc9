// File path: internal/catalog/config.go
package catalog

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config controls the SQLite connection backing the snapshot catalog.
type Config struct {
	Path string

	MaxOpenConns int
	MaxIdleConns int
	BusyTimeout  time.Duration
}

// DefaultConfig returns the baseline catalog configuration.
func DefaultConfig() Config {
	return Config{
		Path:         filepath.Join("data", "snapshots.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		BusyTimeout:  5 * time.Second,
	}
}

// LoadConfig builds a Config from defaults and QUICKSTART_* environment
// variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if value := strings.TrimSpace(os.Getenv("QUICKSTART_CATALOG_PATH")); value != "" {
		cfg.Path = value
	}
	if value := strings.TrimSpace(os.Getenv("QUICKSTART_CATALOG_MAX_OPEN_CONNS")); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			cfg.MaxOpenConns = parsed
		}
	}
	if value := strings.TrimSpace(os.Getenv("QUICKSTART_CATALOG_MAX_IDLE_CONNS")); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			cfg.MaxIdleConns = parsed
		}
	}
	if value := strings.TrimSpace(os.Getenv("QUICKSTART_CATALOG_BUSY_TIMEOUT")); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			cfg.BusyTimeout = parsed
		}
	}
	return applyDefaults(cfg)
}

func applyDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.Path) == "" {
		cfg.Path = defaults.Path
	}
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = defaults.MaxOpenConns
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = defaults.MaxIdleConns
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = defaults.BusyTimeout
	}
	return cfg
}
