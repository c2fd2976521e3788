package enums

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by LoadConfig.
const (
	EnvCacheDir             = "TOOLCORE_CACHE_DIR"
	EnvNoRemoteEnumFetching = "TOOLCORE_NO_REMOTE_ENUM_FETCHING"
)

// Config is the environment configuration of a Cache.
type Config struct {
	CacheDir             string `env:"TOOLCORE_CACHE_DIR"`
	NoRemoteEnumFetching bool   `env:"TOOLCORE_NO_REMOTE_ENUM_FETCHING"`
}

// LoadConfig reads Config from the environment. An unset cache dir resolves to
// DefaultCacheDir.
func LoadConfig() (Config, error) {
	cfg, err := parseConfig()
	if err != nil {
		return Config{}, err
	}
	if cfg.CacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return Config{}, err
		}
		cfg.CacheDir = dir
	}
	return cfg, nil
}

func parseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultCacheDir returns ~/.toolcore/cache.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".toolcore", "cache"), nil
}
