// Package config assembles runtime settings for the portal CLI from
// defaults, an optional .env file, environment variables, an optional JSON
// file and command-line flags. Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerBaseURL: origin of the directory backend, e.g. "http://localhost:8000".
//   - RequestTimeout: per-request timeout for API calls.
//   - StateDir: directory for the persisted session state file.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StateDir       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.StateDir = defaultStateDir()
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".bsc-portal"
	}
	return filepath.Join(base, "bsc-portal")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), from JSON
// (if -c/-config points at a file) and from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
