package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	EnvServerBaseURL  = "PORTAL_SERVER_URL"
	EnvRequestTimeout = "PORTAL_REQUEST_TIMEOUT"
	EnvStateDir       = "PORTAL_STATE_DIR"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first (missing file is
// fine); explicitly exported variables win over .env entries because
// godotenv never overrides existing keys.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		cfg.StateDir = v
	}
}
