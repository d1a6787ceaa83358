package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.NotEmpty(t, c.StateDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"portal"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv(EnvServerBaseURL, "http://portal.test:9000")
	t.Setenv(EnvRequestTimeout, "3s")
	t.Setenv(EnvStateDir, "/tmp/portal-state")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://portal.test:9000", c.ServerBaseURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/portal-state", c.StateDir)
}

func TestParseEnv_InvalidTimeoutKeepsDefault(t *testing.T) {
	t.Setenv(EnvRequestTimeout, "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestParseJson_OverlaysConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	data, err := json.Marshal(map[string]any{
		"server_base_url": "http://json.test:8000",
		"request_timeout": "7s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"portal", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://json.test:8000", c.ServerBaseURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
	// fields absent from JSON keep previous values
	assert.NotEmpty(t, c.StateDir)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"portal", "-a", "http://flag.test:8000", "-t", "20"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://flag.test:8000", c.ServerBaseURL)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"5s"`, 5 * time.Second, false},
		{"integer nanoseconds", `1000000000`, time.Second, false},
		{"garbage", `"xx"`, 0, true},
		{"wrong type", `true`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d duration
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Duration)
		})
	}
}
