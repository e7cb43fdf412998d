package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 20.0, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 40, cfg.HTTP.RateLimitBurst)
	assert.Empty(t, cfg.SnapshotFile)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("SNAPSHOT_FILE", "testdata/acme.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 5, cfg.HTTP.RateLimitBurst)
	assert.Equal(t, 3*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "testdata/acme.yaml", cfg.SnapshotFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown env", "ENV", "qa"},
		{"zero rps", "RATE_LIMIT_RPS", "0"},
		{"negative burst", "RATE_LIMIT_BURST", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "100")
	t.Setenv("TEST_BAD_INT", "abc")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "2h")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.Equal(t, 100, getEnvAsInt("TEST_INT", 50))
	assert.Equal(t, 50, getEnvAsInt("TEST_BAD_INT", 50))
	assert.Equal(t, 7, getEnvAsInt("TEST_MISSING_INT", 7))
	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 2*time.Hour, getEnvAsDuration("TEST_DURATION", "1h"))
	assert.Equal(t, time.Hour, getEnvAsDuration("TEST_BAD_DURATION", "1h"))
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9100\nLOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
