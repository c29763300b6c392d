package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "CONFIG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, c.Port)
	assert.Equal(t, ":3000", c.Addr())
	assert.Equal(t, DefaultAPIKey, c.APIKey)
	assert.True(t, c.UsesDefaultAPIKey())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("API_KEY", "s3cr3t")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, c.Port)
	assert.Equal(t, "s3cr3t", c.APIKey)
	assert.False(t, c.UsesDefaultAPIKey())
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\napi_key: from-file\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, c.Port)
	assert.Equal(t, "from-file", c.APIKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"port out of range": {"PORT": "70000"},
		"unknown log level": {"LOG_LEVEL": "loud"},
		"unknown format":    {"LOG_FORMAT": "xml"},
		"missing file":      {"CONFIG_FILE": "/does/not/exist.yaml"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
