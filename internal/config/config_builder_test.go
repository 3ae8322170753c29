package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── precedence ────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, defaults(), cfg)
}

func TestGetStructuredConfig_Precedence(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
app:
  api_key: from-file
  log_level: debug
adapter:
  request_timeout: 30s
  max_body_size: 2048
firebase:
  database_host: file.firebaseio.com
`)
	setEnvVars(t, map[string]string{
		"CONFIG":                  path,
		"APP_API_KEY":             "from-env",
		"ADAPTER_REQUEST_TIMEOUT": "40s",
	})

	cfg, rest, err := GetStructuredConfig([]string{"-timeout", "50s", "signin"})
	require.NoError(t, err)

	assert.Equal(t, []string{"signin"}, rest)
	// flags > env > file > defaults
	assert.Equal(t, 50*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "from-env", cfg.App.APIKey)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, int64(2048), cfg.Adapter.MaxBodySize)
	assert.Equal(t, "file.firebaseio.com", cfg.Firebase.DatabaseHost)
	assert.Equal(t, 443, cfg.Adapter.Port)
	assert.Equal(t, "identitytoolkit.googleapis.com", cfg.Firebase.IdentityHost)
	assert.Equal(t, EngineRaw, cfg.Adapter.Engine)
}

// TestGetStructuredConfig_FilePathFromFlag verifies -c wins over CONFIG.
func TestGetStructuredConfig_FilePathFromFlag(t *testing.T) {
	envFile := writeConfigFile(t, "env.json", `{"app": {"api_key": "env-file"}}`)
	flagFile := writeConfigFile(t, "flag.jsonc", `{
		// chosen by -c
		"app": {"api_key": "flag-file",},
	}`)
	setEnvVars(t, map[string]string{"CONFIG": envFile})

	cfg, _, err := GetStructuredConfig([]string{"-c", flagFile})
	require.NoError(t, err)
	assert.Equal(t, "flag-file", cfg.App.APIKey)
	assert.Equal(t, flagFile, cfg.ConfigFilePath)
}

func TestGetStructuredConfig_Errors(t *testing.T) {
	t.Run("bad flag", func(t *testing.T) {
		clearEnvVars(t)
		_, _, err := GetStructuredConfig([]string{"-nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error occured during building config")
	})

	t.Run("bad env", func(t *testing.T) {
		setEnvVars(t, map[string]string{"ADAPTER_PORT": "https"})
		_, _, err := GetStructuredConfig(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error getting env configs")
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnvVars(t)
		_, _, err := GetStructuredConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading a config file")
	})

	t.Run("unsupported file", func(t *testing.T) {
		clearEnvVars(t)
		_, _, err := GetStructuredConfig([]string{"-c", writeConfigFile(t, "config.ini", "a=1")})
		assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
	})
}

// TestConfigBuilder_SkipsMissingLayers verifies that build tolerates layers
// that were never collected.
func TestConfigBuilder_SkipsMissingLayers(t *testing.T) {
	cfg, rest, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Nil(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
