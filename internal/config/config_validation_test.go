package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	cfg := defaults()
	cfg.App.APIKey = "api-key"
	return newClientConfig(cfg)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults with key", mutate: func(c *ClientConfig) {}},
		{
			name:    "missing api key",
			mutate:  func(c *ClientConfig) { c.Firebase.apiKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing identity host",
			mutate:  func(c *ClientConfig) { c.Firebase.identityHost = "" },
			wantErr: ErrInvalidFirebaseConfigs,
		},
		{
			name:    "missing token host",
			mutate:  func(c *ClientConfig) { c.Firebase.tokenHost = "" },
			wantErr: ErrInvalidFirebaseConfigs,
		},
		{
			name:    "unknown detection",
			mutate:  func(c *ClientConfig) { c.Firebase.successDetection = "fuzzy" },
			wantErr: ErrInvalidFirebaseConfigs,
		},
		{
			name:    "unknown engine",
			mutate:  func(c *ClientConfig) { c.Adapter.Engine = "curl" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "port out of range",
			mutate:  func(c *ClientConfig) { c.Adapter.Port = 70000 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative poll interval",
			mutate:  func(c *ClientConfig) { c.Adapter.PollInterval = -time.Millisecond },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero body size",
			mutate:  func(c *ClientConfig) { c.Adapter.MaxBodySize = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "bad pin",
			mutate:  func(c *ClientConfig) { c.Adapter.PinnedKeys = []string{"md5/abc"} },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "shared memory dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "file:s?mode=memory&cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:   "file dsn",
			mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "file:session.db" },
		},
		{
			name:   "textual detection",
			mutate: func(c *ClientConfig) { c.Firebase.successDetection = SuccessTextual },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	t.Run("maps structured fields", func(t *testing.T) {
		setEnvVars(t, map[string]string{
			"APP_API_KEY":    "api-key",
			"APP_VERSION":    "1.0.0",
			"STORAGE_DB_DSN": "file:session.db",
		})

		cfg, rest, err := GetClientConfig([]string{"-db-host", "demo.firebaseio.com", "-pin", "sha256/" + pinOfZeros, "get", "a/b"})
		require.NoError(t, err)

		assert.Equal(t, []string{"get", "a/b"}, rest)
		assert.Equal(t, ClientApp{Version: "1.0.0", LogLevel: "info"}, cfg.App)
		assert.Equal(t, "api-key", cfg.Firebase.APIKey())
		assert.Equal(t, "demo.firebaseio.com", cfg.Firebase.DatabaseHost())
		assert.False(t, cfg.Firebase.TextualSuccess())
		assert.Equal(t, EngineRaw, cfg.Adapter.Engine)
		assert.Equal(t, []string{"sha256/" + pinOfZeros}, cfg.Adapter.PinnedKeys)
		assert.Equal(t, "file:session.db", cfg.Storage.DB.DSN)
	})

	t.Run("missing api key", func(t *testing.T) {
		clearEnvVars(t)
		cfg, _, err := GetClientConfig(nil)
		assert.ErrorIs(t, err, ErrInvalidAppConfigs)
		assert.NotNil(t, cfg)
	})

	t.Run("structured error", func(t *testing.T) {
		clearEnvVars(t)
		cfg, _, err := GetClientConfig([]string{"-nope"})
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "error get structured config")
	})
}

// pinOfZeros is the base64 of 32 zero bytes.
const pinOfZeros = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func TestNewClientFirebase(t *testing.T) {
	f := NewClientFirebase("k", "id.example", "tok.example", "db.example", "base", "")
	assert.Equal(t, "k", f.APIKey())
	assert.Equal(t, "id.example", f.IdentityHost())
	assert.Equal(t, "tok.example", f.TokenHost())
	assert.Equal(t, "db.example", f.DatabaseHost())
	assert.Equal(t, "base", f.DatabaseBasePath())
	assert.False(t, f.TextualSuccess())

	assert.True(t, NewClientFirebase("k", "", "", "", "", SuccessTextual).TextualSuccess())
}

// ── EmulatorConfig ────────────────────────────────────────────────────────────

func TestEmulatorConfig_Validate(t *testing.T) {
	valid := func() *EmulatorConfig {
		return &EmulatorConfig{
			Address:       "127.0.0.1:9443",
			APIKey:        "k",
			TokenSignKey:  "s",
			TokenDuration: time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *EmulatorConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *EmulatorConfig) {}},
		{name: "cert and key", mutate: func(c *EmulatorConfig) { c.CertFile, c.KeyFile = "c.pem", "k.pem" }},
		{name: "missing address", mutate: func(c *EmulatorConfig) { c.Address = "" }, wantErr: true},
		{name: "missing api key", mutate: func(c *EmulatorConfig) { c.APIKey = "" }, wantErr: true},
		{name: "missing sign key", mutate: func(c *EmulatorConfig) { c.TokenSignKey = "" }, wantErr: true},
		{name: "zero duration", mutate: func(c *EmulatorConfig) { c.TokenDuration = 0 }, wantErr: true},
		{name: "cert without key", mutate: func(c *EmulatorConfig) { c.CertFile = "c.pem" }, wantErr: true},
		{name: "key without cert", mutate: func(c *EmulatorConfig) { c.KeyFile = "k.pem" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidEmulatorConfigs)
		})
	}
}

func TestGetEmulatorConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"EMULATOR_REQUIRE_AUTH": "true"})

	cfg, rest, err := GetEmulatorConfig([]string{"-a", "127.0.0.1:10443", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &EmulatorConfig{
		Address:       "127.0.0.1:10443",
		APIKey:        "emulator-api-key",
		TokenSignKey:  "emulator-token-sign-key",
		TokenDuration: time.Hour,
		RequireAuth:   true,
		LogLevel:      "debug",
	}, cfg)
}
