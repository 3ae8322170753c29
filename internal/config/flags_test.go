package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 9443}, expected: "localhost:9443"},
		{name: "IPv4 with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "IPv6 with port", addr: NetAddress{Host: "::1", Port: 9090}, expected: "[::1]:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:9443", expectedAddr: NetAddress{Host: "localhost", Port: 9443}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "valid IPv6", input: "[::1]:9090", expectedAddr: NetAddress{Host: "::1", Port: 9090}},
		{name: "all interfaces", input: ":9443", expectedAddr: NetAddress{Port: 9443}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "too many colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-c", "/path/to/config.yaml",
		"-api-key", "api-key",
		"-log-level", "warn",
		"-identity-host", "127.0.0.1:9443",
		"-token-host", "127.0.0.1:9444",
		"-db-host", "demo.firebaseio.com",
		"-db-base-path", "devices",
		"-success-detection", "textual",
		"-engine", "resty",
		"-port", "8443",
		"-dial-timeout", "2s",
		"-timeout", "20s",
		"-poll-interval", "20ms",
		"-max-body-size", "2048",
		"-strict-chunks",
		"-insecure",
		"-root-ca", "/etc/ca.pem",
		"-pin", "sha256/a",
		"-pin", "sha256/b",
		"-d", "file:session.db",
		"-a", "127.0.0.1:9443",
		"-emulator-api-key", "emu-key",
		"-token-sign-key", "secret",
		"-token-duration", "1h",
		"-require-auth",
		"-cert", "cert.pem",
		"-key", "key.pem",
		"signin", "a@b.com", "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"signin", "a@b.com", "secret"}, rest)
	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, App{APIKey: "api-key", LogLevel: "warn"}, cfg.App)
	assert.Equal(t, Firebase{
		IdentityHost:     "127.0.0.1:9443",
		TokenHost:        "127.0.0.1:9444",
		DatabaseHost:     "demo.firebaseio.com",
		DatabaseBasePath: "devices",
		SuccessDetection: SuccessTextual,
	}, cfg.Firebase)
	assert.Equal(t, Adapter{
		Engine:             EngineResty,
		Port:               8443,
		DialTimeout:        2 * time.Second,
		RequestTimeout:     20 * time.Second,
		PollInterval:       20 * time.Millisecond,
		MaxBodySize:        2048,
		StrictChunks:       true,
		InsecureSkipVerify: true,
		RootCAFile:         "/etc/ca.pem",
		PinnedKeys:         []string{"sha256/a", "sha256/b"},
	}, cfg.Adapter)
	assert.Equal(t, "file:session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, Emulator{
		Address:       "127.0.0.1:9443",
		APIKey:        "emu-key",
		TokenSignKey:  "secret",
		TokenDuration: time.Hour,
		RequireAuth:   true,
		CertFile:      "cert.pem",
		KeyFile:       "key.pem",
	}, cfg.Emulator)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, rest, err := parseFlags([]string{"-config", "/path/to/config.json"})
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
	assert.Empty(t, rest)
}

// TestParseFlags_StopsAtCommand verifies that flags after the first
// positional argument are left for the command.
func TestParseFlags_StopsAtCommand(t *testing.T) {
	cfg, rest, err := parseFlags([]string{"-api-key", "k", "token", "-copy"})
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.App.APIKey)
	assert.Equal(t, []string{"token", "-copy"}, rest)
}

func TestParseFlags_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":     {"-nope"},
		"bad duration":     {"-timeout", "soon"},
		"bad address":      {"-a", "nowhere"},
		"missing argument": {"-api-key"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseFlags(args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
