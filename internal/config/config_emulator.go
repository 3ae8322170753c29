package config

import (
	"fmt"
	"time"
)

// EmulatorConfig is the configuration view of the local emulator server.
type EmulatorConfig struct {
	// Address is the listen address, "host:port".
	Address string
	// APIKey is the only Web API key the emulator accepts.
	APIKey string
	// TokenSignKey signs issued identity tokens.
	TokenSignKey string
	// TokenDuration is the lifetime of an issued identity token.
	TokenDuration time.Duration
	// RequireAuth makes the database endpoints require ?auth=.
	RequireAuth bool
	// CertFile and KeyFile select the TLS certificate; both empty means a
	// generated self-signed certificate.
	CertFile string
	KeyFile  string
	// LogLevel is the minimum zerolog level.
	LogLevel string
}

// GetEmulatorConfig builds and validates the emulator view of the merged
// structured configuration. The positional arguments left after flag
// parsing are returned as well.
func GetEmulatorConfig(args []string) (*EmulatorConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	emulatorCfg := &EmulatorConfig{
		Address:       cfg.Emulator.Address,
		APIKey:        cfg.Emulator.APIKey,
		TokenSignKey:  cfg.Emulator.TokenSignKey,
		TokenDuration: cfg.Emulator.TokenDuration,
		RequireAuth:   cfg.Emulator.RequireAuth,
		CertFile:      cfg.Emulator.CertFile,
		KeyFile:       cfg.Emulator.KeyFile,
		LogLevel:      cfg.App.LogLevel,
	}

	return emulatorCfg, rest, emulatorCfg.validate()
}
