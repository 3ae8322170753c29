package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

// validate checks the client view before it is used at startup. It returns
// the first failing group's sentinel, wrapped with the reason.
func (cfg *ClientConfig) validate() error {
	if cfg.Firebase.APIKey() == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidAppConfigs)
	}

	if cfg.Firebase.IdentityHost() == "" || cfg.Firebase.TokenHost() == "" {
		return fmt.Errorf("%w: identity and token hosts are required", ErrInvalidFirebaseConfigs)
	}
	switch cfg.Firebase.successDetection {
	case SuccessStructured, SuccessTextual:
	default:
		return fmt.Errorf("%w: unknown success detection %q", ErrInvalidFirebaseConfigs, cfg.Firebase.successDetection)
	}

	a := cfg.Adapter
	switch a.Engine {
	case EngineRaw, EngineResty:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidAdapterConfigs, a.Engine)
	}
	if a.Port < 1 || a.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidAdapterConfigs, a.Port)
	}
	if a.DialTimeout <= 0 || a.RequestTimeout <= 0 || a.PollInterval <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}
	if a.MaxBodySize <= 0 {
		return fmt.Errorf("%w: max body size must be positive", ErrInvalidAdapterConfigs)
	}
	if _, err := transport.ParsePins(a.PinnedKeys); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return fmt.Errorf("%w: in-memory DSN cannot persist the session", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *EmulatorConfig) validate() error {
	if cfg.Address == "" || cfg.APIKey == "" || cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: address, api key and token sign key are required", ErrInvalidEmulatorConfigs)
	}
	if cfg.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidEmulatorConfigs)
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return fmt.Errorf("%w: cert and key files must be set together", ErrInvalidEmulatorConfigs)
	}
	return nil
}
