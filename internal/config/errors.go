package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [EmulatorConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing API key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFirebaseConfigs indicates invalid endpoint settings
	// (for example, an empty identity host or an unknown detection mode).
	ErrInvalidFirebaseConfigs = errors.New("invalid firebase configuration")
	// ErrInvalidAdapterConfigs indicates invalid request engine settings
	// (for example, an unknown engine, a zero timeout or a malformed pin).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid session cache settings
	// (for example, an in-memory DSN that cannot persist anything).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidEmulatorConfigs indicates invalid emulator settings
	// (for example, a certificate without its key).
	ErrInvalidEmulatorConfigs = errors.New("invalid emulator configuration")
)
