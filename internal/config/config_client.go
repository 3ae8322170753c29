package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the CLI.
	Version string
	// LogLevel is passed to the client logger.
	LogLevel string
}

// ClientFirebase is the read-only endpoint configuration consumed by the
// auth and database services.
type ClientFirebase struct {
	apiKey           string
	identityHost     string
	tokenHost        string
	databaseHost     string
	databaseBasePath string
	successDetection string
}

// NewClientFirebase builds endpoint settings directly, without the config
// sources. An empty detection mode means [SuccessStructured].
func NewClientFirebase(apiKey, identityHost, tokenHost, databaseHost, databaseBasePath, successDetection string) ClientFirebase {
	if successDetection == "" {
		successDetection = SuccessStructured
	}
	return ClientFirebase{
		apiKey:           apiKey,
		identityHost:     identityHost,
		tokenHost:        tokenHost,
		databaseHost:     databaseHost,
		databaseBasePath: databaseBasePath,
		successDetection: successDetection,
	}
}

// APIKey returns the project Web API key.
func (f ClientFirebase) APIKey() string { return f.apiKey }

// IdentityHost returns the identity toolkit host.
func (f ClientFirebase) IdentityHost() string { return f.identityHost }

// TokenHost returns the secure token host.
func (f ClientFirebase) TokenHost() string { return f.tokenHost }

// DatabaseHost returns the realtime database host; empty when unset.
func (f ClientFirebase) DatabaseHost() string { return f.databaseHost }

// DatabaseBasePath returns the path prefixed to every database path.
func (f ClientFirebase) DatabaseBasePath() string { return f.databaseBasePath }

// TextualSuccess reports whether success is decided by substring search.
func (f ClientFirebase) TextualSuccess() bool { return f.successDetection == SuccessTextual }

// ClientAdapter holds settings used by the client request engine.
type ClientAdapter struct {
	// Engine is [EngineRaw] or [EngineResty].
	Engine string
	// Port is used for hosts that carry no explicit port.
	Port int
	// DialTimeout bounds the dial plus the TLS handshake.
	DialTimeout time.Duration
	// RequestTimeout is the per-exchange timeout.
	RequestTimeout time.Duration
	// PollInterval is the wait-for-data poll interval of the raw engine.
	PollInterval time.Duration
	// MaxBodySize caps a response body.
	MaxBodySize int64
	// StrictChunks rejects malformed chunk-size lines.
	StrictChunks bool
	// InsecureSkipVerify disables certificate validation.
	InsecureSkipVerify bool
	// RootCAFile is a PEM bundle added to the trust roots.
	RootCAFile string
	// PinnedKeys lists SHA-256 SPKI pins.
	PinnedKeys []string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite connection string; empty disables persistence.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Firebase contains the endpoints and the success-detection mode.
	Firebase ClientFirebase
	// Adapter contains the request engine settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// The positional arguments left after flag parsing are returned as well.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, rest, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Firebase: NewClientFirebase(
			cfg.App.APIKey,
			cfg.Firebase.IdentityHost,
			cfg.Firebase.TokenHost,
			cfg.Firebase.DatabaseHost,
			cfg.Firebase.DatabaseBasePath,
			cfg.Firebase.SuccessDetection,
		),
		Adapter: ClientAdapter{
			Engine:             cfg.Adapter.Engine,
			Port:               cfg.Adapter.Port,
			DialTimeout:        cfg.Adapter.DialTimeout,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			PollInterval:       cfg.Adapter.PollInterval,
			MaxBodySize:        cfg.Adapter.MaxBodySize,
			StrictChunks:       cfg.Adapter.StrictChunks,
			InsecureSkipVerify: cfg.Adapter.InsecureSkipVerify,
			RootCAFile:         cfg.Adapter.RootCAFile,
			PinnedKeys:         cfg.Adapter.PinnedKeys,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
