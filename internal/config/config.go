package config

import (
	"time"
)

// Success detection modes for [Firebase.SuccessDetection].
const (
	// SuccessStructured decides success by parsing the body and looking for
	// the expected fields.
	SuccessStructured = "structured"

	// SuccessTextual decides success by substring search, as older device
	// firmware did.
	SuccessTextual = "textual"
)

// Request engines for [Adapter.Engine].
const (
	// EngineRaw is the hand-written HTTP/1.1-over-TLS engine.
	EngineRaw = "raw"

	// EngineResty is the pooled executor built on go-resty.
	EngineResty = "resty"
)

// StructuredConfig is the top-level configuration container shared by the
// fbclient CLI and the local emulator. It is populated by merging built-in
// defaults, an optional config file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the project API key, the version string and the log level.
	App App `envPrefix:"APP_"`

	// Firebase holds the service host names and the success-detection mode.
	Firebase Firebase `envPrefix:"FIREBASE_"`

	// Adapter holds the request engine settings: engine choice, timeouts,
	// size limits and TLS validation options.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the persisted session cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Emulator holds the settings of the local emulator server.
	Emulator Emulator `envPrefix:"EMULATOR_"`

	// ConfigFilePath is the optional path to a JSON (with comments) or YAML
	// configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey is the Web API key of the Firebase project, sent as ?key= on
	// identity and token calls.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Firebase holds the remote endpoints.
type Firebase struct {
	// IdentityHost serves the accounts:* endpoints. A "host:port" form is
	// accepted, which is how the emulator is targeted.
	// Env: FIREBASE_IDENTITY_HOST
	IdentityHost string `env:"IDENTITY_HOST"`

	// TokenHost serves /v1/token.
	// Env: FIREBASE_TOKEN_HOST
	TokenHost string `env:"TOKEN_HOST"`

	// DatabaseHost is the realtime database host, e.g.
	// "my-project-default-rtdb.firebaseio.com".
	// Env: FIREBASE_DATABASE_HOST
	DatabaseHost string `env:"DATABASE_HOST"`

	// DatabaseBasePath is prefixed to every database path.
	// Env: FIREBASE_DATABASE_BASE_PATH
	DatabaseBasePath string `env:"DATABASE_BASE_PATH"`

	// SuccessDetection is [SuccessStructured] or [SuccessTextual].
	// Env: FIREBASE_SUCCESS_DETECTION
	SuccessDetection string `env:"SUCCESS_DETECTION"`
}

// Adapter holds the outbound request engine settings.
type Adapter struct {
	// Engine is [EngineRaw] or [EngineResty].
	// Env: ADAPTER_ENGINE
	Engine string `env:"ENGINE"`

	// Port is used for hosts that carry no explicit port.
	// Env: ADAPTER_PORT
	Port int `env:"PORT"`

	// DialTimeout bounds the TCP dial plus the TLS handshake.
	// Env: ADAPTER_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// RequestTimeout bounds a single exchange after the request is sent.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is the read deadline of one wait-for-data attempt.
	// Env: ADAPTER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxBodySize caps a response body in bytes.
	// Env: ADAPTER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`

	// StrictChunks rejects malformed chunk-size lines instead of treating
	// them as the end of the body.
	// Env: ADAPTER_STRICT_CHUNKS
	StrictChunks bool `env:"STRICT_CHUNKS"`

	// InsecureSkipVerify disables certificate chain validation.
	// Env: ADAPTER_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// RootCAFile is a PEM bundle added to the trust roots.
	// Env: ADAPTER_ROOT_CA_FILE
	RootCAFile string `env:"ROOT_CA_FILE"`

	// PinnedKeys lists SHA-256 SPKI pins ("sha256/<base64>").
	// Env: ADAPTER_PINNED_KEYS (comma separated)
	PinnedKeys []string `env:"PINNED_KEYS" envSeparator:","`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the session cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite session cache.
type DB struct {
	// DSN is the sqlite data source name, e.g. "file:session.db". Empty
	// disables persistence.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Emulator holds the local emulator server settings.
type Emulator struct {
	// Address is the TCP address the emulator listens on, "host:port".
	// Env: EMULATOR_ADDRESS
	Address string `env:"ADDRESS"`

	// APIKey is the only key the emulator accepts.
	// Env: EMULATOR_API_KEY
	APIKey string `env:"API_KEY"`

	// TokenSignKey signs the identity tokens the emulator issues.
	// Env: EMULATOR_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime of an issued identity token.
	// Env: EMULATOR_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequireAuth makes the database endpoints reject requests without a
	// valid ?auth= token.
	// Env: EMULATOR_REQUIRE_AUTH
	RequireAuth bool `env:"REQUIRE_AUTH"`

	// CertFile and KeyFile select the TLS certificate. When both are empty a
	// self-signed certificate is generated at startup.
	// Env: EMULATOR_CERT_FILE, EMULATOR_KEY_FILE
	CertFile string `env:"CERT_FILE"`
	KeyFile  string `env:"KEY_FILE"`
}

// defaults returns the built-in lowest-precedence layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Firebase: Firebase{
			IdentityHost:     "identitytoolkit.googleapis.com",
			TokenHost:        "securetoken.googleapis.com",
			SuccessDetection: SuccessStructured,
		},
		Adapter: Adapter{
			Engine:         EngineRaw,
			Port:           443,
			DialTimeout:    10 * time.Second,
			RequestTimeout: 10 * time.Second,
			PollInterval:   10 * time.Millisecond,
			MaxBodySize:    1 << 20,
		},
		Emulator: Emulator{
			Address:       "127.0.0.1:9443",
			APIKey:        "emulator-api-key",
			TokenSignKey:  "emulator-token-sign-key",
			TokenDuration: time.Hour,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources override earlier non-zero
// fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags parsed from args
//
// It also returns the positional arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
