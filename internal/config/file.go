package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// neither JSON nor YAML.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// fileConfig mirrors [StructuredConfig] with file-friendly keys. The same
// tags serve JSON (after comment stripping) and YAML.
type fileConfig struct {
	App struct {
		APIKey   string `json:"api_key" yaml:"api_key"`
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Firebase struct {
		IdentityHost     string `json:"identity_host" yaml:"identity_host"`
		TokenHost        string `json:"token_host" yaml:"token_host"`
		DatabaseHost     string `json:"database_host" yaml:"database_host"`
		DatabaseBasePath string `json:"database_base_path" yaml:"database_base_path"`
		SuccessDetection string `json:"success_detection" yaml:"success_detection"`
	} `json:"firebase" yaml:"firebase"`

	Adapter struct {
		Engine             string   `json:"engine" yaml:"engine"`
		Port               int      `json:"port" yaml:"port"`
		DialTimeout        Duration `json:"dial_timeout" yaml:"dial_timeout"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		PollInterval       Duration `json:"poll_interval" yaml:"poll_interval"`
		MaxBodySize        int64    `json:"max_body_size" yaml:"max_body_size"`
		StrictChunks       bool     `json:"strict_chunks" yaml:"strict_chunks"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
		RootCAFile         string   `json:"root_ca_file" yaml:"root_ca_file"`
		PinnedKeys         []string `json:"pinned_keys" yaml:"pinned_keys"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Emulator struct {
		Address       string   `json:"address" yaml:"address"`
		APIKey        string   `json:"api_key" yaml:"api_key"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		RequireAuth   bool     `json:"require_auth" yaml:"require_auth"`
		CertFile      string   `json:"cert_file" yaml:"cert_file"`
		KeyFile       string   `json:"key_file" yaml:"key_file"`
	} `json:"emulator" yaml:"emulator"`
}

// parseFile reads a config file. ".yaml" and ".yml" are decoded as YAML;
// ".json", ".jsonc" and files without an extension as JSON with comments and
// trailing commas allowed.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", ".jsonc", "":
		if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			APIKey:   fc.App.APIKey,
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Firebase: Firebase{
			IdentityHost:     fc.Firebase.IdentityHost,
			TokenHost:        fc.Firebase.TokenHost,
			DatabaseHost:     fc.Firebase.DatabaseHost,
			DatabaseBasePath: fc.Firebase.DatabaseBasePath,
			SuccessDetection: fc.Firebase.SuccessDetection,
		},
		Adapter: Adapter{
			Engine:             fc.Adapter.Engine,
			Port:               fc.Adapter.Port,
			DialTimeout:        time.Duration(fc.Adapter.DialTimeout),
			RequestTimeout:     time.Duration(fc.Adapter.RequestTimeout),
			PollInterval:       time.Duration(fc.Adapter.PollInterval),
			MaxBodySize:        fc.Adapter.MaxBodySize,
			StrictChunks:       fc.Adapter.StrictChunks,
			InsecureSkipVerify: fc.Adapter.InsecureSkipVerify,
			RootCAFile:         fc.Adapter.RootCAFile,
			PinnedKeys:         fc.Adapter.PinnedKeys,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Emulator: Emulator{
			Address:       fc.Emulator.Address,
			APIKey:        fc.Emulator.APIKey,
			TokenSignKey:  fc.Emulator.TokenSignKey,
			TokenDuration: time.Duration(fc.Emulator.TokenDuration),
			RequireAuth:   fc.Emulator.RequireAuth,
			CertFile:      fc.Emulator.CertFile,
			KeyFile:       fc.Emulator.KeyFile,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Bare numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
