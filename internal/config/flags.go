package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags found in args and returns the
// remaining positional arguments.
//
// Flags:
//
//	-c/-config config file path (.json, .jsonc, .yaml, .yml)
//	-api-key project Web API key
//	-log-level log level (debug, info, warn, error)
//	-identity-host identity toolkit host[:port]
//	-token-host secure token host[:port]
//	-db-host realtime database host[:port]
//	-db-base-path path prefixed to every database path
//	-success-detection structured or textual
//	-engine request engine (raw or resty)
//	-port default TLS port
//	-dial-timeout dial plus handshake timeout (e.g. "5s")
//	-timeout per-request timeout (e.g. "10s")
//	-poll-interval wait-for-data poll interval (e.g. "10ms")
//	-max-body-size response body cap in bytes
//	-strict-chunks reject malformed chunk-size lines
//	-insecure skip certificate validation
//	-root-ca PEM bundle added to the trust roots
//	-pin SHA-256 SPKI pin, repeatable
//	-d session cache DSN
//	-a emulator address in format [host]:[port]
//	-emulator-api-key API key accepted by the emulator
//	-token-sign-key emulator token signing key
//	-token-duration emulator token lifetime (e.g. "1h")
//	-require-auth emulator database requires ?auth=
//	-cert / -key emulator TLS certificate and key files
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var cfg StructuredConfig
	var emulatorAddress NetAddress

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	fs.StringVar(&cfg.App.APIKey, "api-key", "", "Project Web API key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.Firebase.IdentityHost, "identity-host", "", "Identity toolkit host[:port]")
	fs.StringVar(&cfg.Firebase.TokenHost, "token-host", "", "Secure token host[:port]")
	fs.StringVar(&cfg.Firebase.DatabaseHost, "db-host", "", "Realtime database host[:port]")
	fs.StringVar(&cfg.Firebase.DatabaseBasePath, "db-base-path", "", "Path prefixed to every database path")
	fs.StringVar(&cfg.Firebase.SuccessDetection, "success-detection", "", "Success detection: structured or textual")

	fs.StringVar(&cfg.Adapter.Engine, "engine", "", "Request engine: raw or resty")
	fs.IntVar(&cfg.Adapter.Port, "port", 0, "Default TLS port")
	fs.DurationVar(&cfg.Adapter.DialTimeout, "dial-timeout", 0, "Dial plus handshake timeout (e.g., 5s)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Adapter.PollInterval, "poll-interval", 0, "Wait-for-data poll interval (e.g., 10ms)")
	fs.Int64Var(&cfg.Adapter.MaxBodySize, "max-body-size", 0, "Response body cap in bytes")
	fs.BoolVar(&cfg.Adapter.StrictChunks, "strict-chunks", false, "Reject malformed chunk-size lines")
	fs.BoolVar(&cfg.Adapter.InsecureSkipVerify, "insecure", false, "Skip certificate validation")
	fs.StringVar(&cfg.Adapter.RootCAFile, "root-ca", "", "PEM bundle added to the trust roots")
	fs.Func("pin", "SHA-256 SPKI pin (sha256/<base64>), repeatable", func(s string) error {
		cfg.Adapter.PinnedKeys = append(cfg.Adapter.PinnedKeys, s)
		return nil
	})

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Session cache DSN")

	fs.Var(&emulatorAddress, "a", "Emulator address host:port")
	fs.StringVar(&cfg.Emulator.APIKey, "emulator-api-key", "", "API key accepted by the emulator")
	fs.StringVar(&cfg.Emulator.TokenSignKey, "token-sign-key", "", "Emulator token signing key")
	fs.DurationVar(&cfg.Emulator.TokenDuration, "token-duration", 0, "Emulator token lifetime (e.g., 1h)")
	fs.BoolVar(&cfg.Emulator.RequireAuth, "require-auth", false, "Emulator database requires ?auth=")
	fs.StringVar(&cfg.Emulator.CertFile, "cert", "", "Emulator TLS certificate file")
	fs.StringVar(&cfg.Emulator.KeyFile, "key", "", "Emulator TLS key file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Emulator.Address = emulatorAddress.String()

	return &cfg, fs.Args(), nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "fbclient"
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
