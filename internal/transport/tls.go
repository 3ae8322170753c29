// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-firebase-client/internal/utils"
)

const pinPrefix = "sha256/"

// TLSOptions describes how the server certificate is validated.
type TLSOptions struct {
	// ServerName overrides the SNI and verification host name.
	ServerName string

	// InsecureSkipVerify disables chain and host name verification. Pins, if
	// any, are still enforced.
	InsecureSkipVerify bool

	// RootCAFile is a PEM bundle appended to the system roots.
	RootCAFile string

	// PinnedKeys lists accepted SHA-256 digests of the leaf certificate's
	// SubjectPublicKeyInfo, as "sha256/<base64>" or bare base64.
	PinnedKeys []string
}

// NewTLSConfig builds the client TLS configuration from opts.
func NewTLSConfig(opts TLSOptions) (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         opts.ServerName,
		InsecureSkipVerify: opts.InsecureSkipVerify,
	}

	if opts.RootCAFile != "" {
		pem, err := os.ReadFile(opts.RootCAFile)
		if err != nil {
			return nil, fmt.Errorf("read root CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRootCA, opts.RootCAFile)
		}
		cfg.RootCAs = pool
	}

	if len(opts.PinnedKeys) > 0 {
		pins, err := ParsePins(opts.PinnedKeys)
		if err != nil {
			return nil, err
		}
		cfg.VerifyConnection = verifyPins(pins)
	}

	return cfg, nil
}

// ParsePins normalises pins to their bare base64 form and validates that each
// decodes to a 32-byte digest.
func ParsePins(raw []string) (map[string]struct{}, error) {
	pins := make(map[string]struct{}, len(raw))
	for _, p := range raw {
		p = strings.TrimPrefix(strings.TrimSpace(p), pinPrefix)
		digest, err := base64.StdEncoding.DecodeString(p)
		if err != nil || len(digest) != 32 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPin, p)
		}
		pins[p] = struct{}{}
	}
	return pins, nil
}

func verifyPins(pins map[string]struct{}) func(tls.ConnectionState) error {
	return func(cs tls.ConnectionState) error {
		if len(cs.PeerCertificates) == 0 {
			return ErrPinMismatch
		}
		if _, ok := pins[utils.SPKIFingerprint(cs.PeerCertificates[0])]; !ok {
			return ErrPinMismatch
		}
		return nil
	}
}

// FormatPin renders a certificate's pin in the configuration format.
func FormatPin(cert *x509.Certificate) string {
	return pinPrefix + utils.SPKIFingerprint(cert)
}
