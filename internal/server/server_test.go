package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
)

// ── certificates ─────────────────────────────────────────────────────────────

func TestSelfSignedCertificate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cert, err := selfSignedCertificate("emulator.lan", now)
	require.NoError(t, err)
	require.NotNil(t, cert.Leaf)

	assert.Contains(t, cert.Leaf.DNSNames, "localhost")
	assert.Contains(t, cert.Leaf.DNSNames, "emulator.lan")
	assert.True(t, cert.Leaf.NotAfter.After(now.Add(300*24*time.Hour)))

	pool := x509.NewCertPool()
	pool.AddCert(cert.Leaf)
	_, err = cert.Leaf.Verify(x509.VerifyOptions{DNSName: "emulator.lan", Roots: pool, CurrentTime: now})
	assert.NoError(t, err)
}

func TestSelfSignedCertificate_IPHost(t *testing.T) {
	cert, err := selfSignedCertificate("10.0.0.5", time.Now())
	require.NoError(t, err)

	var ips []string
	for _, ip := range cert.Leaf.IPAddresses {
		ips = append(ips, ip.String())
	}
	assert.Contains(t, ips, "10.0.0.5")
	assert.Contains(t, ips, "127.0.0.1")
}

func TestLoadCertificate(t *testing.T) {
	t.Run("incomplete", func(t *testing.T) {
		_, err := loadCertificate("cert.pem", "", "localhost")
		assert.ErrorIs(t, err, errIncompleteCertificate)
	})

	t.Run("missing files", func(t *testing.T) {
		_, err := loadCertificate("/nonexistent/cert.pem", "/nonexistent/key.pem", "localhost")
		assert.Error(t, err)
	})

	t.Run("from files", func(t *testing.T) {
		generated, err := selfSignedCertificate("localhost", time.Now())
		require.NoError(t, err)

		keyDER, err := x509.MarshalPKCS8PrivateKey(generated.PrivateKey)
		require.NoError(t, err)

		dir := t.TempDir()
		certFile := filepath.Join(dir, "cert.pem")
		keyFile := filepath.Join(dir, "key.pem")
		require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: generated.Certificate[0]}), 0o600))
		require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))

		cert, err := loadCertificate(certFile, keyFile, "ignored")
		require.NoError(t, err)
		require.NotNil(t, cert.Leaf)
		assert.Equal(t, generated.Leaf.SerialNumber, cert.Leaf.SerialNumber)
	})
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestNewServer_Errors(t *testing.T) {
	cfg := &config.EmulatorConfig{Address: "127.0.0.1:0"}

	_, err := NewServer(nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(http.NotFoundHandler(), &config.EmulatorConfig{Address: "no-port"}, logger.Nop())
	assert.Error(t, err)
}

func TestServer_ServesHTTPSUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.Proto)
	})

	srv, err := NewServer(handler, &config.EmulatorConfig{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
	}
	resp, err := client.Get("https://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HTTP/1.1", string(body))
	assert.Equal(t, uint16(tls.VersionTLS13), resp.TLS.Version)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
