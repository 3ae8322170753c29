// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

// newTestExecutor creates a RestyExecutor that trusts the test server's
// certificate.
func newTestExecutor(t *testing.T, srv *httptest.Server, cfg Config) *RestyExecutor {
	t.Helper()
	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	if cfg.TLS == nil {
		cfg.TLS = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}
	return NewRestyExecutor(cfg, logger.Nop())
}

func serverHost(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "https://")
}

// ── Execute ───────────────────────────────────────────────────────────────────

func TestExecute_PostChunkedResponse(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:signUp", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		assert.Equal(t, transport.ContentTypeJSON, r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"email":"a@b.com"}`, string(body))
		assert.Equal(t, int64(len(body)), r.ContentLength)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idToken":`))
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte(`"tok"}`))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv, Config{})
	resp, err := e.Execute(context.Background(), &transport.Request{
		Method: transport.MethodPost,
		Host:   serverHost(srv),
		Target: "/v1/accounts:signUp?key=k",
		Header: []transport.Header{{Name: "X-Extra", Value: "yes"}},
		Body:   []byte(`{"email":"a@b.com"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"idToken":"tok"}`, resp.String())
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "HTTP/1.1 200 OK", resp.StatusLine)
	assert.Equal(t, "application/json", resp.HeaderValue("content-type"))
	assert.False(t, resp.Truncated)
}

func TestExecute_FormBodyAndMethods(t *testing.T) {
	var seen []string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv, Config{})
	for _, m := range []transport.Method{transport.MethodGet, transport.MethodPut, transport.MethodPatch, transport.MethodDelete} {
		_, err := e.Execute(context.Background(), &transport.Request{Method: m, Host: serverHost(srv), Target: "/a.json"})
		require.NoError(t, err)
	}
	_, err := e.Execute(context.Background(), &transport.Request{
		Method:      transport.MethodPost,
		Host:        serverHost(srv),
		Target:      "/v1/token",
		ContentType: transport.ContentTypeForm,
		Body:        []byte("grant_type=refresh_token&refresh_token=r"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET application/json",
		"PUT application/json",
		"PATCH application/json",
		"DELETE application/json",
		"POST application/x-www-form-urlencoded",
	}, seen)
}

// TestExecute_ErrorStatusIsNotAnError verifies that HTTP error statuses are
// returned as responses; callers decide success from the body.
func TestExecute_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"EMAIL_EXISTS"}}`))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv, Config{})
	resp, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodPost, Host: serverHost(srv), Target: "/"})

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, resp.String(), "EMAIL_EXISTS")
}

func TestExecute_BodyTooLarge(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv, Config{MaxBodySize: 16})
	_, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: serverHost(srv), Target: "/"})
	assert.ErrorIs(t, err, transport.ErrBodyTooLarge)
}

func TestExecute_UntrustedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	e := NewRestyExecutor(Config{TLS: &tls.Config{MinVersion: tls.VersionTLS12}}, logger.Nop())
	_, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: serverHost(srv), Target: "/"})
	assert.ErrorIs(t, err, transport.ErrConnectFailed)
}

func TestExecute_PinnedKey(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	pin := transport.FormatPin(srv.Certificate())

	t.Run("match", func(t *testing.T) {
		tlsCfg, err := transport.NewTLSConfig(transport.TLSOptions{InsecureSkipVerify: true, PinnedKeys: []string{pin}})
		require.NoError(t, err)

		e := NewRestyExecutor(Config{TLS: tlsCfg}, logger.Nop())
		resp, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: serverHost(srv), Target: "/"})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.String())
	})

	t.Run("mismatch", func(t *testing.T) {
		tlsCfg, err := transport.NewTLSConfig(transport.TLSOptions{
			InsecureSkipVerify: true,
			PinnedKeys:         []string{"sha256/AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="},
		})
		require.NoError(t, err)

		e := NewRestyExecutor(Config{TLS: tlsCfg}, logger.Nop())
		_, err = e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: serverHost(srv), Target: "/"})
		assert.ErrorIs(t, err, transport.ErrConnectFailed)
	})
}

func TestExecute_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	e := newTestExecutor(t, srv, Config{Timeout: 100 * time.Millisecond})
	start := time.Now()
	_, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: serverHost(srv), Target: "/"})

	assert.ErrorIs(t, err, transport.ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestExecute_InvalidRequest(t *testing.T) {
	e := NewRestyExecutor(Config{}, logger.Nop())
	_, err := e.Execute(context.Background(), &transport.Request{Method: transport.MethodGet, Host: "example.com", Target: "relative"})
	assert.ErrorIs(t, err, transport.ErrInvalidRequest)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func TestTargetURL(t *testing.T) {
	assert.Equal(t, "https://example.com:443/a.json?auth=t",
		targetURL(&transport.Request{Host: "example.com", Target: "/a.json?auth=t"}, 443))
	assert.Equal(t, "https://127.0.0.1:9443/v1/token",
		targetURL(&transport.Request{Host: "127.0.0.1:9443", Target: "/v1/token"}, 443))
}

func TestFlattenHeader(t *testing.T) {
	h := http.Header{}
	h.Add("X-B", "2")
	h.Add("X-A", "1")
	h.Add("X-B", "3")

	assert.Equal(t, []transport.Header{
		{Name: "X-A", Value: "1"},
		{Name: "X-B", Value: "2"},
		{Name: "X-B", Value: "3"},
	}, flattenHeader(h))
}
