// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
)

// Config tunes the resty executor.
type Config struct {
	// Port is used when Request.Host carries no port.
	Port int
	// Timeout bounds a whole exchange, connection setup included.
	Timeout time.Duration
	// MaxBodySize caps the response body.
	MaxBodySize int64
	// TLS is the client TLS configuration. Nil means the system defaults.
	TLS *tls.Config
}

// RestyExecutor sends requests through a pooled resty client.
type RestyExecutor struct {
	client *utils.HTTPClient
	cfg    Config
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewRestyExecutor builds an executor. Zero config values fall back to the
// transport defaults.
func NewRestyExecutor(cfg Config, log *logger.Logger) *RestyExecutor {
	if cfg.Port <= 0 {
		cfg.Port = transport.DefaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = transport.DefaultTimeout
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = transport.DefaultMaxBodySize
	}

	if cfg.TLS != nil && cfg.TLS.InsecureSkipVerify {
		log.Warn().
			Str("func", "NewRestyExecutor").
			Msg("TLS certificate validation is DISABLED: any server certificate will be trusted")
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.Timeout)
	if cfg.TLS != nil {
		client.SetTLSClientConfig(cfg.TLS)
	}

	return &RestyExecutor{
		client: client,
		cfg:    cfg,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

// Execute implements [transport.Executor].
func (e *RestyExecutor) Execute(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := e.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", e.ids.Generate()).
			Str("method", string(req.Method)).
			Str("host", req.Host).
			Str("engine", "resty")
	})

	contentType := req.ContentType
	if contentType == "" {
		contentType = transport.ContentTypeJSON
	}

	r := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType)
	for _, h := range req.Header {
		r.SetHeader(h.Name, h.Value)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(string(req.Method), targetURL(req, e.cfg.Port))
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("exchange failed")
		return nil, mapTransportError(req.Host, err)
	}

	body := resp.Body()
	if int64(len(body)) > e.cfg.MaxBodySize {
		return nil, fmt.Errorf("read body: %w", transport.ErrBodyTooLarge)
	}

	out := &transport.Response{
		StatusLine: resp.Proto() + " " + resp.Status(),
		StatusCode: resp.StatusCode(),
		Header:     flattenHeader(resp.Header()),
		Body:       body,
	}

	log.Debug().
		Int("status", out.StatusCode).
		Int("bytes", len(out.Body)).
		Dur("duration", time.Since(start)).
		Msg("exchange complete")

	return out, nil
}

// targetURL joins the https scheme, the dial address and the target.
func targetURL(req *transport.Request, defaultPort int) string {
	return "https://" + req.Address(defaultPort) + req.Target
}

// flattenHeader turns a header map into fields sorted by name, since net/http
// does not keep the wire order.
func flattenHeader(h http.Header) []transport.Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]transport.Header, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			out = append(out, transport.Header{Name: name, Value: v})
		}
	}
	return out
}
