// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/rs/zerolog"
)

// Defaults applied by [NewEngine] to zero-valued [Config] fields.
const (
	DefaultPort          = 443
	DefaultDialTimeout   = 10 * time.Second
	DefaultTimeout       = 10 * time.Second
	DefaultPollInterval  = 10 * time.Millisecond
	DefaultMaxBodySize   = 1 << 20
	DefaultMaxLineLength = 8 << 10
)

// Config tunes the raw engine.
type Config struct {
	// Port is used when Request.Host carries no port.
	Port int

	// DialTimeout bounds the TCP dial plus the TLS handshake.
	DialTimeout time.Duration

	// Timeout is the overall budget measured from the moment the request is
	// written until the body is fully read.
	Timeout time.Duration

	// PollInterval is the read deadline of a single wait-for-data attempt.
	PollInterval time.Duration

	// MaxBodySize caps the reassembled body.
	MaxBodySize int64

	// MaxLineLength caps status, header and chunk-size lines.
	MaxLineLength int

	// StrictChunks turns a malformed chunk-size line into ErrMalformedChunk
	// instead of treating it as the terminal chunk.
	StrictChunks bool

	// TLS is the client TLS configuration. Nil means the system defaults with
	// full certificate validation.
	TLS *tls.Config
}

func (c Config) withDefaults() Config {
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.PollInterval > c.Timeout {
		c.PollInterval = c.Timeout
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.MaxLineLength < 16 {
		c.MaxLineLength = DefaultMaxLineLength
	}
	return c
}

// Engine speaks HTTP/1.1 directly over a fresh TLS connection per call.
// It keeps no state between calls and never retries.
type Engine struct {
	cfg    Config
	dialer Dialer
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// Option customises an [Engine].
type Option func(*Engine)

// WithDialer replaces the TLS dialer. Tests use it to script connections.
func WithDialer(d Dialer) Option {
	return func(e *Engine) {
		e.dialer = d
	}
}

// NewEngine builds a raw engine. When cfg.TLS skips certificate verification
// a warning is logged on every construction.
func NewEngine(cfg Config, log *logger.Logger, opts ...Option) *Engine {
	cfg = cfg.withDefaults()

	if cfg.TLS != nil && cfg.TLS.InsecureSkipVerify {
		log.Warn().
			Str("func", "NewEngine").
			Msg("TLS certificate validation is DISABLED: any server certificate will be trusted")
	}

	e := &Engine{
		cfg: cfg,
		dialer: &tls.Dialer{
			NetDialer: &net.Dialer{Timeout: cfg.DialTimeout},
			Config:    cfg.TLS,
		},
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute implements [Executor]. It dials, writes the serialized request in a
// single send, polls for the first response byte, then decodes the header
// section and the body according to req.Encoding. The connection is closed
// exactly once on every return path.
//
// ctx is honoured until the request is sent; its deadline also shortens the
// overall Timeout. Once the request is on the wire the call runs until the
// response is complete or the budget is exhausted.
func (e *Engine) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := e.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.
			Str("request_id", e.ids.Generate()).
			Str("method", string(req.Method)).
			Str("host", req.Host)
	})

	start := time.Now()
	conn, err := e.dialer.DialContext(ctx, "tcp", req.Address(e.cfg.Port))
	if err != nil {
		log.Debug().Err(err).Msg("connect failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrConnectFailed, req.Host, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			log.Debug().Err(cerr).Msg("error closing connection")
		}
	}()

	resp, err := e.exchange(ctx, conn, req)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("exchange failed")
		return nil, err
	}

	if resp.Truncated {
		log.Warn().Int("bytes", len(resp.Body)).Msg("malformed chunk size line treated as terminal chunk")
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Str("encoding", req.Encoding.String()).
		Dur("duration", time.Since(start)).
		Msg("exchange complete")

	return resp, nil
}

func (e *Engine) exchange(ctx context.Context, conn net.Conn, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(e.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: set write deadline: %v", ErrSendFailed, err)
	}
	if _, err := conn.Write(req.encode()); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: write request", ErrTimeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	br := bufio.NewReaderSize(conn, e.cfg.MaxLineLength)
	if err := e.awaitData(conn, br, deadline); err != nil {
		return nil, err
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	resp := &Response{}
	if err := readHead(br, resp); err != nil {
		return nil, readError(err, "read header section")
	}
	if err := e.readBody(br, req, resp); err != nil {
		return nil, readError(err, "read body")
	}

	return resp, nil
}

// awaitData polls for the first response byte with short read deadlines
// until the overall deadline passes.
func (e *Engine) awaitData(conn net.Conn, br *bufio.Reader, deadline time.Time) error {
	for {
		now := time.Now()
		if !now.Before(deadline) {
			return fmt.Errorf("%w: no response data within %s", ErrTimeout, e.cfg.Timeout)
		}

		next := now.Add(e.cfg.PollInterval)
		if next.After(deadline) {
			next = deadline
		}
		if err := conn.SetReadDeadline(next); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}

		_, err := br.Peek(1)
		switch {
		case err == nil:
			return nil
		case isTimeout(err):
			continue
		default:
			return readError(err, "await response")
		}
	}
}

func (e *Engine) readBody(br *bufio.Reader, req *Request, resp *Response) error {
	limit := e.cfg.MaxBodySize

	var err error
	switch encoding := req.Encoding; {
	case encoding == EncodingChunked,
		encoding == EncodingAuto && isChunked(resp):
		resp.Body, resp.Truncated, err = decodeChunked(br, limit, e.cfg.StrictChunks)
	case encoding == EncodingAuto && hasContentLength(resp):
		n, _ := strconv.ParseInt(resp.HeaderValue("Content-Length"), 10, 64)
		resp.Body, err = readSized(br, n, limit)
	default:
		resp.Body, err = readIdentity(br, limit)
	}

	return err
}

func isChunked(resp *Response) bool {
	return strings.Contains(strings.ToLower(resp.HeaderValue("Transfer-Encoding")), "chunked")
}

func hasContentLength(resp *Response) bool {
	n, err := strconv.ParseInt(resp.HeaderValue("Content-Length"), 10, 64)
	return err == nil && n >= 0
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// readError maps low-level read failures onto the package sentinels.
func readError(err error, stage string) error {
	switch {
	case errors.Is(err, ErrLineTooLong),
		errors.Is(err, ErrBodyTooLarge),
		errors.Is(err, ErrMalformedChunk):
		return fmt.Errorf("%s: %w", stage, err)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %s", ErrPrematureClose, stage)
	case isTimeout(err):
		return fmt.Errorf("%w: %s", ErrTimeout, stage)
	default:
		return fmt.Errorf("%s: %w", stage, err)
	}
}
