package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-firebase-client/internal/extract"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
	"github.com/MKhiriev/go-firebase-client/models"
)

// caller holds what every operation needs to perform one exchange.
type caller struct {
	cfg      ServerConfig
	executor transport.Executor
	logger   *logger.Logger
}

// execute performs req and wraps a transport failure with the operation name.
func (c *caller) execute(ctx context.Context, op string, req *transport.Request) (*transport.Response, error) {
	resp, err := c.executor.Execute(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("operation", op).
			Str("host", req.Host).
			Msg("request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// postJSON encodes payload and posts it to target on host.
func (c *caller) postJSON(ctx context.Context, op, host, target string, payload any, enc transport.Encoding) (*transport.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return c.execute(ctx, op, &transport.Request{
		Method:      transport.MethodPost,
		Host:        host,
		Target:      target,
		ContentType: transport.ContentTypeJSON,
		Body:        body,
		Encoding:    enc,
	})
}

// fail builds the APIError for body and logs the scraped message.
func (c *caller) fail(op string, body []byte) error {
	msg := extract.ErrorMessage(body)
	c.logger.Warn().
		Str("operation", op).
		Str("message", msg).
		Msg("operation failed")
	return &APIError{Operation: op, Message: msg}
}

// errorReported reports whether body carries a top-level error member.
func (c *caller) errorReported(body []byte) bool {
	if c.cfg.TextualSuccess() {
		return extract.ContainsText(body, `"`+models.FieldError+`"`)
	}
	return extract.HasField(body, models.FieldError)
}

// detected reports whether field shows up in body, using the configured
// detection mode.
func (c *caller) detected(body []byte, field string) bool {
	if c.cfg.TextualSuccess() {
		return extract.ContainsText(body, field)
	}
	return extract.HasField(body, field)
}

// withKey appends the API key to an endpoint path.
func (c *caller) withKey(path string) string {
	return path + "?key=" + url.QueryEscape(c.cfg.APIKey())
}
