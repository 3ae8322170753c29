package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-firebase-client/internal/extract"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
	"github.com/MKhiriev/go-firebase-client/models"
)

const (
	opPut     = "put"
	opUpdate  = "update"
	opGet     = "get"
	opRemove  = "remove"
	opPutJSON = "putJSON"
	opGetJSON = "getJSON"
)

type databaseService struct {
	caller
	validator validators.Validator
}

// NewDatabaseService builds the realtime database façade.
func NewDatabaseService(cfg ServerConfig, executor transport.Executor, log *logger.Logger) DatabaseService {
	return &databaseService{
		caller:    caller{cfg: cfg, executor: executor, logger: log},
		validator: validators.NewRequestValidator(),
	}
}

func (d *databaseService) Put(ctx context.Context, path, key string, value any, idToken string) error {
	body, err := encodeScalar(value)
	if err != nil {
		return err
	}
	if err = validators.ValidateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	_, err = d.send(ctx, opPut, transport.MethodPut, models.DataLocation{Path: path, Key: key}, body, idToken)
	return err
}

func (d *databaseService) Update(ctx context.Context, path, key string, value any, idToken string) error {
	scalar, err := encodeScalar(value)
	if err != nil {
		return err
	}
	if err = validators.ValidateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	body, err := json.Marshal(map[string]json.RawMessage{key: scalar})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	_, err = d.send(ctx, opUpdate, transport.MethodPatch, models.DataLocation{Path: path}, body, idToken)
	return err
}

func (d *databaseService) Get(ctx context.Context, path, idToken string) (string, error) {
	resp, err := d.send(ctx, opGet, transport.MethodGet, models.DataLocation{Path: path}, nil, idToken)
	if err != nil {
		return "", err
	}

	value, err := extract.RenderValue(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opGet, err)
	}
	return value, nil
}

func (d *databaseService) Remove(ctx context.Context, path, idToken string) error {
	_, err := d.send(ctx, opRemove, transport.MethodDelete, models.DataLocation{Path: path}, nil, idToken)
	return err
}

func (d *databaseService) PutJSON(ctx context.Context, path, doc, idToken string) error {
	if !json.Valid([]byte(doc)) {
		return fmt.Errorf("%w: document is not valid JSON", ErrInvalidArgument)
	}
	_, err := d.send(ctx, opPutJSON, transport.MethodPut, models.DataLocation{Path: path}, []byte(doc), idToken)
	return err
}

func (d *databaseService) GetJSON(ctx context.Context, path, idToken string) (string, error) {
	resp, err := d.send(ctx, opGetJSON, transport.MethodGet, models.DataLocation{Path: path}, nil, idToken)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// send validates loc, performs one exchange and fails on an error body.
func (d *databaseService) send(ctx context.Context, op string, method transport.Method, loc models.DataLocation, body []byte, idToken string) (*transport.Response, error) {
	if d.cfg.DatabaseHost() == "" {
		return nil, fmt.Errorf("%w: database host is not configured", ErrInvalidArgument)
	}
	if err := d.validator.Validate(ctx, loc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	resp, err := d.execute(ctx, op, &transport.Request{
		Method:      method,
		Host:        d.cfg.DatabaseHost(),
		Target:      d.target(loc, idToken),
		ContentType: transport.ContentTypeJSON,
		Body:        body,
		Encoding:    transport.EncodingAuto,
	})
	if err != nil {
		return nil, err
	}

	if d.errorReported(resp.Body) {
		return nil, d.fail(op, resp.Body)
	}
	return resp, nil
}

// target builds "/<base>/<path>[/<key>].json[?auth=<token>]" with every
// segment path-escaped.
func (d *databaseService) target(loc models.DataLocation, idToken string) string {
	segments := validators.SplitPath(d.cfg.DatabaseBasePath())
	segments = append(segments, validators.SplitPath(loc.Path)...)
	if loc.Key != "" {
		segments = append(segments, loc.Key)
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	target := "/" + strings.Join(escaped, "/") + ".json"
	if idToken != "" {
		target += "?auth=" + url.QueryEscape(idToken)
	}
	return target
}

// encodeScalar accepts the value kinds a database leaf can hold.
func encodeScalar(value any) (json.RawMessage, error) {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrInvalidArgument, value)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return raw, nil
}
