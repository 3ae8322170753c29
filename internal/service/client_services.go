package service

import (
	"fmt"

	"github.com/MKhiriev/go-firebase-client/internal/adapter"
	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/session"
	"github.com/MKhiriev/go-firebase-client/internal/store"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

// ClientServices groups the façade services sharing one executor and one
// session.
type ClientServices struct {
	AuthService     AuthService
	DatabaseService DatabaseService
}

// NewClientServices builds the request executor selected by cfg.Adapter and
// wires the auth and database services to it. storages may be nil.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, log *logger.Logger) (*ClientServices, error) {
	executor, err := NewExecutor(cfg.Adapter, log)
	if err != nil {
		return nil, err
	}

	var sessions store.SessionRepository
	if storages != nil {
		sessions = storages.SessionRepository
	}

	return &ClientServices{
		AuthService:     NewAuthService(cfg.Firebase, executor, session.New(), sessions, log),
		DatabaseService: NewDatabaseService(cfg.Firebase, executor, log),
	}, nil
}

// NewExecutor returns the raw engine, or the resty executor when
// cfg.Engine is config.EngineResty.
func NewExecutor(cfg config.ClientAdapter, log *logger.Logger) (transport.Executor, error) {
	tlsCfg, err := transport.NewTLSConfig(transport.TLSOptions{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		RootCAFile:         cfg.RootCAFile,
		PinnedKeys:         cfg.PinnedKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("error building TLS config: %w", err)
	}

	switch cfg.Engine {
	case config.EngineResty:
		return adapter.NewRestyExecutor(adapter.Config{
			Port:        cfg.Port,
			Timeout:     cfg.RequestTimeout,
			MaxBodySize: cfg.MaxBodySize,
			TLS:         tlsCfg,
		}, log), nil
	case config.EngineRaw, "":
		return transport.NewEngine(transport.Config{
			Port:         cfg.Port,
			DialTimeout:  cfg.DialTimeout,
			Timeout:      cfg.RequestTimeout,
			PollInterval: cfg.PollInterval,
			MaxBodySize:  cfg.MaxBodySize,
			StrictChunks: cfg.StrictChunks,
			TLS:          tlsCfg,
		}, log), nil
	default:
		return nil, fmt.Errorf("unknown request engine %q", cfg.Engine)
	}
}
