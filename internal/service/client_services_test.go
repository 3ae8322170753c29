package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-firebase-client/internal/adapter"
	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/store"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

func TestNewExecutor(t *testing.T) {
	raw, err := NewExecutor(config.ClientAdapter{Engine: config.EngineRaw}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &transport.Engine{}, raw)

	def, err := NewExecutor(config.ClientAdapter{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &transport.Engine{}, def)

	pooled, err := NewExecutor(config.ClientAdapter{Engine: config.EngineResty}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &adapter.RestyExecutor{}, pooled)
}

func TestNewExecutor_Errors(t *testing.T) {
	_, err := NewExecutor(config.ClientAdapter{Engine: "curl"}, logger.Nop())
	assert.ErrorContains(t, err, "unknown request engine")

	_, err = NewExecutor(config.ClientAdapter{PinnedKeys: []string{"sha256/short"}}, logger.Nop())
	assert.ErrorContains(t, err, "error building TLS config")

	_, err = NewExecutor(config.ClientAdapter{RootCAFile: "/does/not/exist.pem"}, logger.Nop())
	assert.ErrorContains(t, err, "error building TLS config")
}

func TestNewClientServices(t *testing.T) {
	cfg := &config.ClientConfig{Firebase: testServerConfig(config.SuccessStructured)}

	svcs, err := NewClientServices(cfg, &store.ClientStorages{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, svcs.AuthService)
	require.NotNil(t, svcs.DatabaseService)

	auth := svcs.AuthService.(*authService)
	assert.Nil(t, auth.sessions)

	_, err = NewClientServices(cfg, nil, logger.Nop())
	assert.NoError(t, err)
}
