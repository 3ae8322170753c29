package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/mock"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
	"github.com/MKhiriev/go-firebase-client/models"
)

func newTestDatabaseSvc(t *testing.T, ctrl *gomock.Controller, cfg ServerConfig) (*databaseService, *mock.MockExecutor) {
	t.Helper()
	mockExec := mock.NewMockExecutor(ctrl)
	svc := NewDatabaseService(cfg, mockExec, logger.Nop()).(*databaseService)
	return svc, mockExec
}

// expectRequest scripts one exchange and checks the request shape.
func expectRequest(t *testing.T, mockExec *mock.MockExecutor, method transport.Method, target, body, reply string) {
	t.Helper()
	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, method, req.Method)
			assert.Equal(t, testDBHost, req.Host)
			assert.Equal(t, target, req.Target)
			assert.Equal(t, transport.EncodingAuto, req.Encoding)
			if body == "" {
				assert.Empty(t, req.Body)
			} else {
				assert.JSONEq(t, body, string(req.Body))
			}
			return respond(reply), nil
		},
	)
}

// ── Put / Update ─────────────────────────────────────────────────────────────

func TestDatabaseService_Put(t *testing.T) {
	tests := []struct {
		name  string
		value any
		body  string
	}{
		{name: "string", value: "on", body: `"on"`},
		{name: "int", value: 42, body: `42`},
		{name: "int64", value: int64(-7), body: `-7`},
		{name: "float", value: 21.5, body: `21.5`},
		{name: "bool", value: true, body: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
			expectRequest(t, mockExec, transport.MethodPut, "/devices/lamp/state.json?auth=tok", tt.body, tt.body)

			assert.NoError(t, svc.Put(context.Background(), "devices/lamp", "state", tt.value, "tok"))
		})
	}
}

func TestDatabaseService_Put_InvalidArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Put(ctx, "a", "k", []int{1}, ""), ErrInvalidArgument)
	assert.ErrorIs(t, svc.Put(ctx, "a", "k", math.NaN(), ""), ErrInvalidArgument)
	assert.ErrorIs(t, svc.Put(ctx, "a//b", "k", 1, ""), ErrInvalidArgument)

	err := svc.Put(ctx, "a", "bad.key", 1, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, validators.ErrInvalidKey)
}

func TestDatabaseService_Put_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Execute expectation: the parent path must never be overwritten
	svc, _ := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))

	err := svc.Put(context.Background(), "devices/lamp", "", "on", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, validators.ErrEmptyKey)
}

func TestDatabaseService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	expectRequest(t, mockExec, transport.MethodPatch, "/devices/lamp.json", `{"brightness":80}`, `{"brightness":80}`)

	assert.NoError(t, svc.Update(context.Background(), "/devices/lamp/", "brightness", 80, ""))
}

func TestDatabaseService_Update_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	assert.ErrorIs(t, svc.Update(context.Background(), "a", "", 1, ""), ErrInvalidArgument)
	assert.ErrorIs(t, svc.Update(context.Background(), "a", "x#y", 1, ""), ErrInvalidArgument)
}

// ── Get / GetJSON ────────────────────────────────────────────────────────────

func TestDatabaseService_Get(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{reply: `"hello"`, want: "hello"},
		{reply: `42`, want: "42"},
		{reply: `null`, want: "null"},
		{reply: `{"a": 1}`, want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
			expectRequest(t, mockExec, transport.MethodGet, "/a/b.json?auth=tok", "", tt.reply)

			got, err := svc.Get(context.Background(), "a/b", "tok")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseService_Get_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(respond(`{"error":"Permission denied"}`), nil)
	_, err := svc.Get(context.Background(), "secret", "")
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "Permission denied")

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(respond(`<html>`), nil)
	_, err = svc.Get(context.Background(), "a", "")
	assert.Error(t, err)

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, transport.ErrTimeout)
	_, err = svc.Get(context.Background(), "a", "")
	assert.ErrorIs(t, err, transport.ErrTimeout)
}

func TestDatabaseService_GetJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	expectRequest(t, mockExec, transport.MethodGet, "/.json", "", `{"a": {"b": "c"}}`)

	got, err := svc.GetJSON(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": "c"}}`, got)
}

// ── Remove / PutJSON ─────────────────────────────────────────────────────────

func TestDatabaseService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	expectRequest(t, mockExec, transport.MethodDelete, "/a/b.json", "", `null`)

	assert.NoError(t, svc.Remove(context.Background(), "a/b", ""))
}

func TestDatabaseService_PutJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, testServerConfig(config.SuccessStructured))
	expectRequest(t, mockExec, transport.MethodPut, "/cfg.json", `{"mode":"eco","level":3}`, `{"mode":"eco","level":3}`)

	assert.NoError(t, svc.PutJSON(context.Background(), "cfg", `{"mode":"eco","level":3}`, ""))
	assert.ErrorIs(t, svc.PutJSON(context.Background(), "cfg", `{"mode":`, ""), ErrInvalidArgument)
}

// ── addressing ───────────────────────────────────────────────────────────────

func TestDatabaseService_Target(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.NewClientFirebase("k", testIdentityHost, testTokenHost, testDBHost, "/apps/prod/", "")
	svc, _ := newTestDatabaseSvc(t, ctrl, cfg)

	assert.Equal(t, "/apps/prod/users/u%201.json", svc.target(models.DataLocation{Path: "users/u 1"}, ""))
	assert.Equal(t, "/apps/prod/users/caf%C3%A9/name.json?auth=a%2Bb", svc.target(models.DataLocation{Path: "users/café", Key: "name"}, "a+b"))
	assert.Equal(t, "/apps/prod.json", svc.target(models.DataLocation{}, ""))
}

func TestDatabaseService_NoHostConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.NewClientFirebase("k", testIdentityHost, testTokenHost, "", "", "")
	svc, _ := newTestDatabaseSvc(t, ctrl, cfg)

	_, err := svc.Get(context.Background(), "a", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "database host is not configured")
}

func TestDatabaseService_TextualErrorDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCfg := mock.NewMockServerConfig(ctrl)
	mockCfg.EXPECT().DatabaseHost().Return(testDBHost).AnyTimes()
	mockCfg.EXPECT().DatabaseBasePath().Return("").AnyTimes()
	mockCfg.EXPECT().TextualSuccess().Return(true).AnyTimes()

	svc, mockExec := newTestDatabaseSvc(t, ctrl, mockCfg)

	// A nested "error" member is misread as a failure in textual mode.
	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(respond(`{"log":{"error":1}}`), nil)
	_, err := svc.GetJSON(context.Background(), "a", "")
	assert.ErrorIs(t, err, ErrOperationFailed)

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(respond(`{"log":"fine"}`), nil)
	_, err = svc.GetJSON(context.Background(), "a", "")
	assert.NoError(t, err)
}
