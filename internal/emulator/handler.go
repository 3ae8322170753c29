package emulator

import (
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
)

// TokenIssuer is the "iss" claim of identity tokens minted by the emulator.
const TokenIssuer = "fb-emulator"

// Handler serves the emulated endpoints. Build the router with [Handler.Init].
type Handler struct {
	cfg       config.EmulatorConfig
	users     *userStore
	tree      *dataTree
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler creates an emulator with empty state.
func NewHandler(cfg config.EmulatorConfig, logger *logger.Logger) *Handler {
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = time.Hour
	}

	logger.Info().
		Bool("require_auth", cfg.RequireAuth).
		Dur("token_duration", cfg.TokenDuration).
		Msg("emulator handler created")

	return &Handler{
		cfg:       cfg,
		users:     newUserStore(utils.NewUUIDGenerator(), time.Now),
		tree:      &dataTree{},
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
