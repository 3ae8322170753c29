package store

import (
	"context"

	"github.com/MKhiriev/go-firebase-client/internal/session"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the signed-in credentials between CLI runs.
// At most one session is stored.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, creds session.Credentials) error
	// Load returns the stored session or [ErrLocalSessionNotFound].
	Load(ctx context.Context) (session.Credentials, error)
	// Delete removes the stored session. Deleting a missing session is not
	// an error.
	Delete(ctx context.Context) error
}
