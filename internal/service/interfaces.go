// Package service implements the Firebase operation façade on top of a
// [transport.Executor].
//
// Each operation builds one request, performs exactly one exchange and
// decides success from the response body alone. A nil error means the
// operation succeeded. Failures are reported as [*APIError] (the body did
// not show success), [ErrMissingCredentials], [ErrNotAuthenticated],
// [ErrInvalidArgument] or a wrapped transport error.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/session"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ServerConfig is the read-only endpoint configuration of a Firebase project.
// config.ClientFirebase implements it.
type ServerConfig interface {
	// APIKey returns the Web API key sent as ?key=.
	APIKey() string

	// IdentityHost returns the identity toolkit host.
	IdentityHost() string

	// TokenHost returns the secure token service host.
	TokenHost() string

	// DatabaseHost returns the realtime database host.
	DatabaseHost() string

	// DatabaseBasePath returns the path under which every database path lives.
	DatabaseBasePath() string

	// TextualSuccess reports whether success is detected by substring search
	// instead of structured field lookup.
	TextualSuccess() bool
}

// AuthService defines the identity operations and owns the credential
// session.
type AuthService interface {
	// SignUp creates an account and adopts the returned credentials.
	SignUp(ctx context.Context, email, password string) error

	// SignIn signs in with email and password and adopts the returned
	// credentials.
	SignIn(ctx context.Context, email, password string) error

	// RefreshIDToken exchanges a refresh token for a new identity token.
	// An empty refreshToken uses the session's refresh token.
	RefreshIDToken(ctx context.Context, refreshToken string) error

	// ResetPassword sends a password reset email.
	ResetPassword(ctx context.Context, email string) error

	// VerifyEmail sends an email verification message. An empty idToken
	// uses the session's identity token.
	VerifyEmail(ctx context.Context, idToken string) error

	// CheckEmailVerified reports whether the account's email is confirmed.
	// An empty idToken uses the session's identity token.
	CheckEmailVerified(ctx context.Context, idToken string) (bool, error)

	// DeleteUser deletes the account. An empty idToken uses the session's
	// identity token; deleting the session's own account clears the session.
	DeleteUser(ctx context.Context, idToken string) error

	// Restore adopts the persisted session, if any.
	Restore(ctx context.Context) error

	// SignOut forgets the session in memory and in the persisted cache.
	SignOut(ctx context.Context) error

	// IDTokenExpiry returns the "exp" claim of the session's identity token.
	IDTokenExpiry() (time.Time, error)

	// EnsureFresh refreshes the identity token when it expires within skew.
	EnsureFresh(ctx context.Context, skew time.Duration) error

	IDToken() string
	UserID() string
	RefreshToken() string
	Credentials() session.Credentials
}

// DatabaseService defines the realtime database operations. An empty
// idToken sends the request without ?auth=.
type DatabaseService interface {
	// Put writes a scalar value to path/key.
	Put(ctx context.Context, path, key string, value any, idToken string) error

	// Update merges {key: value} into path.
	Update(ctx context.Context, path, key string, value any, idToken string) error

	// Get reads the value at path: JSON strings unquoted, anything else as
	// compact JSON text.
	Get(ctx context.Context, path, idToken string) (string, error)

	// Remove deletes the node at path.
	Remove(ctx context.Context, path, idToken string) error

	// PutJSON replaces the node at path with doc, which must be valid JSON.
	PutJSON(ctx context.Context, path, doc, idToken string) error

	// GetJSON returns the raw JSON document at path.
	GetJSON(ctx context.Context, path, idToken string) (string, error)
}
