package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims is the claim set carried by a Firebase identity token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss, aud). The subject equals the account's local id.
type IDTokenClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the subject, as Firebase does.
	UserID string `json:"user_id,omitempty"`

	// Email is the account email address.
	Email string `json:"email,omitempty"`

	// EmailVerified reports whether the email address has been confirmed.
	EmailVerified bool `json:"email_verified,omitempty"`
}

// TokenInfo is the decoded, unverified view of an identity token that the
// client uses to reason about freshness.
type TokenInfo struct {
	// Subject is the local user id the token was issued for.
	Subject string

	// Email is the account email, if present.
	Email string

	// IssuedAt is the "iat" claim; zero when absent.
	IssuedAt time.Time

	// ExpiresAt is the "exp" claim; zero when absent.
	ExpiresAt time.Time
}

// Expired reports whether the token expires before now+skew. A token without
// an "exp" claim never expires.
func (t TokenInfo) Expired(now time.Time, skew time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(skew).Before(t.ExpiresAt)
}
