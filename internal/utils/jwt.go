package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-firebase-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseIDTokenClaims decodes an identity token WITHOUT verifying its
// signature and returns the claims relevant for freshness checks.
//
// The client cannot verify Google-signed tokens offline (it holds no
// signing keys); the result is only used to decide when to refresh, never to
// authorise anything.
//
// Returns an error if the token is not a well-formed JWT.
//
// Example usage:
//
//	info, err := utils.ParseIDTokenClaims(idToken)
//	if err == nil && info.Expired(time.Now(), time.Minute) {
//	    // refresh
//	}
func ParseIDTokenClaims(tokenString string) (models.TokenInfo, error) {
	if tokenString == "" {
		return models.TokenInfo{}, errors.New("empty token")
	}

	claims := &models.IDTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.TokenInfo{}, fmt.Errorf("error parsing identity token: %w", err)
	}

	info := models.TokenInfo{Subject: claims.Subject, Email: claims.Email}
	if info.Subject == "" {
		info.Subject = claims.UserID
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}

// GenerateIDToken creates a signed HMAC-SHA256 identity token in the shape of
// a Firebase ID token. It is used by the local emulator.
//
// All of issuer, localID, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateIDToken("emulator", "uid42", "a@b.com", false, time.Hour, "secret")
func GenerateIDToken(issuer, localID, email string, emailVerified bool, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || localID == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating identity token")
	}

	now := time.Now()
	claims := &models.IDTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   localID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:        localID,
		Email:         email,
		EmailVerified: emailVerified,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return signed, nil
}

// ValidateIDToken verifies the signature, issuer and expiry of a token made
// by [GenerateIDToken] and returns its subject.
func ValidateIDToken(tokenString, signKey, issuer string) (string, error) {
	claims := &models.IDTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating identity token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("empty subject error")
	}

	return claims.Subject, nil
}
