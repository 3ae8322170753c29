// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, request identifiers, certificate
// fingerprints, JSON response writing, HTTP client initialization and JWT
// claim inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// LocalIDCtxKey is the key under which the emulator stores the local user id
// of an authenticated database request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.LocalIDCtxKey, "p2bwL1Jd...")
var LocalIDCtxKey = contextKey("localID")

// GetLocalIDFromContext retrieves the local user id from the context.
//
// Returns the id and an ok flag:
//   - ok == true  — value is found, is a string and is not empty
//   - ok == false — value is missing or has an unexpected type
func GetLocalIDFromContext(ctx context.Context) (string, bool) {
	localID, ok := ctx.Value(LocalIDCtxKey).(string)
	return localID, ok && localID != ""
}
