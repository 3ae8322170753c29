package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers used for request
// correlation in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Compact returns a random identifier of n hex characters without dashes.
// n <= 0 means 32. The emulator uses it for Firebase-style local ids and
// opaque tokens.
func (g *UUIDGenerator) Compact(n int) string {
	if n <= 0 {
		n = 32
	}

	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return b.String()[:n]
}
