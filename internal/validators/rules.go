package validators

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the shortest password the identity toolkit accepts.
	MinPasswordLength = 6

	// MaxKeyLength is the longest database key in bytes.
	MaxKeyLength = 768

	// MaxPathDepth is the deepest database path.
	MaxPathDepth = 32

	forbiddenKeyChars = ".$#[]"
)

// ValidateEmail accepts a bare address such as "a@b.com". Display names and
// angle brackets are rejected.
func ValidateEmail(email string) error {
	if email == "" || strings.TrimSpace(email) != email {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// ValidatePassword enforces [MinPasswordLength] counted in characters.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// ValidateKey checks a single database key.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	for _, r := range key {
		if r < 0x20 || r == 0x7f || r == '/' || strings.ContainsRune(forbiddenKeyChars, r) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// ValidatePath checks a slash-separated database path. Leading and trailing
// slashes are ignored and an empty path addresses the root.
func ValidatePath(path string) error {
	segments := SplitPath(path)
	if len(segments) > MaxPathDepth {
		return ErrPathTooDeep
	}
	for _, segment := range segments {
		if segment == "" {
			return ErrEmptySegment
		}
		if err := ValidateKey(segment); err != nil {
			return err
		}
	}
	return nil
}

// SplitPath trims surrounding slashes and splits path into its keys. The root
// path yields no segments.
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
