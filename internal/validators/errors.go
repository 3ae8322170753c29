package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidRequestType = errors.New("invalid out-of-band request type")
	ErrEmptyIDToken       = errors.New("identity token is required")

	ErrEmptyKey     = errors.New("database key is empty")
	ErrInvalidKey   = errors.New("database key contains a forbidden character")
	ErrKeyTooLong   = errors.New("database key is longer than 768 bytes")
	ErrEmptySegment = errors.New("database path contains an empty segment")
	ErrPathTooDeep  = errors.New("database path is deeper than 32 levels")
)
