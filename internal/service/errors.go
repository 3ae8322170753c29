package service

import (
	"errors"
	"fmt"
)

var (
	ErrOperationFailed    = errors.New("operation failed")
	ErrMissingCredentials = errors.New("response is missing credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// APIError carries the server's error message for a failed operation.
// errors.Is(err, ErrOperationFailed) holds for every APIError.
type APIError struct {
	// Operation is the façade operation name, e.g. "signUp".
	Operation string
	// Message is the server's message, or extract.UnknownError.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrOperationFailed
}
