package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by Load when no session has been
	// saved yet, or after it was deleted.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSessionNotSaved is returned when the upsert completes without error
	// but reports zero affected rows.
	ErrSessionNotSaved = errors.New("local session was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from the session
	// row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
