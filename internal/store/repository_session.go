package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/session"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. It keeps a single row in the "sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save replaces the stored session row with creds.
func (r *sessionRepository) Save(ctx context.Context, creds session.Credentials) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(creds, r.now())
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", creds.UserID).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	return nil
}

// Load returns the stored session. An empty table yields
// [ErrLocalSessionNotFound].
func (r *sessionRepository) Load(ctx context.Context) (session.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to create query")
		return session.Credentials{}, err
	}

	var creds session.Credentials
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&creds.IDToken, &creds.UserID, &creds.RefreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Credentials{}, ErrLocalSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to scan session row")
		return session.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return creds, nil
}

// Delete removes the stored session row.
func (r *sessionRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
