package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-firebase-client/internal/session"
)

const (
	sessionsTable = "sessions"

	// sessionRowID is the primary key of the only session row.
	sessionRowID = 1
)

// sqlite uses "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSaveSessionQuery builds the upsert that replaces the session row.
func buildSaveSessionQuery(creds session.Credentials, now time.Time) (string, []any, error) {
	query, args, err := builder.
		Insert(sessionsTable).
		Options("OR REPLACE").
		Columns("id", "id_token", "user_id", "refresh_token", "updated_at").
		Values(sessionRowID, creds.IDToken, creds.UserID, creds.RefreshToken, now.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLoadSessionQuery builds the select of the session row.
func buildLoadSessionQuery() (string, []any, error) {
	query, args, err := builder.
		Select("id_token", "user_id", "refresh_token").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteSessionQuery builds the delete of the session row.
func buildDeleteSessionQuery() (string, []any, error) {
	query, args, err := builder.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
