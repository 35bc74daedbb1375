package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Sessions are never deleted, only revoked, so a stolen cookie cannot be
// replayed after logout.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session record.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.db.Builder(), session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession fetches a session row by its identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) GetSession(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.db.Builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	var revoked sql.NullTime
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt, &revoked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if revoked.Valid {
		session.RevokedAt = &revoked.Time
	}

	return session, nil
}

// RevokeSession marks a single session as revoked. Revoking an unknown
// session is not an error.
func (r *sessionRepository) RevokeSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRevokeSessionQuery(r.db.Builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RevokeUserSessions marks every live session of the user as revoked.
// Used at login so one browser session at a time stays valid per user.
func (r *sessionRepository) RevokeUserSessions(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRevokeUserSessionsQuery(r.db.Builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeUserSessions").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeUserSessions").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
