package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. The "sessions" table carries a UNIQUE constraint on
// user_id, so the replace-on-login semantics live in the upsert statement
// rather than in application code.
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

// UpsertSession inserts the session row for session.UserID, replacing any
// previous row for the same user. Repeating the call with identical arguments
// is a no-op, so login retries are safe.
func (r *sessionRepository) UpsertSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertSession,
		session.UserID, session.LoginIP, session.LoginDevice, session.LoginAt, session.JWTToken)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpsertSession").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	return nil
}

// FindSessionByUser retrieves the single session row for the given user, or
// [ErrSessionNotFound] when the user has no active session.
func (r *sessionRepository) FindSessionByUser(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSessionByUser, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByUser").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	err := row.Scan(&session.SessionID, &session.UserID, &session.LoginIP,
		&session.LoginDevice, &session.LoginAt, &session.JWTToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByUser").Msg("error: scanning error")
		return models.Session{}, r.db.wrapRetryable(err)
	}

	return session, nil
}

// DeleteSession removes the session matching the user and its recorded client
// identity. Deleting an absent session is not an error, which keeps logout
// idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, userID int64, ip, device string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteSession, userID, ip, device)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	return nil
}

// InvalidateAll removes every session row for the user. With the one-row-per-
// user table this deletes at most one row, but the contract stays "all
// sessions gone" should the schema ever relax.
func (r *sessionRepository) InvalidateAll(ctx context.Context, userID int64) error {
	return r.InvalidateAllTx(ctx, r.db, userID)
}

// InvalidateAllTx is [InvalidateAll] running against the supplied [Querier],
// so session teardown can share a transaction with the identity mutation that
// triggered it.
func (r *sessionRepository) InvalidateAllTx(ctx context.Context, q Querier, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, invalidateAllSessions, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.InvalidateAllTx").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	return nil
}
