package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. Verification tokens and blacklisted bearer tokens share
// the "tokens" table, discriminated by the kind column.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVerificationToken persists a single-use verification token bound to
// token.UserID and returns it with the server-assigned TokenID.
func (r *tokenRepository) CreateVerificationToken(ctx context.Context, token models.Token) (models.Token, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVerificationToken,
		token.TokenUUID, token.UserID, token.CreatedAt, token.ExpiresAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateVerificationToken").Msg("error: row is nil")
		return models.Token{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	if err := row.Scan(&token.TokenID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateVerificationToken").Msg("error: scanning error")
		return models.Token{}, r.db.wrapRetryable(err)
	}

	token.Kind = models.TokenKindVerification
	return token, nil
}

// ConsumeVerificationTokenTx atomically transitions the identified token from
// issued to consumed and returns the user it was bound to. The compare-and-set
// lives in the single UPDATE statement, so no two callers can both succeed.
// It runs against the supplied [Querier], letting the caller pair the
// consumption with the verification stamp in one transaction.
//
// Error handling:
//   - Unknown, already consumed, or expired identifier → [ErrTokenNotFound].
//     The cases are indistinguishable on purpose.
func (r *tokenRepository) ConsumeVerificationTokenTx(ctx context.Context, q Querier, tokenUUID string) (int64, error) {
	log := logger.FromContext(ctx)

	row := q.QueryRowContext(ctx, consumeVerificationToken, tokenUUID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.ConsumeVerificationTokenTx").Msg("error: row is nil")
		return 0, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	var userID int64
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.ConsumeVerificationTokenTx").Msg("error: scanning error")
		return 0, r.db.wrapRetryable(err)
	}

	return userID, nil
}

// BlacklistToken records a bearer token as revoked. Blacklisting the same
// token twice is a no-op, so logout stays idempotent.
func (r *tokenRepository) BlacklistToken(ctx context.Context, jwtToken string, expiresAt *time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, blacklistToken, jwtToken, time.Now(), expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.BlacklistToken").Msg("error: exec failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			// Raced with another logout for the same token. Already revoked.
			return nil
		default:
			return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
		}
	}

	return nil
}

// IsBlacklisted reports whether the bearer token has been revoked.
func (r *tokenRepository) IsBlacklisted(ctx context.Context, jwtToken string) (bool, error) {
	log := logger.FromContext(ctx)

	var blacklisted bool
	row := r.db.QueryRowContext(ctx, isTokenBlacklisted, jwtToken)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.IsBlacklisted").Msg("error: row is nil")
		return false, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	if err := row.Scan(&blacklisted); err != nil {
		log.Err(err).Str("func", "*tokenRepository.IsBlacklisted").Msg("error: scanning error")
		return false, r.db.wrapRetryable(err)
	}

	return blacklisted, nil
}

// DeleteExpiredBlacklisted removes blacklist rows whose expiry has passed.
// A revoked token past its own exp claim fails validation anyway, so keeping
// the row serves nothing.
func (r *tokenRepository) DeleteExpiredBlacklisted(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredBlacklisted, now)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteExpiredBlacklisted").Msg("error: exec failed")
		return 0, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}
