package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"
	"time"

	"github.com/wayfare-app/auth-server/models"
)

// Querier abstracts the subset of database/sql used by repository methods so
// that the same query code runs against a plain connection or an open
// transaction. Both *sql.DB and *sql.Tx satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserChanges carries the column set of a partial profile update. Nil fields
// are left untouched. PasswordHash is the already-hashed secret; the
// plaintext never reaches this layer.
type UserChanges struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Gender       *models.Gender
}

// Empty reports whether no column would be written by the update.
func (c UserChanges) Empty() bool {
	return c.Username == nil && c.Email == nil && c.PasswordHash == nil &&
		c.FirstName == nil && c.LastName == nil && c.Gender == nil
}

// UserRepository is the data-access contract for the "users" table.
//
// The Tx variants run against the supplied [Querier] so the orchestrator can
// sequence a profile mutation and the resulting session invalidation inside a
// single transaction (see [DB.WithinTransaction]).
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	TrackLogin(ctx context.Context, userID int64, ip string, at time.Time) error

	UpdateProfileTx(ctx context.Context, q Querier, userID int64, changes UserChanges) (models.User, error)
	DeactivateTx(ctx context.Context, q Querier, userID int64) error
	MarkVerifiedTx(ctx context.Context, q Querier, userID int64) (models.User, error)
}

// SessionRepository is the data-access contract for the "sessions" table.
// The table holds at most one row per user; UpsertSession replaces the
// previous session atomically and is idempotent under retries.
type SessionRepository interface {
	UpsertSession(ctx context.Context, session models.Session) error
	FindSessionByUser(ctx context.Context, userID int64) (models.Session, error)
	DeleteSession(ctx context.Context, userID int64, ip, device string) error
	InvalidateAll(ctx context.Context, userID int64) error
	InvalidateAllTx(ctx context.Context, q Querier, userID int64) error
}

// TokenRepository is the data-access contract for the "tokens" table, which
// stores both verification and blacklist token kinds.
type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, token models.Token) (models.Token, error)

	// ConsumeVerificationTokenTx atomically transitions the token identified
	// by tokenUUID from issued to consumed and returns the bound user ID.
	// Exactly one of any number of concurrent calls for the same identifier
	// succeeds; the rest (and calls for consumed, expired, or unknown tokens)
	// fail with [ErrTokenNotFound]. Running against the caller's [Querier]
	// lets the consumption share a transaction with the verification stamp,
	// so a failed stamp never burns the token.
	ConsumeVerificationTokenTx(ctx context.Context, q Querier, tokenUUID string) (int64, error)

	BlacklistToken(ctx context.Context, jwtToken string, expiresAt *time.Time) error
	IsBlacklisted(ctx context.Context, jwtToken string) (bool, error)

	// DeleteExpiredBlacklisted removes blacklist rows whose expiry has
	// passed and returns the number of deleted rows.
	DeleteExpiredBlacklisted(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation hit a
// transient condition worth retrying by the caller.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
