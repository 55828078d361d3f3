package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and the identity-sensitive mutations
// (profile update, deactivation, verification) against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, RegisteredAt).
//
// Restricted columns (is_admin, verification and deactivation timestamps,
// login tracking) are not part of the INSERT; they keep their schema defaults
// regardless of what the input struct carries.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Transient driver errors → wrapped with [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, string(user.Gender),
		user.RegisterIP, user.RegisteredAt, user.ActivatedAt,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.db.wrapRetryable(err)
	}

	return created, nil
}

// FindUserByID retrieves the user record with the given primary key.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByUsername retrieves the user record with the given username.
// Usernames are stored lowercase; the caller normalises before lookup.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail retrieves the user record with the given email address.
// Emails are stored lowercase; the caller normalises before lookup.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.User{}, r.db.wrapRetryable(err)
	}

	return found, nil
}

// TrackLogin records the timestamp and source address of a successful login.
// A missing user is reported as [ErrUserNotFound].
func (r *userRepository) TrackLogin(ctx context.Context, userID int64, ip string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, trackLogin, userID, at, ip)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TrackLogin").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateProfileTx applies a partial profile update against the supplied
// [Querier] and returns the post-update user record. Running it inside
// [DB.WithinTransaction] lets the caller pair the mutation with a session
// invalidation atomically.
//
// The UPDATE statement is built dynamically so only the columns present in
// changes are written. An empty change set is a caller bug and is rejected.
//
// Error handling:
//   - Empty change set → plain error ("no columns to update").
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - No matching row → [ErrUserNotFound].
func (r *userRepository) UpdateProfileTx(ctx context.Context, q Querier, userID int64, changes UserChanges) (models.User, error) {
	log := logger.FromContext(ctx)

	if changes.Empty() {
		return models.User{}, errors.New("no columns to update")
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns)

	if changes.Username != nil {
		builder = builder.Set("username", *changes.Username)
	}
	if changes.Email != nil {
		builder = builder.Set("email", *changes.Email)
	}
	if changes.PasswordHash != nil {
		builder = builder.Set("password_hash", *changes.PasswordHash)
	}
	if changes.FirstName != nil {
		builder = builder.Set("first_name", *changes.FirstName)
	}
	if changes.LastName != nil {
		builder = builder.Set("last_name", *changes.LastName)
	}
	if changes.Gender != nil {
		builder = builder.Set("gender", sq.Expr("NULLIF(?, '')", string(*changes.Gender)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileTx").Msg("error: building query")
		return models.User{}, err
	}

	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileTx").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
		}
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfileTx").Msg("error: scanning error")
		return models.User{}, r.db.wrapRetryable(err)
	}

	return updated, nil
}

// DeactivateTx transitions an active user to deactivated against the supplied
// [Querier]. The UPDATE's WHERE clause admits only users whose deactivation
// timestamp is unset, so under concurrency exactly one caller wins.
//
// Error handling:
//   - User exists but is already deactivated → [ErrUserAlreadyDeactivated].
//   - User does not exist → [ErrUserNotFound].
func (r *userRepository) DeactivateTx(ctx context.Context, q Querier, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, deactivateUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeactivateTx").Msg("error: exec failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Zero affected rows: distinguish a missing user from a repeated
	// deactivation.
	var exists bool
	if err := q.QueryRowContext(ctx, userExists, userID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.DeactivateTx").Msg("error: existence check failed")
		return fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}
	if !exists {
		return ErrUserNotFound
	}

	return ErrUserAlreadyDeactivated
}

// MarkVerifiedTx stamps the user's verification timestamp against the
// supplied [Querier] and returns the updated record. Re-verifying an already
// verified user keeps the original timestamp.
func (r *userRepository) MarkVerifiedTx(ctx context.Context, q Querier, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := q.QueryRowContext(ctx, markUserVerified, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.MarkVerifiedTx").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapRetryable(err))
	}

	verified, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.MarkVerifiedTx").Msg("error: scanning error")
		return models.User{}, r.db.wrapRetryable(err)
	}

	return verified, nil
}

// scanUser reads a row in [userColumns] order into a models.User, converting
// nullable timestamp columns to pointers.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user        models.User
		gender      string
		lastLogin   sql.NullTime
		activated   sql.NullTime
		deactivated sql.NullTime
		verified    sql.NullTime
	)

	err := row.Scan(
		&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &gender, &user.IsAdmin,
		&user.RegisterIP, &user.LastLoginIP, &user.RegisteredAt,
		&lastLogin, &activated, &deactivated, &verified,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Gender = models.Gender(gender)
	user.LastLoginAt = nullTimePtr(lastLogin)
	user.ActivatedAt = nullTimePtr(activated)
	user.DeactivatedAt = nullTimePtr(deactivated)
	user.VerifiedAt = nullTimePtr(verified)

	return user, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
