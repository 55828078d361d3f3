package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

// authService is the concrete implementation of [AuthService].
// It composes the user, session, and token stores into the account lifecycle
// flows and owns two cross-cutting rules:
//
//   - restricted fields (is_admin, audit timestamps, IP addresses) can never
//     be written through signup or profile update;
//   - changing an identity field (username, email, password) and
//     deactivation both invalidate every server-side session of the account,
//     atomically with the mutation itself.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	tokenService      TokenService
	mailer            Mailer

	// db provides the shared transaction runner for mutate-then-invalidate
	// flows.
	db *store.DB

	// mailTimeout bounds the detached verification-mail delivery.
	mailTimeout time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given stores,
// token service, and mailer.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(repos *store.Repositories, tokenService TokenService, mailer Mailer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    repos.UserRepository,
		sessionRepository: repos.SessionRepository,
		tokenService:      tokenService,
		mailer:            mailer,
		db:                repos.DB,
		mailTimeout:       10 * time.Second,
		logger:            logger,
	}
}

// Signup registers a new account.
//
// The request carries only caller-settable fields; everything restricted
// (is_admin, verification state, audit data) keeps its server-side default.
// Username and email are normalised to lowercase before storage so that
// uniqueness is case-insensitive.
//
// On success a single-use verification token is minted and emailed to the
// account's address. Mail delivery is best-effort and detached: its failure
// is logged but never fails the signup.
//
// Returns the persisted user or:
//   - [ErrInvalidDataProvided] if a required field is missing or malformed.
//   - [store.ErrUserAlreadyExists] if the username or email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest, registerIP string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateSignup(req); err != nil {
		log.Error().Str("username", req.Username).Msg("invalid signup data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		Username:     normalizeHandle(req.Username),
		Email:        normalizeHandle(req.Email),
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Gender:       req.Gender,
		RegisterIP:   registerIP,
		RegisteredAt: now,
		ActivatedAt:  &now,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenService.IssueVerificationToken(ctx, created.UserID)
	if err != nil {
		// The account exists; verification can be re-triggered later.
		log.Err(err).Int64("userID", created.UserID).Msg("verification token issuance failed")
		return created, nil
	}

	a.sendVerificationMail(created.Email, token.TokenUUID)

	return created, nil
}

// LoginSession authenticates the request and establishes the account's
// server-side session. The sessions table keeps one row per user, so a login
// from a second client replaces the first client's session.
func (a *authService) LoginSession(ctx context.Context, req models.LoginRequest, ip, device string) (models.User, string, error) {
	user, err := a.authenticate(ctx, req)
	if err != nil {
		return models.User{}, "", err
	}

	tokenString, _, err := a.tokenService.IssueBearerToken(ctx, user)
	if err != nil {
		return models.User{}, "", err
	}

	now := time.Now()
	session := models.Session{
		UserID:      user.UserID,
		LoginIP:     ip,
		LoginDevice: device,
		LoginAt:     now,
		JWTToken:    tokenString,
	}
	if err := a.sessionRepository.UpsertSession(ctx, session); err != nil {
		return models.User{}, "", fmt.Errorf("session creation failed: %w", err)
	}

	a.trackLogin(ctx, &user, ip, now)

	return user, tokenString, nil
}

// LoginBearer authenticates the request and issues a stateless bearer token.
// No session row is created; until expiry the token is bounded only by the
// logout blacklist.
func (a *authService) LoginBearer(ctx context.Context, req models.LoginRequest, ip string) (string, error) {
	user, err := a.authenticate(ctx, req)
	if err != nil {
		return "", err
	}

	tokenString, _, err := a.tokenService.IssueBearerToken(ctx, user)
	if err != nil {
		return "", err
	}

	a.trackLogin(ctx, &user, ip, time.Now())

	return tokenString, nil
}

// LogoutSession removes the session matching the caller's address and device.
// Logging out twice, or without a live session, succeeds; there is nothing
// left to remove.
func (a *authService) LogoutSession(ctx context.Context, userID int64, ip, device string) error {
	if err := a.sessionRepository.DeleteSession(ctx, userID, ip, device); err != nil {
		return fmt.Errorf("session removal failed: %w", err)
	}
	return nil
}

// LogoutBearer revokes the presented bearer token by blacklisting it.
//
// A malformed or forged token is reported as success without touching the
// blacklist: such a token can never validate, so its net effect (unusable)
// already holds, and logout stays a guaranteed-success operation for the
// client. The soft-fail is logged so it stays discoverable. Genuine store
// failures while inserting the blacklist row still surface.
func (a *authService) LogoutBearer(ctx context.Context, tokenString string) error {
	if err := a.tokenService.BlacklistBearerToken(ctx, tokenString); err != nil {
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			logger.FromContext(ctx).Warn().Err(err).Msg("logout of an invalid bearer token, nothing to revoke")
			return nil
		}
		return err
	}
	return nil
}

// ValidateSession authenticates a session-cookie credential.
//
// The token must pass full bearer validation, and the account's session row
// must both exist and hold this exact token. A session that was invalidated
// (identity change, deactivation, logout) or replaced by a newer login
// therefore rejects the cookie immediately, without waiting for the JWT to
// expire. Bearer tokens presented in the Authorization header never take
// this path; they stay valid until expiry or blacklisting.
func (a *authService) ValidateSession(ctx context.Context, tokenString string) (*models.BearerClaims, error) {
	claims, err := a.tokenService.ValidateBearerToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSessionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrTokenIsExpiredOrInvalid
		}
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("session lookup failed")
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}
	if session.JWTToken != tokenString {
		// A newer login replaced this session; the old cookie is dead.
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

// ConfirmVerification consumes the single-use verification token and stamps
// the bound account as verified. The consumption is a compare-and-set, so a
// replayed confirmation fails with [ErrTokenIsExpiredOrInvalid]. Consumption
// and stamp run in one transaction: a failed stamp rolls the consumption
// back, leaving the token usable for a retry.
func (a *authService) ConfirmVerification(ctx context.Context, tokenUUID string) (models.User, error) {
	var verified models.User
	err := a.db.WithinTransaction(ctx, func(q store.Querier) error {
		userID, err := a.tokenService.ConsumeVerificationToken(ctx, q, tokenUUID)
		if err != nil {
			return err
		}

		user, err := a.userRepository.MarkVerifiedTx(ctx, q, userID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("marking user verified failed")
			return fmt.Errorf("marking user verified failed: %w", err)
		}
		verified = user
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return verified, nil
}

// UpdateProfile applies a partial profile update.
//
// Username and email updates are checked against existing accounts before
// the write, and the database's unique constraints back the check under
// concurrency. A new password is hashed here; the plaintext never reaches
// the store.
//
// When the update touches an identity field (username, email, password), all
// of the account's sessions are invalidated in the same transaction as the
// update. Either both take effect or neither does. Bearer tokens already in
// the wild are untouched; they run out via their own expiry.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateProfileUpdate(update); err != nil {
		log.Error().Int64("userID", userID).Msg("invalid profile update provided")
		return models.User{}, err
	}

	changes := store.UserChanges{
		FirstName: trimmed(update.FirstName),
		LastName:  trimmed(update.LastName),
		Gender:    update.Gender,
	}

	if update.Username != nil {
		username := normalizeHandle(*update.Username)
		if err := a.ensureHandleFree(ctx, userID, a.userRepository.FindUserByUsername, username); err != nil {
			return models.User{}, err
		}
		changes.Username = &username
	}

	if update.Email != nil {
		email := normalizeHandle(*update.Email)
		if err := a.ensureHandleFree(ctx, userID, a.userRepository.FindUserByEmail, email); err != nil {
			return models.User{}, err
		}
		changes.Email = &email
	}

	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		changes.PasswordHash = &passwordHash
	}

	var updated models.User
	err := a.db.WithinTransaction(ctx, func(q store.Querier) error {
		user, err := a.userRepository.UpdateProfileTx(ctx, q, userID, changes)
		if err != nil {
			return err
		}
		updated = user

		if update.TouchesIdentity() {
			return a.sessionRepository.InvalidateAllTx(ctx, q, userID)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updated, nil
}

// Deactivate marks the account as deactivated and tears down its sessions in
// one transaction. Deactivation is monotonic: the first call wins, repeated
// calls fail with [store.ErrUserAlreadyDeactivated] and never move the
// timestamp.
func (a *authService) Deactivate(ctx context.Context, userID int64) error {
	err := a.db.WithinTransaction(ctx, func(q store.Querier) error {
		if err := a.userRepository.DeactivateTx(ctx, q, userID); err != nil {
			return err
		}
		return a.sessionRepository.InvalidateAllTx(ctx, q, userID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("deactivation ended with error")
		return fmt.Errorf("deactivation ended with error: %w", err)
	}

	return nil
}

// authenticate resolves the login request to an account and verifies the
// password. An unknown identifier, a wrong password, and a deactivated
// account all collapse into [ErrAuthenticationFailed].
func (a *authService) authenticate(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Identifier() == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	var (
		user models.User
		err  error
	)
	if req.Username != "" {
		user, err = a.userRepository.FindUserByUsername(ctx, normalizeHandle(req.Username))
	} else {
		user, err = a.userRepository.FindUserByEmail(ctx, normalizeHandle(req.Email))
	}
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrAuthenticationFailed
		}
		log.Err(err).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		log.Error().Int64("userID", user.UserID).Msg("wrong password")
		return models.User{}, ErrAuthenticationFailed
	}

	if !user.Active() {
		log.Error().Int64("userID", user.UserID).Msg("deactivated account login attempt")
		return models.User{}, ErrAuthenticationFailed
	}

	return user, nil
}

// ensureHandleFree rejects a username or email already held by a different
// account. The unique constraint remains the final arbiter; this check just
// turns the common case into a clean error before the transaction starts.
func (a *authService) ensureHandleFree(ctx context.Context, userID int64, find func(context.Context, string) (models.User, error), handle string) error {
	owner, err := find(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if owner.UserID != userID {
		return store.ErrUserAlreadyExists
	}
	return nil
}

// trackLogin stamps the login audit columns. Failures are logged and
// swallowed; a missing audit row must not fail the login itself.
func (a *authService) trackLogin(ctx context.Context, user *models.User, ip string, at time.Time) {
	if err := a.userRepository.TrackLogin(ctx, user.UserID, ip, at); err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", user.UserID).Msg("login tracking failed")
		return
	}
	user.LastLoginIP = ip
	user.LastLoginAt = &at
}

// sendVerificationMail delivers the verification mail on a detached context
// so a slow mail provider cannot stall or fail the signup response.
func (a *authService) sendVerificationMail(email, tokenUUID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.mailTimeout)
		defer cancel()

		if err := a.mailer.SendVerification(ctx, email, tokenUUID); err != nil {
			a.logger.Err(err).Str("email", email).Msg("verification mail delivery failed")
		}
	}()
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
