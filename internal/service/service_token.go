package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wayfare-app/auth-server/internal/config"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

// tokenService is the concrete implementation of [TokenService].
// It signs bearer JWTs with HMAC-SHA256 and backs verification tokens and the
// logout blacklist with a TokenRepository.
type tokenService struct {
	// tokenRepository persists verification tokens and the bearer blacklist.
	tokenRepository store.TokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// verificationTTL controls how long a verification token stays
	// consumable. Zero means tokens never expire on their own.
	verificationTTL time.Duration

	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] wired to the given
// TokenRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenRepository: tokenRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		verificationTTL: cfg.VerificationTTL,
		uuidGenerator:   utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// IssueBearerToken signs a JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the user ID as "sub", the
// identity snapshot (username, email, is_admin) as private claims, and
// expires after tokenDuration.
func (t *tokenService) IssueBearerToken(ctx context.Context, user models.User) (string, *models.BearerClaims, error) {
	tokenString, claims, err := utils.GenerateJWTToken(t.tokenIssuer, user, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return tokenString, claims, nil
}

// ValidateBearerToken validates and parses a raw JWT string.
//
// Signature, issuer, and expiry defects are normalised to
// [ErrTokenIsExpiredOrInvalid]. A structurally valid token that has been
// blacklisted by a logout is rejected the same way; only the blacklist
// lookup's own infrastructure failure surfaces as a distinct error.
func (t *tokenService) ValidateBearerToken(ctx context.Context, tokenString string) (*models.BearerClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	blacklisted, err := t.tokenRepository.IsBlacklisted(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("blacklist lookup failed")
		return nil, fmt.Errorf("blacklist lookup failed: %w", err)
	}
	if blacklisted {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

// BlacklistBearerToken revokes a bearer token.
//
// The token's signature and issuer must verify, but an elapsed expiry is
// accepted so that logout keeps working after the token lapses. The
// blacklist row inherits the token's own expiry, which bounds how long the
// row has to live.
func (t *tokenService) BlacklistBearerToken(ctx context.Context, tokenString string) error {
	claims, err := utils.ParseJWTTokenAllowExpired(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return ErrTokenIsExpiredOrInvalid
	}

	var expiresAt *time.Time
	if claims.ExpiresAt != nil {
		expiresAt = &claims.ExpiresAt.Time
	}

	if err := t.tokenRepository.BlacklistToken(ctx, tokenString, expiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Msg("blacklisting token failed")
		return fmt.Errorf("blacklisting token failed: %w", err)
	}

	return nil
}

// IssueVerificationToken mints a single-use verification token bound to the
// given user and persists it. The opaque identifier is a UUID; nothing about
// the user can be derived from it.
func (t *tokenService) IssueVerificationToken(ctx context.Context, userID int64) (models.Token, error) {
	now := time.Now()
	token := models.Token{
		Kind:      models.TokenKindVerification,
		TokenUUID: t.uuidGenerator.Generate(),
		UserID:    userID,
		CreatedAt: now,
	}
	if t.verificationTTL > 0 {
		expires := now.Add(t.verificationTTL)
		token.ExpiresAt = &expires
	}

	created, err := t.tokenRepository.CreateVerificationToken(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("verification token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return created, nil
}

// ConsumeVerificationToken atomically consumes the identified token against
// the caller's querier and returns the user it was bound to. Unknown, expired,
// and already consumed identifiers are all reported as
// [ErrTokenIsExpiredOrInvalid].
func (t *tokenService) ConsumeVerificationToken(ctx context.Context, q store.Querier, tokenUUID string) (int64, error) {
	if tokenUUID == "" {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	userID, err := t.tokenRepository.ConsumeVerificationTokenTx(ctx, q, tokenUUID)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return 0, ErrTokenIsExpiredOrInvalid
		}
		logger.FromContext(ctx).Err(err).Msg("verification token consumption failed")
		return 0, fmt.Errorf("verification token consumption failed: %w", err)
	}

	return userID, nil
}
