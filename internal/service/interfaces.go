package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/models"
)

// AuthService orchestrates the account lifecycle: registration, the two login
// variants, their logouts, email verification, profile updates, and
// deactivation. It owns the rule that a change to any identity field tears
// down the account's server-side sessions.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest, registerIP string) (models.User, error)

	// LoginSession authenticates and establishes a server-side session bound
	// to the client's address and device. The returned JWT is the session
	// credential handed back in a cookie.
	LoginSession(ctx context.Context, req models.LoginRequest, ip, device string) (models.User, string, error)

	// LoginBearer authenticates and issues a stateless bearer token. No
	// session row is created.
	LoginBearer(ctx context.Context, req models.LoginRequest, ip string) (string, error)

	LogoutSession(ctx context.Context, userID int64, ip, device string) error
	LogoutBearer(ctx context.Context, tokenString string) error

	// ValidateSession authenticates a session-cookie credential. On top of
	// full bearer validation it requires the account's session row to exist
	// and to carry this exact token, so an invalidated or replaced session
	// rejects the cookie even while the JWT itself is still unexpired.
	ValidateSession(ctx context.Context, tokenString string) (*models.BearerClaims, error)

	// ConfirmVerification consumes a single-use verification token and marks
	// the bound account as verified.
	ConfirmVerification(ctx context.Context, tokenUUID string) (models.User, error)

	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

// TokenService issues and validates the two token families: signed bearer
// JWTs and single-use verification tokens.
type TokenService interface {
	IssueBearerToken(ctx context.Context, user models.User) (string, *models.BearerClaims, error)

	// ValidateBearerToken verifies signature, issuer and expiry, then rejects
	// tokens that have been blacklisted by a logout.
	ValidateBearerToken(ctx context.Context, tokenString string) (*models.BearerClaims, error)

	// BlacklistBearerToken revokes a bearer token. Expired tokens are
	// accepted so a client can always log out; malformed or forged ones are
	// rejected.
	BlacklistBearerToken(ctx context.Context, tokenString string) error

	IssueVerificationToken(ctx context.Context, userID int64) (models.Token, error)

	// ConsumeVerificationToken burns a single-use verification token and
	// returns the bound user ID. It runs against the caller's [store.Querier]
	// so the consumption can share a transaction with whatever the token
	// authorises; on rollback the token stays consumable.
	ConsumeVerificationToken(ctx context.Context, q store.Querier, tokenUUID string) (int64, error)
}

// UserService serves read-side account queries.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// Lookup resolves a public user profile by username or email. Used by
	// the preload endpoint, so it returns only non-sensitive fields.
	Lookup(ctx context.Context, req models.LookupRequest) (models.PublicUser, error)
}

// Mailer delivers the verification email carrying the single-use token.
// Delivery is best-effort; signup does not fail when the mail does.
type Mailer interface {
	SendVerification(ctx context.Context, email, tokenUUID string) error
}
