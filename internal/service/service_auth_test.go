package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/mock"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
	"go.uber.org/mock/gomock"
)

type authSvcMocks struct {
	userRepo    *mock.MockUserRepository
	sessionRepo *mock.MockSessionRepository
	tokenSvc    *mock.MockTokenService
	mailer      *mock.MockMailer
	sqlMock     sqlmock.Sqlmock
	conn        *sql.DB
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, authSvcMocks) {
	t.Helper()

	conn, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	l := logger.NewLogger("test")
	m := authSvcMocks{
		userRepo:    mock.NewMockUserRepository(ctrl),
		sessionRepo: mock.NewMockSessionRepository(ctrl),
		tokenSvc:    mock.NewMockTokenService(ctrl),
		mailer:      mock.NewMockMailer(ctrl),
		sqlMock:     sqlMock,
		conn:        conn,
	}

	svc := &authService{
		userRepository:    m.userRepo,
		sessionRepository: m.sessionRepo,
		tokenService:      m.tokenSvc,
		mailer:            m.mailer,
		db:                &store.DB{DB: conn},
		mailTimeout:       time.Second,
		logger:            l,
	}
	return svc, m
}

func signupRequest() models.SignupRequest {
	return models.SignupRequest{
		Username:  "John",
		Email:     "John@Example.com",
		Password:  "s3cret-password",
		FirstName: "John",
		Gender:    models.GenderMale,
	}
}

// ─────────────────────────────── Signup ───────────────────────────────

func TestSignup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// Handles are stored lowercase, the password only as a hash.
			assert.Equal(t, "john", user.Username)
			assert.Equal(t, "john@example.com", user.Email)
			assert.NotEqual(t, "s3cret-password", user.PasswordHash)
			assert.True(t, utils.VerifyPassword("s3cret-password", user.PasswordHash))
			assert.Equal(t, "10.0.0.1", user.RegisterIP)
			assert.False(t, user.IsAdmin)
			assert.Nil(t, user.VerifiedAt)
			assert.Nil(t, user.DeactivatedAt)
			require.NotNil(t, user.ActivatedAt)
			user.UserID = 7
			return user, nil
		})

	m.tokenSvc.EXPECT().
		IssueVerificationToken(ctx, int64(7)).
		Return(models.Token{TokenUUID: "verification-uuid"}, nil)

	mailSent := make(chan struct{})
	m.mailer.EXPECT().
		SendVerification(gomock.Any(), "john@example.com", "verification-uuid").
		DoAndReturn(func(context.Context, string, string) error {
			close(mailSent)
			return nil
		})

	created, err := svc.Signup(ctx, signupRequest(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)

	select {
	case <-mailSent:
	case <-time.After(time.Second):
		t.Fatal("verification mail was never sent")
	}
}

func TestSignup_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{"missing username", func(r *models.SignupRequest) { r.Username = "" }},
		{"short username", func(r *models.SignupRequest) { r.Username = "jo" }},
		{"username with spaces", func(r *models.SignupRequest) { r.Username = "john doe" }},
		{"missing email", func(r *models.SignupRequest) { r.Email = "" }},
		{"malformed email", func(r *models.SignupRequest) { r.Email = "not-an-email" }},
		{"missing password", func(r *models.SignupRequest) { r.Password = "" }},
		{"short password", func(r *models.SignupRequest) { r.Password = "short" }},
		{"unknown gender", func(r *models.SignupRequest) { r.Gender = "robot" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signupRequest()
			tt.mutate(&req)

			_, err := svc.Signup(ctx, req, "10.0.0.1")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSignup_DuplicateHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(ctx, signupRequest(), "10.0.0.1")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestSignup_TokenIssuanceFailureDoesNotFailSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 7
			return user, nil
		})
	m.tokenSvc.EXPECT().
		IssueVerificationToken(ctx, int64(7)).
		Return(models.Token{}, ErrTokenCreationFailed)

	created, err := svc.Signup(ctx, signupRequest(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
}

// ─────────────────────────────── Login ───────────────────────────────

func storedUser(t *testing.T) models.User {
	t.Helper()

	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)

	now := time.Now()
	return models.User{
		UserID:       7,
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: hash,
		RegisteredAt: now,
		ActivatedAt:  &now,
	}
}

func TestLoginSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t)

	gomock.InOrder(
		m.userRepo.EXPECT().FindUserByUsername(ctx, "john").Return(user, nil),
		m.tokenSvc.EXPECT().IssueBearerToken(ctx, user).Return("signed.jwt.token", &models.BearerClaims{}, nil),
		m.sessionRepo.EXPECT().
			UpsertSession(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, session models.Session) error {
				assert.Equal(t, int64(7), session.UserID)
				assert.Equal(t, "10.0.0.1", session.LoginIP)
				assert.Equal(t, "cli/1.0", session.LoginDevice)
				assert.Equal(t, "signed.jwt.token", session.JWTToken)
				return nil
			}),
		m.userRepo.EXPECT().TrackLogin(ctx, int64(7), "10.0.0.1", gomock.Any()).Return(nil),
	)

	loggedIn, tokenString, err := svc.LoginSession(ctx, models.LoginRequest{Username: "John", Password: "s3cret-password"}, "10.0.0.1", "cli/1.0")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", tokenString)
	assert.Equal(t, "10.0.0.1", loggedIn.LastLoginIP)
	require.NotNil(t, loggedIn.LastLoginAt)
}

func TestLoginSession_ByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t)

	m.userRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(user, nil)
	m.tokenSvc.EXPECT().IssueBearerToken(ctx, user).Return("signed.jwt.token", &models.BearerClaims{}, nil)
	m.sessionRepo.EXPECT().UpsertSession(ctx, gomock.Any()).Return(nil)
	m.userRepo.EXPECT().TrackLogin(ctx, int64(7), "10.0.0.1", gomock.Any()).Return(nil)

	_, _, err := svc.LoginSession(ctx, models.LoginRequest{Email: "John@Example.com", Password: "s3cret-password"}, "10.0.0.1", "cli/1.0")
	require.NoError(t, err)
}

func TestLogin_UniformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	deactivated := storedUser(t)
	at := time.Now()
	deactivated.DeactivatedAt = &at

	tests := []struct {
		name     string
		req      models.LoginRequest
		expect   func()
	}{
		{
			name: "unknown user",
			req:  models.LoginRequest{Username: "ghost", Password: "s3cret-password"},
			expect: func() {
				m.userRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			req:  models.LoginRequest{Username: "john", Password: "wrong-password"},
			expect: func() {
				m.userRepo.EXPECT().FindUserByUsername(ctx, "john").Return(storedUser(t), nil)
			},
		},
		{
			name: "deactivated account",
			req:  models.LoginRequest{Username: "john", Password: "s3cret-password"},
			expect: func() {
				m.userRepo.EXPECT().FindUserByUsername(ctx, "john").Return(deactivated, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()
			_, _, err := svc.LoginSession(ctx, tt.req, "10.0.0.1", "cli/1.0")
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
		})
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, _, err := svc.LoginSession(ctx, models.LoginRequest{Password: "s3cret-password"}, "10.0.0.1", "cli/1.0")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.LoginBearer(ctx, models.LoginRequest{Username: "john"}, "10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLoginBearer_NoSessionCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t)

	// No UpsertSession expectation: a bearer login must not touch sessions.
	m.userRepo.EXPECT().FindUserByUsername(ctx, "john").Return(user, nil)
	m.tokenSvc.EXPECT().IssueBearerToken(ctx, user).Return("signed.jwt.token", &models.BearerClaims{}, nil)
	m.userRepo.EXPECT().TrackLogin(ctx, int64(7), "10.0.0.1", gomock.Any()).Return(nil)

	tokenString, err := svc.LoginBearer(ctx, models.LoginRequest{Username: "john", Password: "s3cret-password"}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", tokenString)
}

// ─────────────────────────────── Logout ───────────────────────────────

func TestLogoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.sessionRepo.EXPECT().DeleteSession(ctx, int64(7), "10.0.0.1", "cli/1.0").Return(nil)

	assert.NoError(t, svc.LogoutSession(ctx, 7, "10.0.0.1", "cli/1.0"))
}

func TestLogoutBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.tokenSvc.EXPECT().BlacklistBearerToken(ctx, "signed.jwt.token").Return(nil)

	assert.NoError(t, svc.LogoutBearer(ctx, "signed.jwt.token"))
}

func TestLogoutBearer_InvalidTokenIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// A token that never validated cannot be blacklisted, but the client's
	// goal (an unusable credential) already holds. Logout reports success.
	m.tokenSvc.EXPECT().BlacklistBearerToken(ctx, "not-a-jwt").Return(ErrTokenIsExpiredOrInvalid)

	assert.NoError(t, svc.LogoutBearer(ctx, "not-a-jwt"))
}

func TestLogoutBearer_StoreFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.tokenSvc.EXPECT().
		BlacklistBearerToken(ctx, "signed.jwt.token").
		Return(store.ErrStoreUnavailable)

	err := svc.LogoutBearer(ctx, "signed.jwt.token")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ──────────────────────────── Session auth ────────────────────────────

func sessionClaims(userID string) *models.BearerClaims {
	claims := &models.BearerClaims{Username: "john"}
	claims.Subject = userID
	return claims
}

func TestValidateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.tokenSvc.EXPECT().ValidateBearerToken(ctx, "signed.jwt.token").Return(sessionClaims("7"), nil)
	m.sessionRepo.EXPECT().FindSessionByUser(ctx, int64(7)).Return(models.Session{UserID: 7, JWTToken: "signed.jwt.token"}, nil)

	claims, err := svc.ValidateSession(ctx, "signed.jwt.token")
	require.NoError(t, err)
	assert.Equal(t, "john", claims.Username)
}

func TestValidateSession_NoSessionRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// The JWT is still valid, but the session was invalidated server-side.
	m.tokenSvc.EXPECT().ValidateBearerToken(ctx, "signed.jwt.token").Return(sessionClaims("7"), nil)
	m.sessionRepo.EXPECT().FindSessionByUser(ctx, int64(7)).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.ValidateSession(ctx, "signed.jwt.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidateSession_ReplacedByNewerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.tokenSvc.EXPECT().ValidateBearerToken(ctx, "old.jwt.token").Return(sessionClaims("7"), nil)
	m.sessionRepo.EXPECT().FindSessionByUser(ctx, int64(7)).Return(models.Session{UserID: 7, JWTToken: "new.jwt.token"}, nil)

	_, err := svc.ValidateSession(ctx, "old.jwt.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidateSession_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.tokenSvc.EXPECT().ValidateBearerToken(ctx, "bad-token").Return(nil, ErrTokenIsExpiredOrInvalid)

	_, err := svc.ValidateSession(ctx, "bad-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────── Verification ───────────────────────────

func TestConfirmVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	now := time.Now()
	verified := storedUser(t)
	verified.VerifiedAt = &now

	m.sqlMock.ExpectBegin()
	gomock.InOrder(
		m.tokenSvc.EXPECT().ConsumeVerificationToken(ctx, gomock.Any(), "verification-uuid").Return(int64(7), nil),
		m.userRepo.EXPECT().MarkVerifiedTx(ctx, gomock.Any(), int64(7)).Return(verified, nil),
	)
	m.sqlMock.ExpectCommit()

	user, err := svc.ConfirmVerification(ctx, "verification-uuid")
	require.NoError(t, err)
	assert.NotNil(t, user.VerifiedAt)
	assert.NoError(t, m.sqlMock.ExpectationsWereMet())
}

func TestConfirmVerification_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.sqlMock.ExpectBegin()
	m.tokenSvc.EXPECT().
		ConsumeVerificationToken(ctx, gomock.Any(), "consumed-uuid").
		Return(int64(0), ErrTokenIsExpiredOrInvalid)
	m.sqlMock.ExpectRollback()

	_, err := svc.ConfirmVerification(ctx, "consumed-uuid")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestConfirmVerification_RollsBackConsumptionOnFailedStamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// If stamping the account fails, the transaction rolls back and the
	// token stays consumable for a retry instead of being burned.
	m.sqlMock.ExpectBegin()
	gomock.InOrder(
		m.tokenSvc.EXPECT().ConsumeVerificationToken(ctx, gomock.Any(), "verification-uuid").Return(int64(7), nil),
		m.userRepo.EXPECT().MarkVerifiedTx(ctx, gomock.Any(), int64(7)).Return(models.User{}, store.ErrStoreUnavailable),
	)
	m.sqlMock.ExpectRollback()

	_, err := svc.ConfirmVerification(ctx, "verification-uuid")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NoError(t, m.sqlMock.ExpectationsWereMet())
}

// ──────────────────────────── Profile update ────────────────────────────

func TestUpdateProfile_IdentityChangeInvalidatesSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	newEmail := "New@Example.com"

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectCommit()

	gomock.InOrder(
		m.userRepo.EXPECT().FindUserByEmail(ctx, "new@example.com").Return(models.User{}, store.ErrUserNotFound),
		m.userRepo.EXPECT().
			UpdateProfileTx(ctx, gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ store.Querier, _ int64, changes store.UserChanges) (models.User, error) {
				require.NotNil(t, changes.Email)
				assert.Equal(t, "new@example.com", *changes.Email)
				return models.User{UserID: 7, Email: *changes.Email}, nil
			}),
		m.sessionRepo.EXPECT().InvalidateAllTx(ctx, gomock.Any(), int64(7)).Return(nil),
	)

	updated, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.NoError(t, m.sqlMock.ExpectationsWereMet())
}

func TestUpdateProfile_PasswordChangeIsHashedAndInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	newPassword := "brand-new-password"

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectCommit()

	gomock.InOrder(
		m.userRepo.EXPECT().
			UpdateProfileTx(ctx, gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ store.Querier, _ int64, changes store.UserChanges) (models.User, error) {
				require.NotNil(t, changes.PasswordHash)
				assert.NotEqual(t, newPassword, *changes.PasswordHash)
				assert.True(t, utils.VerifyPassword(newPassword, *changes.PasswordHash))
				return models.User{UserID: 7}, nil
			}),
		m.sessionRepo.EXPECT().InvalidateAllTx(ctx, gomock.Any(), int64(7)).Return(nil),
	)

	_, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Password: &newPassword})
	require.NoError(t, err)
}

func TestUpdateProfile_NonIdentityChangeKeepsSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	firstName := "Johnny"

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectCommit()

	// No InvalidateAllTx expectation: display fields leave sessions alone.
	m.userRepo.EXPECT().
		UpdateProfileTx(ctx, gomock.Any(), int64(7), gomock.Any()).
		Return(models.User{UserID: 7, FirstName: firstName}, nil)

	updated, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)
}

func TestUpdateProfile_HandleTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	taken := "taken"
	m.userRepo.EXPECT().FindUserByUsername(ctx, "taken").Return(models.User{UserID: 99}, nil)

	_, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Username: &taken})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUpdateProfile_SameOwnerKeepsHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	same := "john"

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectCommit()

	m.userRepo.EXPECT().FindUserByUsername(ctx, "john").Return(models.User{UserID: 7}, nil)
	m.userRepo.EXPECT().UpdateProfileTx(ctx, gomock.Any(), int64(7), gomock.Any()).Return(models.User{UserID: 7}, nil)
	m.sessionRepo.EXPECT().InvalidateAllTx(ctx, gomock.Any(), int64(7)).Return(nil)

	_, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Username: &same})
	require.NoError(t, err)
}

func TestUpdateProfile_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateProfile_RollbackOnInvalidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	newUsername := "johnny"

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectRollback()

	gomock.InOrder(
		m.userRepo.EXPECT().FindUserByUsername(ctx, "johnny").Return(models.User{}, store.ErrUserNotFound),
		m.userRepo.EXPECT().UpdateProfileTx(ctx, gomock.Any(), int64(7), gomock.Any()).Return(models.User{UserID: 7}, nil),
		m.sessionRepo.EXPECT().InvalidateAllTx(ctx, gomock.Any(), int64(7)).Return(store.ErrStoreUnavailable),
	)

	_, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Username: &newUsername})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NoError(t, m.sqlMock.ExpectationsWereMet())
}

// ──────────────────────────── Deactivation ────────────────────────────

func TestDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectCommit()

	gomock.InOrder(
		m.userRepo.EXPECT().DeactivateTx(ctx, gomock.Any(), int64(7)).Return(nil),
		m.sessionRepo.EXPECT().InvalidateAllTx(ctx, gomock.Any(), int64(7)).Return(nil),
	)

	require.NoError(t, svc.Deactivate(ctx, 7))
	assert.NoError(t, m.sqlMock.ExpectationsWereMet())
}

func TestDeactivate_AlreadyDeactivated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.sqlMock.ExpectBegin()
	m.sqlMock.ExpectRollback()

	m.userRepo.EXPECT().DeactivateTx(ctx, gomock.Any(), int64(7)).Return(store.ErrUserAlreadyDeactivated)

	err := svc.Deactivate(ctx, 7)
	assert.ErrorIs(t, err, store.ErrUserAlreadyDeactivated)
}
