package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/mock"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/models"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	return NewUserService(userRepo, logger.Nop()), userRepo
}

// ───── GetUser ─────

func TestUserService_GetUser(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByID(gomock.Any(), int64(42)).
		Return(models.User{UserID: 42, Username: "alice"}, nil)

	user, err := svc.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), 7)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

// ───── Lookup ─────

func TestUserService_Lookup_ByUsername(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{
			UserID:       42,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$secret",
			RegisterIP:   "203.0.113.7",
		}, nil)

	// the handle is normalized before the lookup
	public, err := svc.Lookup(context.Background(), models.LookupRequest{Username: "  Alice "})
	require.NoError(t, err)

	assert.Equal(t, int64(42), public.UserID)
	assert.Equal(t, "alice", public.Username)
	assert.Equal(t, "alice@example.com", public.Email)
}

func TestUserService_Lookup_ByEmail(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 42, Username: "alice", Email: "alice@example.com"}, nil)

	public, err := svc.Lookup(context.Background(), models.LookupRequest{Email: "Alice@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), public.UserID)
}

func TestUserService_Lookup_PrefersUsername(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 42, Username: "alice"}, nil)

	_, err := svc.Lookup(context.Background(), models.LookupRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
}

func TestUserService_Lookup_EmptyRequest(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.Lookup(context.Background(), models.LookupRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Lookup_UnknownHandle(t *testing.T) {
	svc, userRepo := newTestUserSvc(t)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "nobody").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Lookup(context.Background(), models.LookupRequest{Username: "nobody"})
	require.ErrorIs(t, err, store.ErrUserNotFound)
}
