package service

import (
	"context"
	"fmt"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/models"
)

// userService is the concrete implementation of [UserService]. It serves the
// read-side endpoints: the authenticated profile view and the public preload
// lookup.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the full account record for the authenticated caller.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("user fetch failed")
		return models.User{}, fmt.Errorf("user fetch failed: %w", err)
	}

	return user, nil
}

// Lookup resolves a public profile by username or email. The username is
// preferred when both are present. The result is reduced to the public
// projection; credential material and audit fields never leave this method.
func (u *userService) Lookup(ctx context.Context, req models.LookupRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	var (
		user models.User
		err  error
	)
	switch {
	case req.Username != "":
		user, err = u.userRepository.FindUserByUsername(ctx, normalizeHandle(req.Username))
	case req.Email != "":
		user, err = u.userRepository.FindUserByEmail(ctx, normalizeHandle(req.Email))
	default:
		return models.PublicUser{}, ErrInvalidDataProvided
	}
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		return models.PublicUser{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}
