package service

import (
	"github.com/wayfare-app/auth-server/internal/config"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/store"
)

type Services struct {
	AuthService  AuthService
	TokenService TokenService
	UserService  UserService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, mailer Mailer, logger *logger.Logger) *Services {
	tokenService := NewTokenService(repos.TokenRepository, cfg.App, logger)

	return &Services{
		AuthService:  NewAuthService(repos, tokenService, mailer, logger),
		TokenService: tokenService,
		UserService:  NewUserService(repos.UserRepository, logger),
	}
}
