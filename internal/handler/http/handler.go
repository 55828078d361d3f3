package http

import (
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/service"
)

// sessionCookieName is the cookie carrying the session credential issued by
// the cookie login variant.
const sessionCookieName = "session_token"

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
