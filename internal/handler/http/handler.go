package http

import (
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"
)

// Handler carries the dependencies of protectconfd's HTTP API. Routes and
// middleware are assembled in [Handler.Init].
type Handler struct {
	services *service.Services

	// auth carries the token settings for the API. An empty sign key
	// disables authentication entirely.
	auth settings.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, auth settings.Auth, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_enabled", auth.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		auth:     auth,
		logger:   logger,
	}
}
