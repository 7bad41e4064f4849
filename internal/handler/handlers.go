// Package handler assembles the transport-facing handlers of protectconfd.
package handler

import (
	"github.com/pimmuno/protectconf/internal/handler/grpc"
	"github.com/pimmuno/protectconf/internal/handler/http"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"
)

// Handlers carries one handler per enabled transport. A transport whose
// address is empty in the settings stays nil here and in the server.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds handlers for every transport with a configured address.
// Auth settings reach only the HTTP side; gRPC serves health probes and
// needs no token checks.
func NewHandlers(services *service.Services, cfg settings.Settings, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Auth, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportHandlers
	}

	return handlers, nil
}
