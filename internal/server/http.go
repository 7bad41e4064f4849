package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg settings.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) serve() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP transport failed")
	}
}

func (h *httpServer) shutdown() {
	h.logger.Info().Msg("stopping HTTP transport")
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP transport shutdown")
	}
}
