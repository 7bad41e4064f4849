package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pimmuno/protectconf/internal/handler"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
)

// server is the transport set of the resolution daemon. A transport whose
// address is left empty in the settings is never constructed and stays nil.
type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer assembles the enabled transports from cfg. At least one of the
// HTTP and gRPC addresses must be configured.
func NewServer(handlers *handler.Handlers, cfg settings.Server, logger *logger.Logger) (Server, error) {
	srv := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		srv.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		srv.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if srv.httpServer == nil && srv.gRPCServer == nil {
		return nil, errNoTransports
	}

	return srv, nil
}

// Run launches every enabled transport and blocks until SIGTERM, SIGINT or
// SIGQUIT arrives and the graceful shutdown finishes.
func (s *server) Run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("resolution API listening on HTTP")
		go s.httpServer.serve()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.address).Msg("health service listening on gRPC")
		go s.gRPCServer.serve()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("all transports stopped")
}

// Shutdown stops whichever transports were started. Safe to call from another
// goroutine while Run blocks.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
}
