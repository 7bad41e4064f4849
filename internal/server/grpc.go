package server

import (
	"net"

	myGRPC "github.com/pimmuno/protectconf/internal/handler/grpc"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg settings.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) serve() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC listen failed")
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC transport failed")
	}
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("stopping gRPC transport")

	// Flip health to NOT_SERVING first so probes drain the instance while
	// in-flight calls finish.
	g.handler.SetNotServing()
	g.server.GracefulStop()
}
