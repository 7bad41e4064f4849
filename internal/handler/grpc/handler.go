// Package grpc implements the gRPC transport of protectconfd.
//
// The daemon's primary API is HTTP; the gRPC side exposes the standard
// health service so that orchestrators and load balancers can probe the
// instance without speaking the REST API.
package grpc

import (
	"github.com/pimmuno/protectconf/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root of the gRPC transport. It owns the health service
// whose status Register announces and SetNotServing revokes.
type Handler struct {
	// health implements the grpc.health.v1 protocol for this instance.
	health *health.Server

	logger *logger.Logger
}

// NewHandler builds the gRPC transport handler with a fresh health server.
// The resolution API itself stays on HTTP, so no service layer is wired in
// here.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health service to srv and marks the instance as
// serving. Called once before the server starts accepting connections.
func (h *Handler) Register(srv *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(srv, h.health)
	h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	h.logger.Debug().Msg("gRPC health service registered")
}

// SetNotServing flips every health status to NOT_SERVING so that probes
// drain the instance before the listener closes. Called at the start of
// graceful shutdown.
func (h *Handler) SetNotServing() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
}
