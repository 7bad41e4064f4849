package handler

import (
	"testing"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHandlers only stores the services pointer, so nil services are fine for
// construction tests.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   settings.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{
			name:     "both transports",
			server:   settings.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "http only",
			server:   settings.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "grpc only",
			server:   settings.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings.Settings{Server: tt.server}

			h, err := NewHandlers(nil, cfg, logger.Nop())

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil, "HTTP handler presence")
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil, "gRPC handler presence")
		})
	}
}

func TestNewHandlers_RequiresAnAddress(t *testing.T) {
	h, err := NewHandlers(nil, settings.Settings{}, logger.Nop())

	require.ErrorIs(t, err, errNoTransportHandlers)
	assert.Nil(t, h)
}
