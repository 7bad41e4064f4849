package settings

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ──────────────────────────────────────────────────────────────

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{"zero value renders empty", NetAddress{}, ""},
		{"hostname and port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"ipv4 and port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"port without host", NetAddress{Host: "", Port: 8080}, ":8080"},
		{"ipv6 gains brackets", NetAddress{Host: "::1", Port: 8080}, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    NetAddress
	}{
		{name: "hostname and port", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4 and port", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "no colon at all", input: "localhost8080", wantErr: true},
		{name: "port is not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port above the range", input: "localhost:70000", wantErr: true},
		{name: "arbitrary hostname", input: "not-an-ip:8080", wantErr: true},
		{name: "trailing garbage", input: "localhost:8080:extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// ── ParseFlags ──────────────────────────────────────────────────────────────

// TestParseFlags exercises a representative mix of flags end to end.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Settings)
	}{
		{
			name: "no flags leaves everything zero",
			args: nil,
			verify: func(t *testing.T, cfg *Settings) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Nil(t, cfg.Resolver.ProtectedKeys)
			},
		},
		{
			name: "addresses and dsn",
			args: []string{"-a", "localhost:8085", "-grpc-address", "localhost:9095", "-d", "postgres://flag/db"},
			verify: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "localhost:8085", cfg.Server.HTTPAddress)
				assert.Equal(t, "localhost:9095", cfg.Server.GRPCAddress)
				assert.Equal(t, "postgres://flag/db", cfg.Storage.DB.DSN)
			},
		},
		{
			name: "timeouts and resolver tunables",
			args: []string{"-request-timeout", "45s", "-fetch-timeout", "5s", "-max-cores-per-job", "8"},
			verify: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
				assert.Equal(t, 8, cfg.Resolver.MaxCoresPerJob)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/protectconf/settings.json"},
			verify: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "/etc/protectconf/settings.json", cfg.JSONFilePath)
			},
		},
		{
			name: "protected keys split and trimmed",
			args: []string{"-protected-keys", "patients, Universal_Options.dockerhub,"},
			verify: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, []string{"patients", "Universal_Options.dockerhub"}, cfg.Resolver.ProtectedKeys)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The standard flag package parses into the global CommandLine,
			// so each case gets a fresh set and its own argv.
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestSplitProtectedKeys(t *testing.T) {
	assert.Nil(t, splitProtectedKeys(""))
	assert.Equal(t, []string{"a", "b"}, splitProtectedKeys("a,,b"))
	assert.Equal(t, []string{"patients"}, splitProtectedKeys(" patients "))
}
