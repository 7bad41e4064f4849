package settings

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in fallback values. Applied with the lowest priority, so any source
// that sets a field wins over these.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultGRPCAddress    = "localhost:9090"
	defaultRequestTimeout = 30 * time.Second
	defaultFetchTimeout   = 15 * time.Second
	defaultMaxBodyBytes   = 8 << 20 // 8 MiB
	defaultFetchRetries   = 2
	defaultLogLevel       = "info"
	defaultTokenDuration  = 24 * time.Hour
)

func defaultSettings() *Settings {
	return &Settings{
		Log: Log{
			Level: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			History: History{
				Path: defaultHistoryPath(),
			},
		},
		Fetch: Fetch{
			Timeout:      defaultFetchTimeout,
			MaxBodyBytes: defaultMaxBodyBytes,
			Retries:      defaultFetchRetries,
		},
		Auth: Auth{
			TokenDuration: defaultTokenDuration,
		},
	}
}

// defaultHistoryPath places the history database under the user's home
// directory, falling back to the working directory when no home is known
// (e.g. inside a minimal container).
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "protectconf-history.db"
	}
	return filepath.Join(home, ".protectconf", "history.db")
}
