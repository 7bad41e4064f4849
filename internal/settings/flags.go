package settings

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress carries a listen address split into host and port. Its String
// and Set methods satisfy flag.Value, so it registers with flag.Var directly.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads protectconfd's command line. Flags left at their defaults
// come back as zero values, which the settings fold treats as absent.
//
// Flags:
//
//	-a HTTP listen address as host:port
//	-grpc-address gRPC listen address as host:port
//	-d run archive database DSN
//	-history local history database path
//	-c/-config path to a JSON settings file
//	-log-level minimum log level (trace, debug, info, warn, error)
//	-pretty human-readable log output
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-fetch-timeout remote document fetch timeout (e.g., "15s")
//	-max-body-bytes maximum fetched document size in bytes
//	-token-sign-key API token signing key
//	-token-issuer API token issuer name
//	-token-duration API token lifetime (e.g., "1h", "30m")
//	-max-cores-per-job cap for the max_cores value stamped at finalization
//	-protected-keys extra protected dotted paths, comma-separated
func ParseFlags() *Settings {
	var httpAddress, grpcAddress NetAddress
	var databaseDSN string
	var historyPath string
	var jsonConfigPath string
	var logLevel string
	var logPretty bool
	var requestTimeout time.Duration
	var fetchTimeout time.Duration
	var maxBodyBytes int64
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var maxCoresPerJob int
	var protectedKeys string

	flag.Var(&httpAddress, "a", "HTTP listen address host:port")
	flag.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Run archive database DSN")
	flag.StringVar(&historyPath, "history", "", "Local history database path")
	flag.StringVar(&jsonConfigPath, "c", "", "Path to a JSON settings file")
	flag.StringVar(&jsonConfigPath, "config", "", "Path to a JSON settings file (alias of -c)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.BoolVar(&logPretty, "pretty", false, "Human-readable log output")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g. 30s)")
	flag.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Remote fetch timeout (e.g. 15s)")
	flag.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum fetched document size in bytes")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "API token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "API token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "API token lifetime (e.g. 1h)")
	flag.IntVar(&maxCoresPerJob, "max-cores-per-job", 0, "Cap for finalized max_cores")
	flag.StringVar(&protectedKeys, "protected-keys", "", "Extra protected dotted paths, comma-separated")

	flag.Parse()

	return &Settings{
		Log: Log{
			Level:  logLevel,
			Pretty: logPretty,
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			History: History{
				Path: historyPath,
			},
		},
		Fetch: Fetch{
			Timeout:      fetchTimeout,
			MaxBodyBytes: maxBodyBytes,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Resolver: Resolver{
			MaxCoresPerJob: maxCoresPerJob,
			ProtectedKeys:  splitProtectedKeys(protectedKeys),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitProtectedKeys turns a comma-separated flag value into a path list,
// dropping empty segments so that "a,,b" and "a,b" are equivalent.
func splitProtectedKeys(s string) []string {
	if s == "" {
		return nil
	}

	var keys []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}

// String renders the address as host:port. A zero NetAddress renders as the
// empty string so the settings fold treats an unset flag as absent.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set fills the address from a host:port pair. Ports outside 1..65535 are
// rejected, and so is any host that is neither an IP address nor localhost.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("address must look like host:port")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("parsing port: %w", err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("host must be an IP address or localhost")
	}

	a.Host = host
	a.Port = port
	return nil
}
