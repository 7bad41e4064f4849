package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONSettings mirrors [Settings] with json tags and string-friendly
// durations, so that a settings file can spell "30s" instead of a
// nanosecond count.
type JSONSettings struct {
	Log struct {
		Level  string `json:"level"`
		Pretty bool   `json:"pretty"`
	} `json:"log,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		History struct {
			Path string `json:"path"`
		} `json:"history,omitempty"`
	} `json:"storage,omitempty"`

	Fetch struct {
		Timeout      Duration `json:"timeout"`
		MaxBodyBytes int64    `json:"max_body_bytes"`
		Retries      int      `json:"retries"`
	} `json:"fetch,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Resolver struct {
		MaxCoresPerJob int      `json:"max_cores_per_job"`
		ProtectedKeys  []string `json:"protected_keys"`
	} `json:"resolver,omitempty"`
}

// parseJSON loads one settings fragment from a JSON file. The result never
// carries a JSONFilePath of its own, so a settings file cannot chain-load
// another one.
func parseJSON(jsonFilePath string) (*Settings, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var jsonCfg JSONSettings
	if err := json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("decoding settings file: %w", err)
	}

	return &Settings{
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Pretty: jsonCfg.Log.Pretty,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			History: History{
				Path: jsonCfg.Storage.History.Path,
			},
		},
		Fetch: Fetch{
			Timeout:      time.Duration(jsonCfg.Fetch.Timeout),
			MaxBodyBytes: jsonCfg.Fetch.MaxBodyBytes,
			Retries:      jsonCfg.Fetch.Retries,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Resolver: Resolver{
			MaxCoresPerJob: jsonCfg.Resolver.MaxCoresPerJob,
			ProtectedKeys:  jsonCfg.Resolver.ProtectedKeys,
		},
	}, nil
}

// Duration unmarshals from either a JSON string in time.ParseDuration syntax
// or a bare nanosecond count, and always marshals back to the string form.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("duration must be a string or a number, got %T", v)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
