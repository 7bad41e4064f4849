package settings

import "errors"

// Validation errors returned by [Settings.validate] and
// [CLISettings.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidServerSettings indicates invalid server settings
	// (for example, a non-positive request timeout).
	ErrInvalidServerSettings = errors.New("invalid server settings")
	// ErrInvalidFetchSettings indicates invalid fetch settings
	// (for example, a non-positive timeout or body size cap).
	ErrInvalidFetchSettings = errors.New("invalid fetch settings")
	// ErrInvalidAuthSettings indicates an incomplete auth group
	// (a sign key without an issuer or token lifetime).
	ErrInvalidAuthSettings = errors.New("invalid auth settings")
	// ErrInvalidHistorySettings indicates invalid history settings
	// (for example, an empty history database path).
	ErrInvalidHistorySettings = errors.New("invalid history settings")
	// ErrInvalidResolverSettings indicates invalid resolver settings
	// (for example, a negative max-cores cap).
	ErrInvalidResolverSettings = errors.New("invalid resolver settings")
)
