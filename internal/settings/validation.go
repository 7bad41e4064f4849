// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package settings

// validate checks that the final merged [Settings] satisfies the invariants
// shared by every consumer. Defaults fill the timeout and size fields, so a
// violation here means a source supplied an explicitly bad value.
//
// Returns nil if the settings are valid, or a descriptive error otherwise.
func (cfg *Settings) validate() error {
	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerSettings
	}

	if cfg.Fetch.Timeout <= 0 || cfg.Fetch.MaxBodyBytes <= 0 {
		return ErrInvalidFetchSettings
	}

	// A sign key alone is not a usable auth setup.
	if cfg.Auth.TokenSignKey != "" {
		if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
			return ErrInvalidAuthSettings
		}
	}

	if cfg.Resolver.MaxCoresPerJob < 0 {
		return ErrInvalidResolverSettings
	}

	return nil
}

func (cfg *CLISettings) validate() error {
	if cfg.History.Path == "" {
		return ErrInvalidHistorySettings
	}

	if cfg.Fetch.Timeout <= 0 || cfg.Fetch.MaxBodyBytes <= 0 {
		return ErrInvalidFetchSettings
	}

	return nil
}
