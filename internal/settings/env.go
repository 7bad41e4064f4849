// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every environment lookup so that protectconf settings
// never collide with the pipeline's own environment.
const envPrefix = "PROTECTCONF_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [Settings] and its nested types, all under the PROTECTCONF_
// namespace.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
