// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates p from environment variables using the caarlos0/env
// library. Fields are mapped via the `env` tags declared on [Params].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(p *Params) error {
	if err := env.Parse(p); err != nil {
		return fmt.Errorf("error getting env params: %w", err)
	}
	return nil
}
