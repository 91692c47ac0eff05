// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the env and
// envPrefix tags of [StructuredConfig]. Durations use time.ParseDuration
// syntax ("30s", "6h").
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
