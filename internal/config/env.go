// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from SERVER_ADDRESS, SERVER_REQUEST_TIMEOUT,
// SERVER_SHUTDOWN_TIMEOUT, VALIDATION_MAX_BODY_BYTES,
// VALIDATION_MAX_MULTIPART_MEMORY, LOG_LEVEL and CONFIG, following the env and
// envPrefix tags of [StructuredConfig]. Unset variables leave zero values for
// later sources and [Defaults] to fill.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
