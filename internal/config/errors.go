package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidValidationConfigs indicates a non-positive body or multipart
	// memory limit.
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
