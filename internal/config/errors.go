package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. All of them abort process
// startup.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. The service cannot issue or verify bearer
	// tokens without it.
	ErrMissingTokenSignKey = errors.New("missing token signing key")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token issuer or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
