package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoSessionSecrets indicates that APP_SESSION_SECRETS resolved to
	// an empty secret list; no cookie codec can be constructed without
	// at least one secret.
	ErrNoSessionSecrets = errors.New("no session secrets configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
