package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrProviderOffline indicates the catalog provider is unreachable
	ErrProviderOffline = errors.New("catalog provider is unreachable")

	// ErrAuthFailed indicates the provider rejected the API key
	ErrAuthFailed = errors.New("provider API key is invalid")

	// ErrEntryNotFound indicates the requested media library entry does not exist
	ErrEntryNotFound = errors.New("media entry not found")

	// ErrEditorNotReady indicates the editor session is not ready for timeline mutation
	ErrEditorNotReady = errors.New("editor session is not ready")
)
