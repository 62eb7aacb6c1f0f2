// ABOUTME: Domain-level sentinel errors for the ingestion service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Normalization errors
var (
	// ErrMissingIdentity indicates a raw record carries no usable URL field
	// and therefore cannot be deduplicated
	ErrMissingIdentity = errors.New("record has no identity URL")
)

// Provider errors
var (
	// ErrUnknownProvider indicates no adapter is registered for a source name
	ErrUnknownProvider = errors.New("no adapter registered for provider")

	// ErrMissingCredential indicates a source has no base URL or API key configured
	ErrMissingCredential = errors.New("source is missing base URL or API key")
)

// Ingestion errors
var (
	// ErrRunInProgress indicates an ingestion run is already executing
	ErrRunInProgress = errors.New("ingestion run already in progress")
)
