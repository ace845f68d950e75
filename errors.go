package videotoken

import (
	"errors"
	"strings"
)

// Validation errors. The HTTP layer maps ErrMissingUserID and
// ErrMissingCallIDs to 400; everything else is a server-side failure (500).
// Messages name fields, never values.
var (
	// ErrMissingCredentials is returned when the API key or API secret is empty.
	ErrMissingCredentials = errors.New("videotoken: api key and api secret are required")

	// ErrMissingUserID is returned when the request carries no user ID.
	ErrMissingUserID = errors.New("videotoken: userId is required")

	// ErrMissingCallIDs is returned when a call token request carries no call identifiers.
	ErrMissingCallIDs = errors.New("videotoken: callIds must contain at least one call identifier")
)

// ConfigurationError reports the validator's findings when token generation
// is refused before signing is attempted.
type ConfigurationError struct {
	Errors []string
}

func (e *ConfigurationError) Error() string {
	return "videotoken: invalid configuration: " + strings.Join(e.Errors, "; ")
}

// TokenGenerationError wraps a vendor signer failure. It carries only the
// vendor's message text, never vendor internals.
type TokenGenerationError struct {
	Message string
}

func (e *TokenGenerationError) Error() string {
	return "videotoken: token generation failed: " + e.Message
}
