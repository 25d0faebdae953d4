package uigen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProvider is returned when Options.Provider is not a
	// known backend kind.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrMissingModel is returned when Options.Model is empty.
	ErrMissingModel = errors.New("model is required")

	// ErrMissingAPIKey is returned by a dispatch on the openai path when
	// no API key was configured. No request is attempted.
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrMissingHost is returned by a dispatch on the ollama path when
	// no host was configured. No request is attempted.
	ErrMissingHost = errors.New("host is required")
)

// BackendError wraps a failure raised by the underlying backend adapter
// (network, auth, quota, malformed response). The cause is exposed via
// Unwrap and is never retried or suppressed.
type BackendError struct {
	Kind Kind
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("uigen: %s backend: %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
