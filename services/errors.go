package services

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeValidation means a generated result does not fit DebateResult.
	// It is never recovered by falling back.
	ErrShapeValidation = errors.New("debate result has invalid shape")

	// ErrProviderUnavailable means no primary provider is configured.
	ErrProviderUnavailable = errors.New("no text generation provider configured")

	ErrEmptyTopic      = errors.New("topic must not be empty")
	ErrEmptyClientName = errors.New("client_name must not be empty")
)

// ProviderError wraps a failed call to a provider. The debate chain treats it
// as a soft failure and moves on to the next attempt.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShapeValidation, fmt.Sprintf(format, args...))
}
