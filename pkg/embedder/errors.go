package embedder

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrProvider indicates that an embedding could not be obtained from the
	// remote endpoint. Every *ProviderError matches it with errors.Is.
	ErrProvider = errors.New("embedding provider failed")

	// ErrEmptyResult indicates that the endpoint returned no embeddings.
	ErrEmptyResult = errors.New("no embeddings returned")

	// ErrResultCount indicates that the number of returned embeddings does not
	// match the number of inputs.
	ErrResultCount = errors.New("unexpected number of embeddings")

	// ErrDimensionMismatch indicates that a returned vector does not have the
	// provider's vector size.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ProviderError wraps a failure to obtain embeddings with operation context.
//
// Example:
//
//	err := &ProviderError{
//	    Op:  "EmbedQuery",
//	    Err: ErrEmptyResult,
//	}
//	// Error() returns: "embedder: EmbedQuery: no embeddings returned"
type ProviderError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "embedder: <Op>: <Err>"
func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedder: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrProvider, so callers can test for the
// error kind without errors.As.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// NewProviderError creates a new ProviderError wrapping the given error.
//
// If err is nil, returns nil. This allows safe error wrapping:
//
//	if err != nil {
//	    return NewProviderError("EmbedDocuments", err)
//	}
func NewProviderError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{
		Op:  op,
		Err: err,
	}
}

// IsProviderError reports whether err is, or wraps, a *ProviderError.
func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}
