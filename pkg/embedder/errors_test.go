package embedder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanbase/oaiembed-go/pkg/embedder"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "ErrProvider",
			err:      embedder.ErrProvider,
			expected: "embedding provider failed",
		},
		{
			name:     "ErrEmptyResult",
			err:      embedder.ErrEmptyResult,
			expected: "no embeddings returned",
		},
		{
			name:     "ErrResultCount",
			err:      embedder.ErrResultCount,
			expected: "unexpected number of embeddings",
		},
		{
			name:     "ErrDimensionMismatch",
			err:      embedder.ErrDimensionMismatch,
			expected: "embedding dimension mismatch",
		},
		{
			name:     "ErrInvalidConfig",
			err:      embedder.ErrInvalidConfig,
			expected: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestProviderError(t *testing.T) {
	originalErr := errors.New("connection refused")
	err := embedder.NewProviderError("EmbedQuery", originalErr)

	assert.Error(t, err)
	assert.Equal(t, "embedder: EmbedQuery: connection refused", err.Error())

	var target *embedder.ProviderError
	if assert.True(t, errors.As(err, &target)) {
		assert.Equal(t, "EmbedQuery", target.Op)
		assert.Equal(t, originalErr, target.Err)
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := embedder.NewProviderError("EmbedDocuments", originalErr)

	assert.Equal(t, originalErr, errors.Unwrap(err))
	assert.ErrorIs(t, err, originalErr)
}

func TestProviderErrorIs(t *testing.T) {
	err := embedder.NewProviderError("New", embedder.ErrEmptyResult)
	wrapped := fmt.Errorf("start session: %w", err)

	assert.ErrorIs(t, wrapped, embedder.ErrProvider)
	assert.ErrorIs(t, wrapped, embedder.ErrEmptyResult)
	assert.NotErrorIs(t, wrapped, embedder.ErrInvalidConfig)
	assert.True(t, embedder.IsProviderError(wrapped))

	assert.NotErrorIs(t, embedder.ErrEmptyResult, embedder.ErrProvider)
	assert.False(t, embedder.IsProviderError(embedder.ErrEmptyResult))
}

func TestNewProviderErrorNil(t *testing.T) {
	assert.NoError(t, embedder.NewProviderError("EmbedQuery", nil))
}
