// Package oaicompat provides an embedder.Provider for any OpenAI-compatible
// embeddings endpoint, self-hosted or vendor.
//
// The vector size is resolved once by New. When it is not configured, New
// issues a single probe request and measures the returned vector, since the
// OpenAI wire protocol exposes no model metadata. Supply Config.VectorSize
// when it is known to skip that round trip.
package oaicompat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oceanbase/oaiembed-go/pkg/embedder"
)

// ProbeInput is the text sent by the dimension probe.
const ProbeInput = "dummy"

// Config is the configuration for an Adapter.
// Model: Model identifier sent with every request (required)
// BaseURL: Endpoint base URL, e.g. "http://localhost:8000/v1" (required)
// APIKey: Bearer token for the endpoint (required)
// VectorSize: Embedding dimension; 0 probes the endpoint during New
type Config struct {
	Model      string
	BaseURL    string
	APIKey     string
	VectorSize int
}

// Validate checks that the required fields are set.
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return fmt.Errorf("oaicompat: config is nil: %w", embedder.ErrInvalidConfig)
	case c.Model == "":
		return fmt.Errorf("oaicompat: model is required: %w", embedder.ErrInvalidConfig)
	case c.BaseURL == "":
		return fmt.Errorf("oaicompat: base URL is required: %w", embedder.ErrInvalidConfig)
	case c.APIKey == "":
		return fmt.Errorf("oaicompat: API key is required: %w", embedder.ErrInvalidConfig)
	case c.VectorSize < 0:
		return fmt.Errorf("oaicompat: vector size %d is negative: %w", c.VectorSize, embedder.ErrInvalidConfig)
	}
	return nil
}

// Adapter implements embedder.Provider against an OpenAI-compatible endpoint.
//
// An Adapter is immutable after New returns and safe for concurrent use.
type Adapter struct {
	client     EmbeddingsClient
	model      string
	vectorName string
	vectorSize int
	logger     *slog.Logger
}

var _ embedder.Provider = (*Adapter)(nil)

// New creates a fully initialized Adapter.
//
// If cfg.VectorSize is 0, exactly one embedding request with ProbeInput is
// issued and the length of the returned vector becomes the vector size. A
// failed probe returns a *embedder.ProviderError and no Adapter.
//
// Args:
//   - ctx: Context for the probe request
//   - cfg: Adapter configuration
//   - opts: Optional transport, HTTP client and logger
func New(ctx context.Context, cfg *Config, opts ...Option) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	client := o.client
	if client == nil {
		client = NewOpenAIClient(cfg.BaseURL, cfg.APIKey, o.httpClient)
	}

	a := &Adapter{
		client:     client,
		model:      cfg.Model,
		vectorName: embedder.VectorNameForModel(cfg.Model),
		vectorSize: cfg.VectorSize,
		logger:     o.logger.With("model", cfg.Model, "base_url", cfg.BaseURL),
	}

	if a.vectorSize == 0 {
		size, err := a.probeVectorSize(ctx)
		if err != nil {
			return nil, err
		}
		a.vectorSize = size
	}

	a.logger.Debug("embedding adapter ready", "vector_name", a.vectorName, "vector_size", a.vectorSize)
	return a, nil
}

// probeVectorSize embeds ProbeInput and returns the resulting dimension.
func (a *Adapter) probeVectorSize(ctx context.Context) (int, error) {
	a.logger.Debug("probing embedding dimension")

	vectors, err := a.client.CreateEmbeddings(ctx, a.model, []string{ProbeInput})
	if err != nil {
		return 0, embedder.NewProviderError("New", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return 0, embedder.NewProviderError("New", embedder.ErrEmptyResult)
	}

	a.logger.Debug("probed embedding dimension", "vector_size", len(vectors[0]))
	return len(vectors[0]), nil
}

// EmbedDocuments converts documents to vectors with one batch request.
//
// Args:
//   - ctx: Context for controlling the request lifecycle
//   - documents: Texts to vectorize
//
// Returns:
//   - [][]float32: One vector per document, order matches documents
//   - error: *embedder.ProviderError if the request fails, the result count
//     differs from len(documents) or any vector has the wrong dimension
func (a *Adapter) EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error) {
	if len(documents) == 0 {
		return [][]float32{}, nil
	}

	vectors, err := a.client.CreateEmbeddings(ctx, a.model, documents)
	if err != nil {
		return nil, embedder.NewProviderError("EmbedDocuments", err)
	}
	if len(vectors) != len(documents) {
		return nil, embedder.NewProviderError("EmbedDocuments",
			fmt.Errorf("%w (got %d, expected %d)", embedder.ErrResultCount, len(vectors), len(documents)))
	}
	for i, v := range vectors {
		if err := a.checkDimension(v); err != nil {
			return nil, embedder.NewProviderError("EmbedDocuments", fmt.Errorf("document %d: %w", i, err))
		}
	}

	return vectors, nil
}

// EmbedQuery converts a single query to a vector.
func (a *Adapter) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := a.client.CreateEmbeddings(ctx, a.model, []string{query})
	if err != nil {
		return nil, embedder.NewProviderError("EmbedQuery", err)
	}
	if len(vectors) == 0 {
		return nil, embedder.NewProviderError("EmbedQuery", embedder.ErrEmptyResult)
	}
	if err := a.checkDimension(vectors[0]); err != nil {
		return nil, embedder.NewProviderError("EmbedQuery", err)
	}

	return vectors[0], nil
}

func (a *Adapter) checkDimension(v []float32) error {
	if len(v) != a.vectorSize {
		return fmt.Errorf("%w (got %d, expected %d)", embedder.ErrDimensionMismatch, len(v), a.vectorSize)
	}
	return nil
}

// VectorName returns the vector-space name derived from the model.
func (a *Adapter) VectorName() string {
	return a.vectorName
}

// VectorSize returns the vector dimension.
func (a *Adapter) VectorSize() int {
	return a.vectorSize
}

// Model returns the configured model identifier.
func (a *Adapter) Model() string {
	return a.model
}
