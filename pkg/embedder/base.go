// Package embedder provides interfaces for text embedding providers.
//
// It defines the Provider interface that embedding adapters must satisfy,
// enabling text-to-vector conversion for similarity search, together with
// the ProviderError type every adapter reports remote failures with.
package embedder

import "context"

// Provider defines the capability contract exposed to retrieval layers.
//
// A Provider is fully initialized once constructed: VectorSize is known and
// fixed for the lifetime of the value.
type Provider interface {
	// EmbedDocuments converts a batch of documents into vector embeddings.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - documents: Texts to embed, sent in a single request
	//
	// Returns one vector per document, in input order, and any error.
	EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error)

	// EmbedQuery converts a single query string into a vector embedding.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)

	// VectorName returns a stable identifier for the vector space produced by
	// this provider, e.g. "fast-text-embedding-3-small".
	VectorName() string

	// VectorSize returns the dimension of embedding vectors produced by this provider.
	VectorSize() int
}
