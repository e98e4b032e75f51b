package oaicompat

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingsClient is the transport the Adapter sends requests through.
//
// Given input texts and a model identifier it returns one vector per text in
// input order. Implementations do not validate dimensions; the Adapter does.
type EmbeddingsClient interface {
	CreateEmbeddings(ctx context.Context, model string, input []string) ([][]float32, error)
}

// openAIClient implements EmbeddingsClient with the go-openai SDK.
type openAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates an EmbeddingsClient for an OpenAI-compatible endpoint.
//
// Args:
//   - baseURL: Endpoint base URL; requests go to {baseURL}/embeddings
//   - apiKey: Bearer token sent in the Authorization header
//   - httpClient: Optional HTTP client (uses the SDK default if nil)
func NewOpenAIClient(baseURL, apiKey string, httpClient *http.Client) EmbeddingsClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}

	return &openAIClient{
		client: openai.NewClientWithConfig(config),
	}
}

// CreateEmbeddings sends a single embeddings request for all inputs.
func (c *openAIClient) CreateEmbeddings(ctx context.Context, model string, input []string) ([][]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: input,
		Model: openai.EmbeddingModel(model),
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	return orderByIndex(resp.Data), nil
}

// orderByIndex returns the vectors placed by their response index. Servers that
// omit or repeat indexes are taken in response order.
func orderByIndex(data []openai.Embedding) [][]float32 {
	vectors := make([][]float32, len(data))
	seen := make([]bool, len(data))
	for _, d := range data {
		if d.Index < 0 || d.Index >= len(data) || seen[d.Index] {
			for i, e := range data {
				vectors[i] = e.Embedding
			}
			return vectors
		}
		seen[d.Index] = true
		vectors[d.Index] = d.Embedding
	}
	return vectors
}
