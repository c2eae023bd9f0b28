package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// EmbeddingsClient wraps the OpenAI embeddings API.
type EmbeddingsClient struct {
	api          openai.Client
	Model        string
	ExpectedSize int // Expected vector size for validation
}

// NewEmbeddingsClient creates a new embeddings client.
// expectedSize is the configured vector dimension; every embedding returned
// by EmbedTexts is validated against it. Extra request options (base URL,
// custom HTTP client) are passed through to the underlying SDK client.
func NewEmbeddingsClient(apiKey, model string, expectedSize int, opts ...option.RequestOption) *EmbeddingsClient {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(60 * time.Second),
	}
	return &EmbeddingsClient{
		api:          openai.NewClient(append(base, opts...)...),
		Model:        model,
		ExpectedSize: expectedSize,
	}
}

// EmbedTexts generates embeddings for the given texts.
// Returns a slice of float32 vectors, one per input text, in input order.
func (c *EmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("empty input array")
	}

	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(c.Model),
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	result := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		if c.ExpectedSize > 0 && len(data.Embedding) != c.ExpectedSize {
			return nil, fmt.Errorf("embedding %d has size %d, expected %d", i, len(data.Embedding), c.ExpectedSize)
		}

		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		result[i] = vec
	}

	return result, nil
}
