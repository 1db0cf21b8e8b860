package nlp

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingClient encodes texts with an OpenAI-compatible embeddings API.
// The underlying client is safe for concurrent use, so one shared
// instance serves all parallel grading requests.
type EmbeddingClient struct {
	api   *openai.Client
	model openai.EmbeddingModel
}

// NewEmbeddingClient builds a client for the given endpoint. baseURL is
// optional and allows OpenAI-compatible local servers; model defaults to
// text-embedding-3-small.
func NewEmbeddingClient(apiKey, baseURL, model string) *EmbeddingClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	m := openai.SmallEmbedding3
	if model != "" {
		m = openai.EmbeddingModel(model)
	}
	return &EmbeddingClient{api: openai.NewClientWithConfig(cfg), model: m}
}

// Embed implements grading.Embedder. Vectors come back in input order.
func (c *EmbeddingClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Data), len(texts))
	}
	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

// Probe issues one tiny embedding request to confirm the endpoint and
// model actually work before the capability is advertised.
func (c *EmbeddingClient) Probe(ctx context.Context) error {
	_, err := c.Embed(ctx, []string{"probe"})
	return err
}

func (c *EmbeddingClient) Model() string { return string(c.model) }
