package llm

import (
	"context"
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// EmbeddingModel output dimension is 1536.
	EmbeddingModel = openai.AdaEmbeddingV2
	EmbeddingDim   = 1536

	// DefaultEmbeddingBatchSize groups texts into the embedding model's
	// batch limits.
	DefaultEmbeddingBatchSize = 32
)

type EmbedderConfig struct {
	ClientConfig
	BatchSize int
}

// Embedder computes vectors through the hosted embeddings endpoint, one
// request per batch of texts.
type Embedder struct {
	client    *openai.Client
	batchSize int
}

func NewEmbedder(config ClientConfig) *Embedder {
	return NewEmbedderWithConfig(EmbedderConfig{ClientConfig: config})
}

func NewEmbedderWithConfig(config EmbedderConfig) *Embedder {
	if config.BatchSize == 0 {
		config.BatchSize = DefaultEmbeddingBatchSize
	}
	return &Embedder{
		client:    newClient(config.ClientConfig),
		batchSize: config.BatchSize,
	}
}

// EmbedTexts returns one vector per input text, in input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += e.batchSize {
		end := min(start+e.batchSize, len(texts))

		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: texts[start:end],
			Model: EmbeddingModel,
		})
		if err != nil {
			return nil, wrapAIError(err)
		}

		data := resp.Data
		sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })
		for _, item := range data {
			vectors = append(vectors, item.Embedding)
		}
	}

	return vectors, nil
}
