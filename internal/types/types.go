package types

import (
	"context"

	"github.com/palazzem/shoshin/internal/models"
)

// Core interfaces. Each hosted service the pipeline talks to is hidden
// behind a narrow capability so clients can be swapped without touching
// pipeline logic.

// Embedder computes one vector per input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer sends a prompt to a hosted completion endpoint and returns the
// generated text verbatim.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Transcriber turns an audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Cleaner normalizes raw documents and splits them into bounded chunks.
type Cleaner interface {
	Clean(documents []models.Document) ([]models.Document, error)
}

// Searcher retrieves the stored documents nearest to a query vector.
type Searcher interface {
	Search(ctx context.Context, embedding []float32, topK int) ([]models.Document, error)
}

// DocumentStore is a vector-capable document store. Store writes rows
// without vectors; UpdateEmbeddings computes and persists a vector for every
// un-embedded row and reports how many it embedded.
type DocumentStore interface {
	Searcher
	Store(ctx context.Context, documents []models.Document) error
	UpdateEmbeddings(ctx context.Context, embedder Embedder) (int, error)
	DeleteAll(ctx context.Context) error
	Close()
}
