// Package pipeline answers free-text questions by retrieving relevant
// passages from the store and feeding them to a hosted completion endpoint.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/palazzem/shoshin/internal/types"
)

// DefaultTopK is how many stored documents are retrieved per question.
const DefaultTopK = 10

// answerTemplate is static: the instruction to prefer retrieved context
// over parametric knowledge, and to state scope limits when no context is
// found, is baked into the prompt rather than computed.
const answerTemplate = `Synthesize a comprehensive answer from the following text for the given question.
Provide a clear and concise response that summarizes the key points and information
presented in the text. Your answers must be in your own words. Always use the related
text before your knowledge base. If you don't find anything in the related text,
kindly mention what the course is about and that the question goes outside of the
scope of the video course.

Related text: %s

Question: %s

Answer:`

type Config struct {
	TopK int
}

// Pipeline composes the embedder, the store, and the completion endpoint
// into a stateless question-answering round trip.
type Pipeline struct {
	embedder  types.Embedder
	searcher  types.Searcher
	completer types.Completer
	topK      int
}

func New(embedder types.Embedder, searcher types.Searcher, completer types.Completer) *Pipeline {
	return NewWithConfig(embedder, searcher, completer, Config{})
}

func NewWithConfig(embedder types.Embedder, searcher types.Searcher, completer types.Completer, config Config) *Pipeline {
	if config.TopK == 0 {
		config.TopK = DefaultTopK
	}
	return &Pipeline{
		embedder:  embedder,
		searcher:  searcher,
		completer: completer,
		topK:      config.TopK,
	}
}

// Answer embeds the question, retrieves the topK nearest documents, and
// asks the completion endpoint to synthesize an answer from them. Zero
// retrieved documents is not a failure: the prompt is sent with an empty
// context block and the template's instruction covers the reply.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	vectors, err := p.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return "", err
	}
	if len(vectors) != 1 {
		return "", fmt.Errorf("expected one embedding for the question, got %d", len(vectors))
	}

	documents, err := p.searcher.Search(ctx, vectors[0], p.topK)
	if err != nil {
		return "", err
	}

	contents := make([]string, len(documents))
	for i, doc := range documents {
		contents[i] = doc.Content
	}
	prompt := fmt.Sprintf(answerTemplate, strings.Join(contents, "\n"), question)

	return p.completer.Complete(ctx, prompt)
}
