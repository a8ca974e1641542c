package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palazzem/shoshin/internal/models"
	"github.com/palazzem/shoshin/pkg/pipeline"
)

type fakeEmbedder struct {
	texts  []string
	vector []float32
	err    error
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.texts = texts
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = f.vector
	}
	return vectors, nil
}

type fakeSearcher struct {
	embedding []float32
	topK      int
	documents []models.Document
	err       error
}

func (f *fakeSearcher) Search(_ context.Context, embedding []float32, topK int) ([]models.Document, error) {
	f.embedding = embedding
	f.topK = topK
	return f.documents, f.err
}

type fakeCompleter struct {
	prompt string
	answer string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestAnswer(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	searcher := &fakeSearcher{documents: []models.Document{
		models.New("The course covers linear algebra.", nil),
		models.New("Week two is about matrices.", nil),
	}}
	completer := &fakeCompleter{answer: "It covers linear algebra."}

	p := pipeline.New(embedder, searcher, completer)
	answer, err := p.Answer(context.Background(), "What is the course about?")

	require.NoError(t, err)
	assert.Equal(t, "It covers linear algebra.", answer)

	assert.Equal(t, []string{"What is the course about?"}, embedder.texts)
	assert.Equal(t, []float32{0.1, 0.2}, searcher.embedding)
	assert.Equal(t, pipeline.DefaultTopK, searcher.topK)

	assert.Contains(t, completer.prompt, "The course covers linear algebra.\nWeek two is about matrices.")
	assert.Contains(t, completer.prompt, "Question: What is the course about?")
}

func TestAnswerConfiguredTopK(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.3}}
	searcher := &fakeSearcher{}
	completer := &fakeCompleter{answer: "ok"}

	p := pipeline.NewWithConfig(embedder, searcher, completer, pipeline.Config{TopK: 3})
	_, err := p.Answer(context.Background(), "question")

	require.NoError(t, err)
	assert.Equal(t, 3, searcher.topK)
}

func TestAnswerWithoutRetrievedDocuments(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.3}}
	searcher := &fakeSearcher{}
	completer := &fakeCompleter{answer: "The question is out of scope."}

	p := pipeline.New(embedder, searcher, completer)
	answer, err := p.Answer(context.Background(), "Unrelated question?")

	require.NoError(t, err)
	assert.Equal(t, "The question is out of scope.", answer)
	assert.Contains(t, completer.prompt, "Related text: \n")
	assert.Contains(t, completer.prompt, "Question: Unrelated question?")
}

func TestAnswerEmbedderFailure(t *testing.T) {
	embedErr := errors.New("embedding failed")
	embedder := &fakeEmbedder{err: embedErr}
	searcher := &fakeSearcher{}
	completer := &fakeCompleter{}

	p := pipeline.New(embedder, searcher, completer)
	_, err := p.Answer(context.Background(), "question")

	assert.ErrorIs(t, err, embedErr)
	assert.Empty(t, completer.prompt)
}

func TestAnswerSearcherFailure(t *testing.T) {
	searchErr := errors.New("search failed")
	embedder := &fakeEmbedder{vector: []float32{0.3}}
	searcher := &fakeSearcher{err: searchErr}
	completer := &fakeCompleter{}

	p := pipeline.New(embedder, searcher, completer)
	_, err := p.Answer(context.Background(), "question")

	assert.ErrorIs(t, err, searchErr)
	assert.Empty(t, completer.prompt)
}
