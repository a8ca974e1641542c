package llm_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sherrors "github.com/palazzem/shoshin/pkg/errors"
	"github.com/palazzem/shoshin/pkg/llm"
)

type embeddingData struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// serveEmbeddings answers with one vector per input text; the first vector
// component encodes the text's position within the request.
func serveEmbeddings(t *testing.T, requests *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		assert.Equal(t, "/v1/embeddings", r.URL.Path)

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "text-embedding-ada-002", req.Model)

		data := make([]embeddingData, len(req.Input))
		for i := range req.Input {
			data[i] = embeddingData{Object: "embedding", Index: i, Embedding: []float32{float32(i), 0.5}}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   data,
			"model":  req.Model,
		}))
	}
}

func TestEmbedTexts(t *testing.T) {
	srv := httptest.NewServer(serveEmbeddings(t, nil))
	defer srv.Close()

	embedder := llm.NewEmbedder(testConfig(srv))
	vectors, err := embedder.EmbedTexts(context.Background(), []string{"first chunk", "second chunk"})

	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{0, 0.5}, vectors[0])
	assert.Equal(t, []float32{1, 0.5}, vectors[1])
}

func TestEmbedTextsBatches(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(serveEmbeddings(t, &requests))
	defer srv.Close()

	embedder := llm.NewEmbedder(testConfig(srv))

	texts := make([]string, 70)
	for i := range texts {
		texts[i] = fmt.Sprintf("chunk %d", i)
	}
	vectors, err := embedder.EmbedTexts(context.Background(), texts)

	require.NoError(t, err)
	assert.Len(t, vectors, 70)
	assert.Equal(t, int64(3), requests.Load())
	// Last batch holds 6 texts, so the final vector sits at in-batch index 5.
	assert.Equal(t, []float32{5, 0.5}, vectors[69])
}

func TestEmbedTextsEmptyInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	}))
	defer srv.Close()

	embedder := llm.NewEmbedder(testConfig(srv))
	vectors, err := embedder.EmbedTexts(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestEmbedTextsEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	embedder := llm.NewEmbedder(testConfig(srv))
	_, err := embedder.EmbedTexts(context.Background(), []string{"a chunk"})

	var aiErr *sherrors.AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, sherrors.KindRateLimit, aiErr.Kind)
}
