package store_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palazzem/shoshin/internal/models"
	"github.com/palazzem/shoshin/pkg/store"
)

func TestNewWithConfigRejectsInvalidIndex(t *testing.T) {
	tests := []string{
		"my index",
		"docs-v2",
		"1document",
		"documents; DROP TABLE documents",
	}

	for _, index := range tests {
		t.Run(index, func(t *testing.T) {
			_, err := store.NewWithConfig(context.Background(), store.VectorStoreConfig{
				ConnString: "postgres://unused",
				Index:      index,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid index name")
		})
	}
}

// stubEmbedder returns a fixed three-dimensional vector per text, or fails
// every call when fail is set.
type stubEmbedder struct {
	fail  bool
	calls int
}

func (s *stubEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("embedding failed")
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1, 0}
	}
	return vectors, nil
}

// newTestStore connects to the database named by SHOSHIN_TEST_DATABASE_URL
// and starts from an empty index. Tests are skipped when the variable is
// unset.
func newTestStore(t *testing.T) *store.VectorStore {
	t.Helper()
	connString := os.Getenv("SHOSHIN_TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("SHOSHIN_TEST_DATABASE_URL not set")
	}

	vs, err := store.NewWithConfig(context.Background(), store.VectorStoreConfig{
		ConnString: connString,
		Index:      "document_test",
		VectorDim:  3,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		vs.DeleteAll(context.Background())
		vs.Close()
	})
	require.NoError(t, vs.DeleteAll(context.Background()))
	return vs
}

func TestStoreRoundTrip(t *testing.T) {
	vs := newTestStore(t)
	ctx := context.Background()

	docs := []models.Document{
		models.New("The course covers linear algebra.", map[string]string{"name": "intro.txt"}),
		models.New("Week two is about matrices.", map[string]string{"name": "week2.txt"}),
	}
	require.NoError(t, vs.Store(ctx, docs))

	// Unembedded rows are invisible to search.
	found, err := vs.Search(ctx, []float32{1, 1, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, found)

	embedded, err := vs.UpdateEmbeddings(ctx, &stubEmbedder{})
	require.NoError(t, err)
	assert.Equal(t, 2, embedded)

	found, err = vs.Search(ctx, []float32{1, 1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	names := []string{found[0].Metadata["name"], found[1].Metadata["name"]}
	assert.ElementsMatch(t, []string{"intro.txt", "week2.txt"}, names)

	// A second pass finds nothing left to embed.
	embedded, err = vs.UpdateEmbeddings(ctx, &stubEmbedder{})
	require.NoError(t, err)
	assert.Zero(t, embedded)
}

func TestStoreUpsertsByID(t *testing.T) {
	vs := newTestStore(t)
	ctx := context.Background()

	doc := models.New("Same passage.", map[string]string{"name": "a.txt"})
	require.NoError(t, vs.Store(ctx, []models.Document{doc}))
	require.NoError(t, vs.Store(ctx, []models.Document{doc}))

	embedded, err := vs.UpdateEmbeddings(ctx, &stubEmbedder{})
	require.NoError(t, err)
	assert.Equal(t, 1, embedded)
}

func TestUpdateEmbeddingsKeepsRowsOnFailure(t *testing.T) {
	vs := newTestStore(t)
	ctx := context.Background()

	docs := []models.Document{models.New("A stored passage.", nil)}
	require.NoError(t, vs.Store(ctx, docs))

	embedded, err := vs.UpdateEmbeddings(ctx, &stubEmbedder{fail: true})
	require.Error(t, err)
	assert.Zero(t, embedded)

	// The row survived and a retry embeds it.
	embedded, err = vs.UpdateEmbeddings(ctx, &stubEmbedder{})
	require.NoError(t, err)
	assert.Equal(t, 1, embedded)
}

func TestDeleteAll(t *testing.T) {
	vs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, vs.Store(ctx, []models.Document{models.New("A stored passage.", nil)}))
	_, err := vs.UpdateEmbeddings(ctx, &stubEmbedder{})
	require.NoError(t, err)

	require.NoError(t, vs.DeleteAll(ctx))

	found, err := vs.Search(ctx, []float32{1, 1, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}
