// Package store persists documents and their embeddings in Postgres with
// the pgvector extension. The contract is at-least-written,
// best-effort-embedded: rows written by Store are never rolled back when a
// later embedding call fails.
package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/palazzem/shoshin/internal/models"
	"github.com/palazzem/shoshin/internal/types"
)

// The index name is interpolated into SQL statements, so it must be a
// plain identifier.
var indexNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type VectorStoreConfig struct {
	ConnString string
	// Index is the table name documents are keyed under.
	Index string
	// VectorDim must match the embedding model's output dimensionality.
	// Mismatches are the caller's responsibility; they are not validated
	// here.
	VectorDim int
	// BatchSize groups rows per embedding request.
	BatchSize int
}

type VectorStore struct {
	config VectorStoreConfig
	pool   *pgxpool.Pool
}

func NewWithConfig(ctx context.Context, config VectorStoreConfig) (*VectorStore, error) {
	if config.Index == "" {
		config.Index = "document"
	}
	if config.VectorDim == 0 {
		config.VectorDim = 1536 // text-embedding-ada-002
	}
	if config.BatchSize == 0 {
		config.BatchSize = 32
	}
	if !indexNameRe.MatchString(config.Index) {
		return nil, fmt.Errorf("invalid index name: %q", config.Index)
	}

	pool, err := pgxpool.New(ctx, config.ConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	vs := &VectorStore{
		config: config,
		pool:   pool,
	}

	if err := vs.initialize(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return vs, nil
}

func (vs *VectorStore) initialize(ctx context.Context) error {
	_, err := vs.pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector")
	if err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	createTable := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			content_type TEXT NOT NULL DEFAULT 'text',
			metadata JSONB,
			embedding vector(%d)
		)`, vs.config.Index, vs.config.VectorDim)

	if _, err := vs.pool.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	createIndex := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS %s_embedding_idx
		ON %s
		USING ivfflat (embedding vector_cosine_ops)
		WITH (lists = 100)`,
		vs.config.Index, vs.config.Index)

	if _, err := vs.pool.Exec(ctx, createIndex); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// Store writes documents without embeddings. Rows are upserted by id, so
// re-loading the same passage is harmless.
func (vs *VectorStore) Store(ctx context.Context, documents []models.Document) error {
	tx, err := vs.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, content, content_type, metadata)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			content_type = EXCLUDED.content_type,
			metadata = EXCLUDED.metadata`,
		vs.config.Index)

	for _, doc := range documents {
		_, err := tx.Exec(ctx, stmt, doc.ID, doc.Content, string(doc.ContentType), doc.Metadata)
		if err != nil {
			return fmt.Errorf("failed to insert document %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateEmbeddings computes and persists a vector for every row that does
// not have one yet, in batches. Progress is committed per batch: rows
// embedded before a failed batch keep their vectors, and un-embedded rows
// stay written for a later retry. Returns the number of rows embedded.
func (vs *VectorStore) UpdateEmbeddings(ctx context.Context, embedder types.Embedder) (int, error) {
	selectStmt := fmt.Sprintf(
		"SELECT id, content FROM %s WHERE embedding IS NULL ORDER BY id",
		vs.config.Index)

	rows, err := vs.pool.Query(ctx, selectStmt)
	if err != nil {
		return 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var ids []string
	var texts []string
	for rows.Next() {
		var id, content string
		if err := rows.Scan(&id, &content); err != nil {
			return 0, fmt.Errorf("failed to scan row: %w", err)
		}
		ids = append(ids, id)
		texts = append(texts, content)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	rows.Close()

	updateStmt := fmt.Sprintf("UPDATE %s SET embedding = $1 WHERE id = $2", vs.config.Index)

	updated := 0
	for start := 0; start < len(ids); start += vs.config.BatchSize {
		end := min(start+vs.config.BatchSize, len(ids))

		vectors, err := embedder.EmbedTexts(ctx, texts[start:end])
		if err != nil {
			return updated, err
		}
		if len(vectors) != end-start {
			return updated, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), end-start)
		}

		tx, err := vs.pool.Begin(ctx)
		if err != nil {
			return updated, fmt.Errorf("failed to begin transaction: %w", err)
		}
		for i, id := range ids[start:end] {
			if _, err := tx.Exec(ctx, updateStmt, pgvector.NewVector(vectors[i]), id); err != nil {
				tx.Rollback(ctx)
				return updated, fmt.Errorf("failed to update embedding for %s: %w", id, err)
			}
		}
		if err := tx.Commit(ctx); err != nil {
			return updated, fmt.Errorf("failed to commit transaction: %w", err)
		}
		updated += end - start
	}

	return updated, nil
}

// Search returns the topK embedded documents nearest to the query vector
// by cosine distance.
func (vs *VectorStore) Search(ctx context.Context, embedding []float32, topK int) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, content, content_type, metadata
		FROM %s
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`,
		vs.config.Index)

	rows, err := vs.pool.Query(ctx, query, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		var contentType string
		if err := rows.Scan(&doc.ID, &doc.Content, &contentType, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		doc.ContentType = models.ContentType(contentType)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return docs, nil
}

// DeleteAll removes every document from the index.
func (vs *VectorStore) DeleteAll(ctx context.Context) error {
	if _, err := vs.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", vs.config.Index)); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

func (vs *VectorStore) Close() {
	if vs.pool != nil {
		vs.pool.Close()
	}
}
