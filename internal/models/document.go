package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentType describes the payload carried by a Document. Only plain text
// is produced by the pipeline today.
type ContentType string

const ContentTypeText ContentType = "text"

// MetaSplitID is the metadata key recording the zero-based position of a
// chunk within its original document.
const MetaSplitID = "_split_id"

// Document is the unit of storage and retrieval. The ID is derived from the
// content, so identical passages map to the same row in the store. The
// embedding is nil until the store computes it.
type Document struct {
	ID          string
	Content     string
	ContentType ContentType
	Metadata    map[string]string
	Embedding   []float32
}

// New builds a text Document with a content-derived ID.
func New(content string, metadata map[string]string) Document {
	sum := sha256.Sum256([]byte(content))
	return Document{
		ID:          hex.EncodeToString(sum[:]),
		Content:     content,
		ContentType: ContentTypeText,
		Metadata:    metadata,
	}
}
