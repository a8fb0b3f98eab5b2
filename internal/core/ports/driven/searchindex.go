package driven

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// SearchIndex stores and queries the rendered document corpus.
//
// Field capabilities (which fields are searchable, filterable, facetable,
// sortable, and which field carries the embedding vector) are schema declared
// once per collection by EnsureIndex, not per-call parameters. Changing them
// requires recreating the collection.
type SearchIndex interface {
	// EnsureIndex creates or updates the collection schema. Idempotent.
	EnsureIndex(ctx context.Context) error

	// Upsert writes documents keyed by ID. An existing document with the
	// same ID is fully replaced, never partially merged. No transactional
	// guarantee spans documents: partial completion is recoverable because
	// pipeline re-runs are idempotent.
	Upsert(ctx context.Context, docs []domain.Document) error

	// Search returns ranked snippets for a free-text query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error)

	// Close releases resources.
	Close() error
}
