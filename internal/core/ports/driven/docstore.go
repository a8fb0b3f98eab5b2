package driven

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// DocumentStore persists rendered documents between pipeline stages.
//
// It replaces the ambient name-to-text map the first iteration of this
// pipeline kept in process memory: an explicit, passed-in store keeps runs
// independently testable and lets conversion and indexing run as separate
// invocations.
type DocumentStore interface {
	// Put inserts or replaces a document keyed by ID.
	Put(ctx context.Context, doc domain.Document) error

	// Get returns the document with the given ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents ordered by ID.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByType returns documents with the given document type, ordered
	// by ID.
	ListByType(ctx context.Context, documentType string) ([]domain.Document, error)

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
