// Package memory provides in-memory implementations of driven port
// interfaces, primarily for tests and the demo mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Put stores or fully replaces a document keyed by ID.
func (s *DocumentStore) Put(_ context.Context, doc domain.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("%w: document has no ID", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns all documents ordered by ID.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// ListByType returns documents with the given type, ordered by ID.
func (s *DocumentStore) ListByType(ctx context.Context, documentType string) ([]domain.Document, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(all))
	for _, doc := range all {
		if doc.DocumentType == documentType {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Delete removes a document. Deleting a missing ID is not an error.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *DocumentStore) Close() error {
	return nil
}
