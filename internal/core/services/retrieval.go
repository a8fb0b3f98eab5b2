package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// Ensure Retrieval implements both query surfaces.
var (
	_ driving.RetrievalSource = (*Retrieval)(nil)
	_ driving.SearchService   = (*Retrieval)(nil)
)

// Retrieval answers corpus queries against the search index.
//
// As a RetrievalSource it degrades: a backend failure yields an empty slice
// and a logged warning so the interactive loop keeps running. As a
// SearchService it propagates the error for the CLI and MCP surfaces to
// report directly.
type Retrieval struct {
	index    driven.SearchIndex
	semantic bool
}

// NewRetrieval creates a retrieval service over the given index. When
// semantic is true, queries request semantic ranking with extractive
// captions; otherwise they run as plain full-text queries. The two modes
// are exclusive, selected once at construction.
func NewRetrieval(index driven.SearchIndex, semantic bool) *Retrieval {
	return &Retrieval{index: index, semantic: semantic}
}

// Name returns the source identifier used for registration.
func (r *Retrieval) Name() string {
	return "api-docs"
}

// Retrieve returns up to topK ranked snippets for the query. Backend
// failures degrade to an empty result set with a warning.
func (r *Retrieval) Retrieve(ctx context.Context, query string, topK int) []domain.Snippet {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	snippets, err := r.Search(ctx, query, domain.SearchOptions{Limit: topK, Semantic: r.semantic})
	if err != nil {
		logger.Warn("Retrieval degraded to empty results: %v", err)
		return nil
	}
	return snippets
}

// Search returns ranked snippets for the query, propagating backend errors.
func (r *Retrieval) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error) {
	if r.index == nil {
		return nil, domain.ErrSearchUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if opts.Limit <= 0 {
		opts.Limit = domain.DefaultTopK
	}

	snippets, err := r.index.Search(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}
	logger.Debug("Query %q returned %d snippet(s)", query, len(snippets))
	return snippets, nil
}
