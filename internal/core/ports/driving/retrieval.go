package driving

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// RetrievalSource answers free-text queries with ranked snippets.
//
// This is the explicit capability interface the chat agent consults - there
// is no runtime scanning for searchable functions. Implementations must
// degrade gracefully: a downstream search failure yields an empty slice and
// a logged warning, never a propagated transport error, so the calling loop
// stays responsive.
type RetrievalSource interface {
	// Name returns the source identifier used for registration.
	Name() string

	// Retrieve returns up to topK ranked snippets for the query.
	Retrieve(ctx context.Context, query string, topK int) []domain.Snippet
}

// SearchService answers corpus queries for the CLI and MCP surfaces.
// Unlike RetrievalSource it propagates backend errors to the caller, which
// surfaces them directly.
type SearchService interface {
	// Search returns ranked snippets for the query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error)
}
