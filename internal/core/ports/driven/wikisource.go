package driven

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// WikiSource collects supplementary wiki documents for the corpus.
//
// A service's design and build markdown pages are combined into one
// document so retrieval surfaces the full picture of a service alongside
// its generated API documentation.
type WikiSource interface {
	// Documents returns one combined document per service found in the
	// wiki tree, in deterministic order. A missing tree yields zero
	// documents, not an error.
	Documents(ctx context.Context) ([]domain.Document, error)
}
