package driven

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// CatalogSource enumerates APIs from a remote management catalog.
//
// Enumeration is lazy and ordered: APIs arrive on the channel in the exact
// order the catalog lists them, and implementations issue one outstanding
// remote call at a time. A catalog that is unreachable, rejects
// authentication, or lists zero resources reports
// domain.ErrCatalogUnavailable on the error channel - it never substitutes
// fabricated records.
type CatalogSource interface {
	// Type returns the catalog type identifier (e.g., "apim", "demo").
	Type() string

	// Validate checks connectivity and credentials before enumeration.
	Validate(ctx context.Context) error

	// ListAPIs streams raw API records. Each record's Operations field is
	// already populated, with template-declared parameters before
	// query-declared parameters. Both channels are closed when
	// enumeration finishes.
	ListAPIs(ctx context.Context) (<-chan domain.RawAPI, <-chan error)

	// ExportSpec downloads the machine-readable specification for one
	// API. Returns domain.ErrNotFound when the catalog has no export for
	// the identifier.
	ExportSpec(ctx context.Context, apiID string) ([]byte, error)

	// Close releases resources.
	Close() error
}
