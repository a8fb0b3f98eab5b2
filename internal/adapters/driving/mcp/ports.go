package mcp

import (
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
)

// Ports aggregates the service interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers corpus queries.
	Search driving.SearchService

	// Chat answers questions grounded in retrieved documentation.
	Chat driving.ChatService

	// Store lists and reads rendered documents for resource handlers.
	Store driven.DocumentStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Chat and Store are optional
	return nil
}
