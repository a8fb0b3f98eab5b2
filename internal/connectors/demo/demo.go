// Package demo provides a fixed in-memory sample catalog. It exists for
// trying the pipeline without an API Management instance and is only
// selected by the explicit --demo-mode flag, never as a fallback when the
// real catalog is unreachable.
package demo

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

var _ driven.CatalogSource = (*Connector)(nil)

// Connector serves the built-in sample catalog.
type Connector struct{}

// New creates a demo catalog connector.
func New() *Connector {
	return &Connector{}
}

// Type returns the catalog type identifier.
func (c *Connector) Type() string {
	return "demo"
}

// Validate always succeeds; the sample catalog has no remote dependency.
func (c *Connector) Validate(_ context.Context) error {
	return nil
}

// ListAPIs streams the sample catalog.
func (c *Connector) ListAPIs(_ context.Context) (<-chan domain.RawAPI, <-chan error) {
	apisCh := make(chan domain.RawAPI, 1)
	errsCh := make(chan error, 1)

	apisCh <- sampleAPI()
	close(apisCh)
	close(errsCh)

	return apisCh, errsCh
}

// ExportSpec returns a minimal OpenAPI 2.0 export for the sample API.
func (c *Connector) ExportSpec(_ context.Context, apiID string) ([]byte, error) {
	if apiID != "sample-api" {
		return nil, domain.ErrNotFound
	}
	return []byte(sampleSwagger), nil
}

// Close releases the connector.
func (c *Connector) Close() error {
	return nil
}

func sampleAPI() domain.RawAPI {
	return domain.RawAPI{
		ID:          "sample-api",
		DisplayName: ptr("Sample API"),
		Description: ptr("A sample API for demonstration purposes."),
		Path:        ptr("/sample"),
		Tags:        []string{"v1", "sample"},
		Operations: []domain.RawOperation{
			{
				ID:          "get-users",
				DisplayName: ptr("Get Users"),
				Method:      ptr("GET"),
				URLTemplate: ptr("/users"),
				Description: ptr("Returns the list of users."),
				QueryParameters: []domain.RawParameter{
					{
						Name:        "page",
						Description: ptr("Page number to return."),
						Type:        ptr("integer"),
					},
					{
						Name:        "pageSize",
						Description: ptr("Number of users per page."),
						Type:        ptr("integer"),
					},
				},
			},
			{
				ID:          "get-user-by-id",
				DisplayName: ptr("Get User By ID"),
				Method:      ptr("GET"),
				URLTemplate: ptr("/users/{userId}"),
				Description: ptr("Returns a single user by identifier."),
				TemplateParameters: []domain.RawParameter{
					{
						Name:        "userId",
						Description: ptr("Identifier of the user."),
						Type:        ptr("string"),
					},
				},
			},
			{
				ID:          "create-user",
				DisplayName: ptr("Create User"),
				Method:      ptr("POST"),
				URLTemplate: ptr("/users"),
				Description: ptr("Creates a new user."),
			},
		},
	}
}

const sampleSwagger = `{
  "swagger": "2.0",
  "info": {"title": "Sample API", "version": "1.0"},
  "basePath": "/sample",
  "paths": {
    "/users": {
      "get": {"operationId": "get-users", "summary": "Get Users"},
      "post": {"operationId": "create-user", "summary": "Create User"}
    },
    "/users/{userId}": {
      "get": {"operationId": "get-user-by-id", "summary": "Get User By ID"}
    }
  }
}
`

func ptr[T any](v T) *T {
	return &v
}
