// Package apim implements the catalog source against the Azure API
// Management management plane. It enumerates APIs, their operations and
// tags, and downloads specification exports.
package apim

import (
	"context"
	"fmt"
	"sync"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.CatalogSource = (*Connector)(nil)

// Connector enumerates APIs from one API Management instance.
type Connector struct {
	config *Config
	client *Client
	mu     sync.Mutex
	closed bool
}

// New creates a new API Management catalog connector.
func New(config *Config, tokenProvider driven.TokenProvider) (*Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Connector{
		config: config,
		client: NewClient(config, tokenProvider),
	}, nil
}

// Type returns the catalog type identifier.
func (c *Connector) Type() string {
	return "apim"
}

// Validate checks connectivity and credentials by listing the first page of
// APIs. An unreachable or unauthorised catalog is ErrCatalogUnavailable.
func (c *Connector) Validate(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrConnectorClosed
	}
	c.mu.Unlock()

	if _, err := c.client.ListAPIs(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

// ListAPIs streams raw API records in the catalog's listing order. Each
// record carries its tags and operations, with template parameters before
// query parameters. One outstanding management call at a time.
//
// Failure to reach the catalog, and a catalog listing zero APIs, both
// surface as ErrCatalogUnavailable on the error channel - sample data is
// never substituted here.
func (c *Connector) ListAPIs(ctx context.Context) (<-chan domain.RawAPI, <-chan error) {
	apisCh := make(chan domain.RawAPI)
	errsCh := make(chan error, 1)

	go func() {
		defer close(apisCh)
		defer close(errsCh)

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			errsCh <- domain.ErrConnectorClosed
			return
		}
		c.mu.Unlock()

		resources, err := c.client.ListAPIs(ctx)
		if err != nil {
			errsCh <- fmt.Errorf("%w: list APIs: %w", domain.ErrCatalogUnavailable, err)
			return
		}
		if len(resources) == 0 {
			errsCh <- fmt.Errorf("%w: service %s lists zero APIs",
				domain.ErrCatalogUnavailable, c.config.ServiceName)
			return
		}
		logger.Info("Catalog lists %d APIs", len(resources))

		for _, res := range resources {
			raw, err := c.buildRawAPI(ctx, res)
			if err != nil {
				errsCh <- err
				return
			}

			select {
			case apisCh <- *raw:
			case <-ctx.Done():
				errsCh <- ctx.Err()
				return
			}
		}
	}()

	return apisCh, errsCh
}

// buildRawAPI assembles one raw record from the list entry plus its tags
// and operations.
func (c *Connector) buildRawAPI(ctx context.Context, res apiResource) (*domain.RawAPI, error) {
	raw := domain.RawAPI{
		ID:          res.Name,
		DisplayName: res.Properties.DisplayName,
		Description: res.Properties.Description,
		Path:        res.Properties.Path,
		ServiceURL:  res.Properties.ServiceURL,
	}

	// A record without an identifier cannot be asked for operations or
	// tags; hand it to the normaliser as-is so it is counted as malformed.
	if res.Name == "" {
		return &raw, nil
	}

	tags, err := c.client.ListAPITags(ctx, res.Name)
	if err != nil {
		return nil, fmt.Errorf("list tags for %s: %w", res.Name, err)
	}
	for _, tag := range tags {
		raw.Tags = append(raw.Tags, tag.Name)
	}

	operations, err := c.client.ListOperations(ctx, res.Name)
	if err != nil {
		return nil, fmt.Errorf("list operations for %s: %w", res.Name, err)
	}
	for _, op := range operations {
		raw.Operations = append(raw.Operations, convertOperation(op))
	}

	logger.Debug("Enumerated API %s: %d operations, %d tags",
		res.Name, len(operations), len(tags))
	return &raw, nil
}

// convertOperation maps one wire operation to the raw model, keeping the
// two parameter declaration sources separate for the normaliser.
func convertOperation(op operationResource) domain.RawOperation {
	raw := domain.RawOperation{
		ID:          op.Name,
		DisplayName: op.Properties.DisplayName,
		Method:      op.Properties.Method,
		URLTemplate: op.Properties.URLTemplate,
		Description: op.Properties.Description,
	}
	for _, p := range op.Properties.TemplateParameters {
		raw.TemplateParameters = append(raw.TemplateParameters, convertParameter(p))
	}
	if op.Properties.Request != nil {
		for _, p := range op.Properties.Request.QueryParameters {
			raw.QueryParameters = append(raw.QueryParameters, convertParameter(p))
		}
	}
	return raw
}

func convertParameter(p parameterContract) domain.RawParameter {
	return domain.RawParameter{
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Required:    p.Required,
	}
}

// ExportSpec downloads the OpenAPI export for one API.
func (c *Connector) ExportSpec(ctx context.Context, apiID string) ([]byte, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, domain.ErrConnectorClosed
	}
	c.mu.Unlock()

	return c.client.ExportSpec(ctx, apiID)
}

// Close releases the connector.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
