package apim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// requestsPerSecond caps management-plane calls. ARM throttles reads per
// principal; staying under is cheaper than handling 429 retries.
const requestsPerSecond = 8

// defaultTimeout bounds each management call.
const defaultTimeout = 60 * time.Second

// Client is a minimal API Management management-plane REST client.
type Client struct {
	http          *http.Client
	config        *Config
	tokenProvider driven.TokenProvider
	limiter       *rate.Limiter
}

// NewClient creates a management client for one service instance.
func NewClient(config *Config, tokenProvider driven.TokenProvider) *Client {
	return &Client{
		http:          &http.Client{Timeout: defaultTimeout},
		config:        config,
		tokenProvider: tokenProvider,
		limiter:       rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// ListAPIs returns every API in the service, following nextLink paging.
// Order is the catalog's listing order.
func (c *Client) ListAPIs(ctx context.Context) ([]apiResource, error) {
	url := fmt.Sprintf("%s/apis?api-version=%s", c.config.serviceBase(), c.config.apiVersion())
	return collectPages[apiResource](ctx, c, url)
}

// ListOperations returns the operations of one API in listing order.
func (c *Client) ListOperations(ctx context.Context, apiID string) ([]operationResource, error) {
	url := fmt.Sprintf("%s/apis/%s/operations?api-version=%s",
		c.config.serviceBase(), apiID, c.config.apiVersion())
	return collectPages[operationResource](ctx, c, url)
}

// ListAPITags returns the tags attached to one API.
func (c *Client) ListAPITags(ctx context.Context, apiID string) ([]tagResource, error) {
	url := fmt.Sprintf("%s/apis/%s/tags?api-version=%s",
		c.config.serviceBase(), apiID, c.config.apiVersion())
	return collectPages[tagResource](ctx, c, url)
}

// ExportSpec downloads the OpenAPI export for one API. The management API
// returns a short-lived link; the specification bytes are behind it.
func (c *Client) ExportSpec(ctx context.Context, apiID string) ([]byte, error) {
	url := fmt.Sprintf("%s/apis/%s?format=swagger-link&export=true&api-version=%s",
		c.config.serviceBase(), apiID, c.config.apiVersion())

	var result exportResult
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, fmt.Errorf("export %s: %w", apiID, err)
	}
	if result.Value.Link == "" {
		return nil, fmt.Errorf("export %s: no download link in export result", apiID)
	}

	// The export link is pre-signed; no bearer token on this request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.Value.Link, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("export %s: create request: %w", apiID, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export %s: download: %w", apiID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export %s: download returned status %d", apiID, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// collectPages fetches a paged collection, following nextLink until
// exhausted. One outstanding request at a time; page order is preserved.
func collectPages[T any](ctx context.Context, c *Client, url string) ([]T, error) {
	var items []T
	next := url
	for next != "" {
		var page listResponse[T]
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Value...)
		next = ""
		if page.NextLink != nil {
			next = *page.NextLink
		}
	}
	return items, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.tokenProvider.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("management API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
