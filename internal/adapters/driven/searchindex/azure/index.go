// Package azure implements the search index against the Azure AI Search
// REST API. Field capabilities are declared once per collection: id is the
// key, title and content are searchable, apiName, apiVersion and
// documentType are filterable and facetable, lastUpdated is filterable and
// sortable. When an embedding service is configured the collection also
// carries a content vector for hybrid queries.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

const (
	// apiVersion is the REST API version used for all requests.
	apiVersion = "2024-07-01"

	// semanticConfigName matches the configuration declared by EnsureIndex.
	semanticConfigName = "default-semantic-config"

	// vectorProfileName and vectorAlgorithmName declare the HNSW profile.
	vectorProfileName   = "default-hnsw-profile"
	vectorAlgorithmName = "default-hnsw"

	requestTimeout = 60 * time.Second
)

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Config holds the Azure AI Search connection settings.
type Config struct {
	// Endpoint is the service URL, e.g. https://myservice.search.windows.net.
	Endpoint string

	// IndexName is the collection name.
	IndexName string

	// APIKey is the admin or query key, sent as the api-key header.
	APIKey string

	// Semantic enables semantic ranking with extractive captions. Queries
	// otherwise run as plain full-text searches; the two modes are never
	// mixed per request.
	Semantic bool
}

// Validate checks the configuration is complete.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("search endpoint is required")
	}
	if strings.TrimSpace(c.IndexName) == "" {
		return fmt.Errorf("search index name is required")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("search API key is required")
	}
	return nil
}

// Index is an Azure AI Search backed search index.
type Index struct {
	config    *Config
	client    *http.Client
	embedding driven.EmbeddingService
}

// New creates a search index adapter. The embedding service is optional;
// when nil the collection has no vector field and queries are text-only.
func New(config *Config, embedding driven.EmbeddingService) (*Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Index{
		config:    config,
		client:    &http.Client{Timeout: requestTimeout},
		embedding: embedding,
	}, nil
}

// EnsureIndex creates or updates the collection schema. Idempotent.
func (i *Index) EnsureIndex(ctx context.Context) error {
	schema := i.buildSchema()

	url := fmt.Sprintf("%s/indexes/%s?api-version=%s",
		strings.TrimRight(i.config.Endpoint, "/"), i.config.IndexName, apiVersion)

	if err := i.send(ctx, http.MethodPut, url, schema, nil); err != nil {
		return fmt.Errorf("create or update index %s: %w", i.config.IndexName, err)
	}
	logger.Info("Search index %s created or updated", i.config.IndexName)
	return nil
}

// buildSchema declares the field capabilities of the collection.
func (i *Index) buildSchema() indexSchema {
	fields := []fieldSchema{
		{Name: "id", Type: "Edm.String", Key: true, Retrievable: true, Filterable: true},
		{Name: "title", Type: "Edm.String", Searchable: true, Retrievable: true, Analyzer: "en.microsoft"},
		{Name: "content", Type: "Edm.String", Searchable: true, Retrievable: true, Analyzer: "en.microsoft"},
		{Name: "apiName", Type: "Edm.String", Filterable: true, Facetable: true, Retrievable: true},
		{Name: "apiVersion", Type: "Edm.String", Filterable: true, Facetable: true, Retrievable: true},
		{Name: "documentType", Type: "Edm.String", Filterable: true, Facetable: true, Retrievable: true},
		{Name: "lastUpdated", Type: "Edm.DateTimeOffset", Filterable: true, Sortable: true, Retrievable: true},
		{Name: "fileName", Type: "Edm.String", Retrievable: true},
		{Name: "reference", Type: "Edm.String", Retrievable: true},
	}

	schema := indexSchema{
		Name:   i.config.IndexName,
		Fields: fields,
		SemanticSearch: &semanticSearch{
			Configurations: []semanticConfiguration{{
				Name: semanticConfigName,
				PrioritizedFields: semanticFieldGroups{
					TitleField:    semanticField{FieldName: "title"},
					ContentFields: []semanticField{{FieldName: "content"}},
				},
			}},
		},
	}

	if i.embedding != nil {
		schema.Fields = append(schema.Fields, fieldSchema{
			Name:          "contentVector",
			Type:          "Collection(Edm.Single)",
			Searchable:    true,
			Dimensions:    i.embedding.Dimensions(),
			VectorProfile: vectorProfileName,
		})
		schema.VectorSearch = &vectorSearch{
			Algorithms: []vectorAlgorithm{{Name: vectorAlgorithmName, Kind: "hnsw"}},
			Profiles:   []vectorProfile{{Name: vectorProfileName, Algorithm: vectorAlgorithmName}},
		}
	}
	return schema
}

// Upsert writes documents keyed by ID using the upload action, which fully
// replaces an existing document with the same key.
func (i *Index) Upsert(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	batch := indexBatch{Value: make([]indexDocument, 0, len(docs))}
	for _, doc := range docs {
		if doc.ID == "" {
			return fmt.Errorf("%w: document has no ID", domain.ErrInvalidInput)
		}
		entry := indexDocument{
			Action:       "upload",
			ID:           doc.ID,
			Title:        doc.Title,
			Content:      doc.Content,
			APIName:      doc.APIName,
			APIVersion:   doc.APIVersion,
			DocumentType: doc.DocumentType,
			LastUpdated:  doc.LastUpdated.UTC().Format(time.RFC3339),
			FileName:     doc.FileName,
			Reference:    doc.Reference,
		}
		batch.Value = append(batch.Value, entry)
	}

	if i.embedding != nil {
		if err := i.embedBatch(ctx, docs, batch.Value); err != nil {
			return err
		}
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/index?api-version=%s",
		strings.TrimRight(i.config.Endpoint, "/"), i.config.IndexName, apiVersion)

	var result indexBatchResult
	if err := i.send(ctx, http.MethodPost, url, batch, &result); err != nil {
		return fmt.Errorf("upload %d document(s): %w", len(docs), err)
	}

	for _, item := range result.Value {
		if !item.Status {
			return fmt.Errorf("document %s rejected: %s", item.Key, item.ErrorMessage)
		}
	}
	logger.Debug("Uploaded %d document(s) to %s", len(docs), i.config.IndexName)
	return nil
}

// embedBatch fills the content vectors for one upload batch.
func (i *Index) embedBatch(ctx context.Context, docs []domain.Document, entries []indexDocument) error {
	texts := make([]string, len(docs))
	for n, doc := range docs {
		texts[n] = doc.Content
	}
	vectors, err := i.embedding.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed %d document(s): %w", len(docs), err)
	}
	if len(vectors) != len(entries) {
		return fmt.Errorf("embedding service returned %d vector(s) for %d document(s)",
			len(vectors), len(entries))
	}
	for n := range entries {
		entries[n].ContentVector = vectors[n]
	}
	return nil
}

// Search returns ranked snippets for a free-text query. With the Semantic
// option set (and enabled in the config) the query runs with semantic
// ranking and extractive captions; otherwise as a plain full-text search.
func (i *Index) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	request := searchRequest{
		Search: query,
		Top:    limit,
		Select: "id,title,content,reference",
	}
	if opts.Semantic && i.config.Semantic {
		request.QueryType = "semantic"
		request.SemanticConfiguration = semanticConfigName
		request.Captions = "extractive"
	}
	if i.embedding != nil {
		vector, err := i.embedding.Embed(ctx, query)
		if err != nil {
			// A failed query embedding downgrades to text-only search.
			logger.Warn("Query embedding failed, searching text-only: %v", err)
		} else {
			request.VectorQueries = []vectorQuery{{
				Kind:   "vector",
				Vector: vector,
				Fields: "contentVector",
				K:      limit,
			}}
		}
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s",
		strings.TrimRight(i.config.Endpoint, "/"), i.config.IndexName, apiVersion)

	var response searchResponse
	if err := i.send(ctx, http.MethodPost, url, request, &response); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	snippets := make([]domain.Snippet, 0, len(response.Value))
	for _, hit := range response.Value {
		content := hit.Content
		// A semantic caption is a better snippet than the whole document.
		if len(hit.Captions) > 0 && hit.Captions[0].Text != "" {
			content = hit.Captions[0].Text
		}
		reference := hit.Reference
		if reference == "" {
			reference = hit.ID
		}
		snippets = append(snippets, domain.Snippet{
			Content:   content,
			Reference: reference,
			Title:     hit.Title,
			Score:     hit.Score,
		})
	}
	return snippets, nil
}

// Close releases resources.
func (i *Index) Close() error {
	i.client.CloseIdleConnections()
	return nil
}

// send issues one JSON request and decodes the response into out when
// non-nil.
func (i *Index) send(ctx context.Context, method, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", i.config.APIKey)

	resp, err := i.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the service error message from a failed response.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var serviceErr apiError
	if err := json.Unmarshal(body, &serviceErr); err == nil && serviceErr.Error.Message != "" {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, serviceErr.Error.Message)
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
