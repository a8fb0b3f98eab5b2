// Package bleve provides a local full-text search index backed by the
// Bleve scorch engine. It serves the offline and demo configurations where
// no hosted search service is available; field capabilities mirror the
// hosted schema so the two backends are interchangeable.
package bleve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// snippetLength bounds the content excerpt returned per hit.
const snippetLength = 400

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Index is a Bleve-backed search index over rendered documents.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
	path  string
}

// NewMemOnly creates an in-memory index, used by tests and the demo mode.
func NewMemOnly() (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}
	return &Index{index: index}, nil
}

// New opens or creates a persistent index at the given path using the
// scorch backend.
func New(indexPath string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o750); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	index, err := bleve.NewUsing(indexPath, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		index, err = bleve.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("open or create index: %w", err)
		}
	}
	return &Index{index: index, path: indexPath}, nil
}

// buildIndexMapping declares the field capabilities once per collection.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	titleMapping := bleve.NewTextFieldMapping()
	docMapping.AddFieldMappingsAt("title", titleMapping)

	contentMapping := bleve.NewTextFieldMapping()
	docMapping.AddFieldMappingsAt("content", contentMapping)

	apiNameMapping := bleve.NewTextFieldMapping()
	docMapping.AddFieldMappingsAt("apiName", apiNameMapping)

	// Stored for retrieval, not searched.
	for _, field := range []string{"apiVersion", "documentType", "reference"} {
		fm := bleve.NewTextFieldMapping()
		fm.Index = false
		fm.IncludeInAll = false
		docMapping.AddFieldMappingsAt(field, fm)
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// EnsureIndex is a no-op: the mapping is declared at open time.
func (i *Index) EnsureIndex(_ context.Context) error {
	return nil
}

// Upsert writes documents keyed by ID. An existing document with the same
// ID is fully replaced.
func (i *Index) Upsert(_ context.Context, docs []domain.Document) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.index.NewBatch()
	for _, doc := range docs {
		if doc.ID == "" {
			return fmt.Errorf("%w: document has no ID", domain.ErrInvalidInput)
		}
		entry := map[string]any{
			"title":        doc.Title,
			"content":      doc.Content,
			"apiName":      doc.APIName,
			"apiVersion":   doc.APIVersion,
			"documentType": doc.DocumentType,
			"reference":    doc.Reference,
		}
		if err := batch.Index(doc.ID, entry); err != nil {
			return fmt.Errorf("index document %s: %w", doc.ID, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("batch index: %w", err)
	}
	return nil
}

// Search returns ranked snippets for a free-text query. The Semantic
// option is ignored; this backend is keyword-only.
func (i *Index) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	matchQuery := bleve.NewMatchQuery(query)
	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	request.Fields = []string{"title", "content", "reference"}

	results, err := i.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	snippets := make([]domain.Snippet, 0, len(results.Hits))
	for _, hit := range results.Hits {
		title, _ := hit.Fields["title"].(string)
		content, _ := hit.Fields["content"].(string)
		reference, _ := hit.Fields["reference"].(string)
		if reference == "" {
			reference = hit.ID
		}
		snippets = append(snippets, domain.Snippet{
			Content:   excerpt(content),
			Reference: reference,
			Title:     title,
			Score:     hit.Score,
		})
	}
	return snippets, nil
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.index.Close()
}

// excerpt truncates content to the snippet length at a rune boundary.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}
