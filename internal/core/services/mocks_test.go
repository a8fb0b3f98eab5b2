package services

import (
	"context"
	"sort"
	"time"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockCatalog implements driven.CatalogSource for testing.
type mockCatalog struct {
	apis      []domain.RawAPI
	listErr   error
	specs     map[string][]byte
	exportErr error
	lastCtx   context.Context
}

func (m *mockCatalog) Type() string { return "mock" }

func (m *mockCatalog) Validate(_ context.Context) error { return m.listErr }

func (m *mockCatalog) ListAPIs(ctx context.Context) (<-chan domain.RawAPI, <-chan error) {
	m.lastCtx = ctx
	apisCh := make(chan domain.RawAPI, len(m.apis))
	errsCh := make(chan error, 1)
	if m.listErr != nil {
		errsCh <- m.listErr
	} else {
		for _, api := range m.apis {
			apisCh <- api
		}
	}
	close(apisCh)
	close(errsCh)
	return apisCh, errsCh
}

func (m *mockCatalog) ExportSpec(_ context.Context, apiID string) ([]byte, error) {
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	if spec, ok := m.specs[apiID]; ok {
		return spec, nil
	}
	return []byte("{}"), nil
}

func (m *mockCatalog) Close() error { return nil }

// mockWiki implements driven.WikiSource for testing.
type mockWiki struct {
	docs []domain.Document
	err  error
}

func (m *mockWiki) Documents(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

// mockStore implements driven.DocumentStore for testing.
type mockStore struct {
	docs   map[string]domain.Document
	putErr error
}

func newMockStore() *mockStore {
	return &mockStore{docs: make(map[string]domain.Document)}
}

func (m *mockStore) Put(_ context.Context, doc domain.Document) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockStore) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *mockStore) List(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockStore) ListByType(ctx context.Context, documentType string) ([]domain.Document, error) {
	all, _ := m.List(ctx)
	out := make([]domain.Document, 0, len(all))
	for _, doc := range all {
		if doc.DocumentType == documentType {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *mockStore) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func (m *mockStore) Close() error { return nil }

// mockIndex implements driven.SearchIndex for testing.
type mockIndex struct {
	docs       map[string]domain.Document
	batches    []int
	ensureErr  error
	upsertErr  error
	searchErr  error
	snippets   []domain.Snippet
	lastQuery  string
	lastLimit  int
	ensureRuns int
}

func newMockIndex() *mockIndex {
	return &mockIndex{docs: make(map[string]domain.Document)}
}

func (m *mockIndex) EnsureIndex(_ context.Context) error {
	m.ensureRuns++
	return m.ensureErr
}

func (m *mockIndex) Upsert(_ context.Context, docs []domain.Document) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.batches = append(m.batches, len(docs))
	for _, doc := range docs {
		m.docs[doc.ID] = doc
	}
	return nil
}

func (m *mockIndex) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.Snippet, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.lastQuery = query
	m.lastLimit = opts.Limit
	if opts.Limit < len(m.snippets) {
		return m.snippets[:opts.Limit], nil
	}
	return m.snippets, nil
}

func (m *mockIndex) Close() error { return nil }

// mockCompletion implements driven.CompletionService for testing.
type mockCompletion struct {
	reply        string
	err          error
	lastMessages []driven.ChatMessage
}

func (m *mockCompletion) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return m.reply, m.err
}

func (m *mockCompletion) Chat(_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	m.lastMessages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockCompletion) ModelName() string { return "mock-model" }

func (m *mockCompletion) Ping(_ context.Context) error { return nil }

func (m *mockCompletion) Close() error { return nil }

// --- Fixtures ---

func ptr[T any](v T) *T { return &v }

func rawAPI(id string, tags ...string) domain.RawAPI {
	return domain.RawAPI{
		ID:          id,
		DisplayName: ptr(id),
		Tags:        tags,
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
