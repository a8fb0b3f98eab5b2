package mcp

import (
	"context"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	snippets []domain.Snippet
	lastOpts domain.SearchOptions
	err      error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.Snippet, error) {
	m.lastOpts = opts
	return m.snippets, m.err
}

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	reply string
	err   error
}

func (m *mockChatService) Reply(_ context.Context, _ string) (string, error) {
	return m.reply, m.err
}

func (m *mockChatService) Reset() {}

func (m *mockChatService) SessionID() string { return "session-1" }

// mockDocumentStore is a mock implementation of driven.DocumentStore.
type mockDocumentStore struct {
	docs []domain.Document
	err  error
}

func (m *mockDocumentStore) Put(_ context.Context, _ domain.Document) error {
	return m.err
}

func (m *mockDocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentStore) List(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockDocumentStore) ListByType(_ context.Context, _ string) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockDocumentStore) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentStore) Close() error { return nil }
