package bleve

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func apiDocument(id, content string) domain.Document {
	return domain.Document{
		ID:           id,
		Title:        id,
		Content:      content,
		APIName:      id,
		DocumentType: domain.DocumentTypeAPI,
		Reference:    id,
	}
}

func TestIndex_UpsertAndSearch(t *testing.T) {
	index, err := NewMemOnly()
	require.NoError(t, err)
	defer index.Close()

	ctx := context.Background()
	require.NoError(t, index.EnsureIndex(ctx))
	require.NoError(t, index.Upsert(ctx, []domain.Document{
		apiDocument("users-api", "API Name: users-api\nOperation: get-users\nReturns the list of users."),
		apiDocument("orders-api", "API Name: orders-api\nOperation: get-orders\nReturns the list of orders."),
	}))

	snippets, err := index.Search(ctx, "users", domain.SearchOptions{Limit: 5})
	require.NoError(t, err)
	require.NotEmpty(t, snippets)
	assert.Equal(t, "users-api", snippets[0].Reference)
	assert.Contains(t, snippets[0].Content, "get-users")
	assert.Greater(t, snippets[0].Score, 0.0)
}

func TestIndex_UpsertReplaces(t *testing.T) {
	index, err := NewMemOnly()
	require.NoError(t, err)
	defer index.Close()

	ctx := context.Background()
	require.NoError(t, index.Upsert(ctx, []domain.Document{
		apiDocument("users-api", "Original description of the users service."),
	}))
	require.NoError(t, index.Upsert(ctx, []domain.Document{
		apiDocument("users-api", "Changed description of the users service."),
	}))

	snippets, err := index.Search(ctx, "users", domain.SearchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, snippets, 1, "second upsert replaces, never duplicates")
	assert.Contains(t, snippets[0].Content, "Changed description")
}

func TestIndex_SearchLimit(t *testing.T) {
	index, err := NewMemOnly()
	require.NoError(t, err)
	defer index.Close()

	ctx := context.Background()
	docs := make([]domain.Document, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		docs = append(docs, apiDocument("users-"+id, "users service variant "+id))
	}
	require.NoError(t, index.Upsert(ctx, docs))

	snippets, err := index.Search(ctx, "users", domain.SearchOptions{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, snippets, 3)
}

func TestIndex_RejectsEmptyID(t *testing.T) {
	index, err := NewMemOnly()
	require.NoError(t, err)
	defer index.Close()

	err = index.Upsert(context.Background(), []domain.Document{{Title: "no id"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIndex_Persistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.bleve")
	ctx := context.Background()

	index, err := New(path)
	require.NoError(t, err)
	require.NoError(t, index.Upsert(ctx, []domain.Document{
		apiDocument("users-api", "Returns the list of users."),
	}))
	require.NoError(t, index.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	snippets, err := reopened.Search(ctx, "users", domain.SearchOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, snippets)
}
