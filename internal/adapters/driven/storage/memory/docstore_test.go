package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func TestDocumentStore_PutGetDelete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := domain.Document{ID: "users-api", Title: "Users API", DocumentType: domain.DocumentTypeAPI}
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "users-api")
	require.NoError(t, err)
	assert.Equal(t, doc, *got)

	require.NoError(t, store.Delete(ctx, "users-api"))
	_, err = store.Get(ctx, "users-api")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "users-api"))
}

func TestDocumentStore_PutReplaces(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.Document{ID: "users-api", Content: "first"}))
	require.NoError(t, store.Put(ctx, domain.Document{ID: "users-api", Content: "second"}))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "second", docs[0].Content)
}

func TestDocumentStore_PutRejectsEmptyID(t *testing.T) {
	store := NewDocumentStore()
	err := store.Put(context.Background(), domain.Document{Title: "no id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentStore_ListByType(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.Document{ID: "b", DocumentType: domain.DocumentTypeAPI}))
	require.NoError(t, store.Put(ctx, domain.Document{ID: "a", DocumentType: domain.DocumentTypeAPI}))
	require.NoError(t, store.Put(ctx, domain.Document{ID: "c", DocumentType: "Wiki"}))

	docs, err := store.ListByType(ctx, domain.DocumentTypeAPI)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
}
