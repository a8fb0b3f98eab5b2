package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testDocument(id string) domain.Document {
	return domain.Document{
		ID:           id,
		Title:        "Users API",
		Content:      "API Name: " + id,
		APIName:      "Users API",
		APIVersion:   "v1",
		DocumentType: domain.DocumentTypeAPI,
		LastUpdated:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		FileName:     id + ".md",
		Reference:    id,
	}
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("users-api")
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "users-api")
	require.NoError(t, err)
	assert.True(t, doc.LastUpdated.Equal(got.LastUpdated))
	got.LastUpdated = doc.LastUpdated
	assert.Equal(t, doc, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PutReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("users-api")
	require.NoError(t, store.Put(ctx, doc))

	doc.Content = "API Name: users-api (revised)"
	require.NoError(t, store.Put(ctx, doc))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1, "second write replaces the record")
	assert.Equal(t, "API Name: users-api (revised)", docs[0].Content)
}

func TestStore_PutRejectsEmptyID(t *testing.T) {
	store := newTestStore(t)

	err := store.Put(context.Background(), domain.Document{Title: "no id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_ListOrdersByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"orders-api", "users-api", "billing-api"} {
		require.NoError(t, store.Put(ctx, testDocument(id)))
	}

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "billing-api", docs[0].ID)
	assert.Equal(t, "orders-api", docs[1].ID)
	assert.Equal(t, "users-api", docs[2].ID)
}

func TestStore_ListByType(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("users-api")))

	other := testDocument("release-notes")
	other.DocumentType = "Wiki"
	require.NoError(t, store.Put(ctx, other))

	docs, err := store.ListByType(ctx, domain.DocumentTypeAPI)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "users-api", docs[0].ID)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("users-api")))
	require.NoError(t, store.Delete(ctx, "users-api"))

	_, err := store.Get(ctx, "users-api")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "users-api"), "deleting a missing ID is not an error")
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, testDocument("users-api")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "users-api")
	require.NoError(t, err)
	assert.Equal(t, "Users API", got.Title)
}
