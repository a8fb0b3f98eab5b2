package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func sampleSnippets() []domain.Snippet {
	return []domain.Snippet{
		{Content: "API Name: users-api", Reference: "users-api", Title: "Users API", Score: 2.1},
		{Content: "API Name: orders-api", Reference: "orders-api", Title: "Orders API", Score: 1.4},
	}
}

func TestRetrieval_Search(t *testing.T) {
	index := newMockIndex()
	index.snippets = sampleSnippets()

	retrieval := NewRetrieval(index, false)

	snippets, err := retrieval.Search(context.Background(), "users", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, snippets, 2)
	assert.Equal(t, domain.DefaultTopK, index.lastLimit, "zero limit defaults to top-K")
}

func TestRetrieval_SearchErrors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		retrieval := NewRetrieval(newMockIndex(), false)
		_, err := retrieval.Search(context.Background(), "   ", domain.SearchOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no index configured", func(t *testing.T) {
		retrieval := NewRetrieval(nil, false)
		_, err := retrieval.Search(context.Background(), "users", domain.SearchOptions{})
		assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		index := newMockIndex()
		index.searchErr = errors.New("connection refused")
		retrieval := NewRetrieval(index, false)

		_, err := retrieval.Search(context.Background(), "users", domain.SearchOptions{})
		assert.ErrorIs(t, err, domain.ErrRetrieval)
	})
}

func TestRetrieval_RetrieveDegrades(t *testing.T) {
	index := newMockIndex()
	index.searchErr = errors.New("connection refused")

	retrieval := NewRetrieval(index, false)

	// A transport failure yields an empty result set, never a panic or a
	// propagated error.
	snippets := retrieval.Retrieve(context.Background(), "users", 5)
	assert.Empty(t, snippets)
}

func TestRetrieval_RetrieveDefaultsTopK(t *testing.T) {
	index := newMockIndex()
	index.snippets = sampleSnippets()

	retrieval := NewRetrieval(index, true)

	snippets := retrieval.Retrieve(context.Background(), "users", 0)
	assert.Len(t, snippets, 2)
	assert.Equal(t, domain.DefaultTopK, index.lastLimit)
}
