package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// namedSource is a minimal RetrievalSource for registry tests.
type namedSource struct {
	name string
}

func (s *namedSource) Name() string { return s.name }

func (s *namedSource) Retrieve(_ context.Context, _ string, _ int) []domain.Snippet {
	return nil
}

func TestSourceRegistry(t *testing.T) {
	registry := NewSourceRegistry()

	require.NoError(t, registry.Register(&namedSource{name: "api-docs"}))
	require.NoError(t, registry.Register(&namedSource{name: "wiki"}))

	source, err := registry.Get("api-docs")
	require.NoError(t, err)
	assert.Equal(t, "api-docs", source.Name())

	_, err = registry.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	names := make([]string, 0, 2)
	for _, s := range registry.Sources() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"api-docs", "wiki"}, names, "registration order preserved")
}

func TestSourceRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewSourceRegistry()

	require.NoError(t, registry.Register(&namedSource{name: "api-docs"}))
	assert.ErrorIs(t, registry.Register(&namedSource{name: "api-docs"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, registry.Register(&namedSource{name: ""}), domain.ErrInvalidInput)
}
