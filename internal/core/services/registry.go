package services

import (
	"fmt"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
)

// SourceRegistry holds the retrieval sources the chat agent consults.
//
// Sources are registered explicitly at wiring time. There is no runtime
// scanning for searchable capabilities: if a source is not registered here,
// the agent does not see it.
type SourceRegistry struct {
	names   []string
	sources map[string]driving.RetrievalSource
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{sources: make(map[string]driving.RetrievalSource)}
}

// Register adds a source under its own name. Registering a duplicate or
// unnamed source is an error.
func (r *SourceRegistry) Register(source driving.RetrievalSource) error {
	name := source.Name()
	if name == "" {
		return fmt.Errorf("%w: retrieval source has no name", domain.ErrInvalidInput)
	}
	if _, exists := r.sources[name]; exists {
		return fmt.Errorf("%w: retrieval source %q already registered", domain.ErrInvalidInput, name)
	}
	r.names = append(r.names, name)
	r.sources[name] = source
	return nil
}

// Get returns the source with the given name.
func (r *SourceRegistry) Get(name string) (driving.RetrievalSource, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: retrieval source %q", domain.ErrNotFound, name)
	}
	return source, nil
}

// Sources returns all registered sources in registration order.
func (r *SourceRegistry) Sources() []driving.RetrievalSource {
	out := make([]driving.RetrievalSource, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.sources[name])
	}
	return out
}
