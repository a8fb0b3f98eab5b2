package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown catalog or backend type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrCatalogUnavailable indicates the resource catalog could not be
	// reached or returned no resources. It is never masked with sample
	// data; demo data requires the explicit demo mode.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrMalformedRecord indicates a remote record lacked a required
	// identifier. The record is skipped and counted, never fabricated.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrIndexWrite indicates the search backend rejected an upsert.
	ErrIndexWrite = errors.New("index write failed")

	// ErrRetrieval indicates a corpus query failed or timed out. Retrieval
	// degrades to an empty result set rather than propagating this to the
	// interactive loop.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrCompletion indicates the language-model backend failed or
	// returned no usable content. Surfaced as the turn's reply text.
	ErrCompletion = errors.New("completion failed")

	// ErrConnectorClosed indicates the catalog connector has been closed.
	ErrConnectorClosed = errors.New("connector closed")

	// ErrLLMUnavailable indicates no completion service is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrSearchUnavailable indicates no search index is configured.
	ErrSearchUnavailable = errors.New("search index unavailable")

	// ErrEmbeddingUnavailable indicates no embedding service is configured.
	// Semantic indexing and vector queries are disabled without one.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
