package domain

// DefaultTopK is the default number of snippets returned by retrieval.
const DefaultTopK = 5

// SearchOptions configures a corpus query.
type SearchOptions struct {
	// Limit is the maximum number of snippets. Zero means DefaultTopK.
	Limit int

	// Semantic requests semantic ranking with extractive captions when the
	// backend supports it. Ignored by keyword-only backends.
	Semantic bool
}

// Snippet is one ranked text fragment returned by retrieval.
type Snippet struct {
	// Content is the matched text.
	Content string

	// Reference identifies the source document.
	Reference string

	// Title is the source document title.
	Title string

	// Score is the backend relevance score.
	Score float64
}
