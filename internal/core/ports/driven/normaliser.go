package driven

import (
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// Normaliser maps one raw catalog record into the canonical API model.
//
// The mapping is total over well-formed records: every optional field
// resolves to a documented default, never an unset marker. A record missing
// its required identifier is the single rejection case, reported as
// domain.ErrMalformedRecord.
type Normaliser interface {
	// Normalise transforms a raw record into a canonical API.
	Normalise(raw domain.RawAPI) (*domain.API, error)
}

// Renderer serialises a canonical API into its document form.
//
// Render is a pure function: re-rendering an unchanged API yields
// byte-identical text. The layout is an external contract consumed as
// retrieval context; field order and labels must not change without a
// document format version bump.
type Renderer interface {
	// Render returns the textual document for one API.
	Render(api domain.API) string

	// Document returns the full canonical index record for one API.
	Document(api domain.API) domain.Document
}
