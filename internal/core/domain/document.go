package domain

import "time"

// DocumentTypeAPI is the document type recorded for rendered API documents.
const DocumentTypeAPI = "API Documentation"

// DocumentTypeWiki is the document type recorded for combined wiki
// documents.
const DocumentTypeWiki = "Wiki"

// Document is the canonical index record derived 1:1 from an API. It is the
// only form of an API that persists across runs. A later write with the same
// ID fully supersedes the stored record; there is no partial merge.
type Document struct {
	// ID is the stable key, equal to the source API's identifier.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the rendered text, a pure function of the API's fields.
	Content string

	// APIName is a filterable copy of the API's name.
	APIName string

	// APIVersion is the detected API version, empty when none was found.
	APIVersion string

	// DocumentType categorises the record (DocumentTypeAPI for this pipeline).
	DocumentType string

	// LastUpdated is when the record was produced.
	LastUpdated time.Time

	// FileName is the artifact file name, when one was written.
	FileName string

	// Reference is the original location of the source material.
	Reference string
}
