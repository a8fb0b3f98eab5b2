// Package catalog normalises raw catalog records into the canonical API
// model. The mapping is total over well-formed records: every absent
// optional field resolves to a documented default so downstream rendering
// never sees an unset field.
package catalog

import (
	"fmt"
	"strings"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Documented defaults for absent optional fields.
const (
	// DefaultMethod is used when an operation omits its HTTP method.
	DefaultMethod = "GET"

	// DefaultPath is used when a record omits its path or URL template.
	DefaultPath = "/"

	// DefaultDescription is the sentinel for absent descriptions.
	DefaultDescription = "No description provided."

	// DefaultParameterType is used when a parameter omits its type.
	DefaultParameterType = "string"
)

// Normaliser maps raw catalog records to canonical APIs.
type Normaliser struct{}

// New creates a new catalog normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise transforms a raw record into a canonical API.
//
// A record without an identifier is rejected as domain.ErrMalformedRecord:
// identifiers key the index upsert, so fabricating one would mask the broken
// record instead of surfacing it. Every other absent field gets its default.
func (n *Normaliser) Normalise(raw domain.RawAPI) (*domain.API, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return nil, fmt.Errorf("%w: API record has no identifier (display name %q)",
			domain.ErrMalformedRecord, stringOr(raw.DisplayName, ""))
	}

	api := domain.API{
		ID:          raw.ID,
		DisplayName: stringOr(raw.DisplayName, raw.ID),
		Description: stringOr(raw.Description, DefaultDescription),
		Path:        stringOr(raw.Path, DefaultPath),
		ServiceURL:  stringOr(raw.ServiceURL, ""),
		Tags:        append([]string(nil), raw.Tags...),
		Operations:  make([]domain.Operation, 0, len(raw.Operations)),
	}

	for _, op := range raw.Operations {
		api.Operations = append(api.Operations, n.normaliseOperation(op))
	}

	return &api, nil
}

// normaliseOperation maps one operation, merging the two parameter sources:
// template-declared parameters first, then query-declared parameters.
func (n *Normaliser) normaliseOperation(raw domain.RawOperation) domain.Operation {
	op := domain.Operation{
		ID:          raw.ID,
		DisplayName: stringOr(raw.DisplayName, raw.ID),
		Method:      strings.ToUpper(stringOr(raw.Method, DefaultMethod)),
		URLTemplate: stringOr(raw.URLTemplate, DefaultPath),
		Description: stringOr(raw.Description, DefaultDescription),
	}

	total := len(raw.TemplateParameters) + len(raw.QueryParameters)
	if total > 0 {
		op.Parameters = make([]domain.Parameter, 0, total)
	}

	// Template parameters are part of the URL: unspecified Required means
	// required. Query parameters are additive: unspecified means optional.
	for _, p := range raw.TemplateParameters {
		op.Parameters = append(op.Parameters, normaliseParameter(p, true))
	}
	for _, p := range raw.QueryParameters {
		op.Parameters = append(op.Parameters, normaliseParameter(p, false))
	}

	return op
}

func normaliseParameter(raw domain.RawParameter, requiredDefault bool) domain.Parameter {
	required := requiredDefault
	if raw.Required != nil {
		required = *raw.Required
	}
	return domain.Parameter{
		Name:        raw.Name,
		Description: stringOr(raw.Description, DefaultDescription),
		Type:        stringOr(raw.Type, DefaultParameterType),
		Required:    required,
	}
}

// stringOr returns the pointed-to value when present and non-empty,
// otherwise the fallback.
func stringOr(s *string, fallback string) string {
	if s != nil && strings.TrimSpace(*s) != "" {
		return *s
	}
	return fallback
}
