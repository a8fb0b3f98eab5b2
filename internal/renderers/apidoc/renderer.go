// Package apidoc renders canonical APIs into the textual document format
// consumed as retrieval context. The layout - field order and labels - is an
// external contract; changing it requires a document format version bump.
package apidoc

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// versionPattern extracts an API version token (v1, v2.1, ...) from the
// API identifier or display name.
var versionPattern = regexp.MustCompile(`v\d+(\.\d+)*`)

// unsafeFilename matches characters replaced when deriving artifact names.
var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Renderer serialises APIs into documents.
type Renderer struct {
	// clock supplies LastUpdated timestamps; replaceable for tests.
	clock func() time.Time
}

// Option configures the renderer.
type Option func(*Renderer)

// WithClock overrides the timestamp source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(r *Renderer) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// New creates a new document renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{clock: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the textual document for one API.
//
// Render is pure: identical input yields byte-identical output. The
// Parameters block is emitted only when an operation has at least one
// parameter.
func (r *Renderer) Render(api domain.API) string {
	var b strings.Builder

	fmt.Fprintf(&b, "API Name: %s\n", api.ID)
	fmt.Fprintf(&b, "Display Name: %s\n", api.DisplayName)
	fmt.Fprintf(&b, "Description: %s\n", api.Description)
	fmt.Fprintf(&b, "Path: %s\n", api.Path)

	for _, op := range api.Operations {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Operation: %s\n", op.DisplayName)
		fmt.Fprintf(&b, "Method: %s\n", op.Method)
		fmt.Fprintf(&b, "URL: %s\n", op.URLTemplate)
		fmt.Fprintf(&b, "Description: %s\n", op.Description)

		if op.HasParameters() {
			b.WriteString("Parameters:\n")
			for _, p := range op.Parameters {
				fmt.Fprintf(&b, "- %s (%s): %s, Required: %t\n",
					p.Name, p.Type, p.Description, p.Required)
			}
		}
	}

	return b.String()
}

// Document returns the canonical index record for one API. The record ID is
// the API identifier so a later run's write supersedes this one.
func (r *Renderer) Document(api domain.API) domain.Document {
	return domain.Document{
		ID:           api.ID,
		Title:        api.DisplayName,
		Content:      r.Render(api),
		APIName:      api.ID,
		APIVersion:   detectVersion(api),
		DocumentType: domain.DocumentTypeAPI,
		LastUpdated:  r.clock().UTC(),
		FileName:     FileName(api),
		Reference:    api.Path,
	}
}

// FileName derives a filesystem-safe artifact name for one API.
func FileName(api domain.API) string {
	safe := unsafeFilename.ReplaceAllString(api.DisplayName, "_")
	return fmt.Sprintf("%s_%s.md", safe, api.ID)
}

// detectVersion finds a version token in the API identifier, display name or
// tags. Returns "" when none is present.
func detectVersion(api domain.API) string {
	if v := versionPattern.FindString(api.ID); v != "" {
		return v
	}
	if v := versionPattern.FindString(api.DisplayName); v != "" {
		return v
	}
	for _, tag := range api.Tags {
		if v := versionPattern.FindString(tag); v != "" {
			return v
		}
	}
	return ""
}
