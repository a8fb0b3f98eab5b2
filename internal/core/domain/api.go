package domain

// API is the canonical representation of one catalog resource after
// normalisation. All fields are populated; optional remote fields have been
// resolved to their documented defaults. The value is immutable once built
// and is discarded after a pipeline run - only its rendered Document persists.
type API struct {
	// ID is the unique, stable identifier across runs.
	ID string

	// DisplayName is the human-readable name.
	DisplayName string

	// Description is the free-text description.
	Description string

	// Path is the base path the API is served under.
	Path string

	// ServiceURL is the backend service URL, when the catalog exposes one.
	ServiceURL string

	// Tags are the catalog tags attached to this API.
	Tags []string

	// Operations are the API's operations in the exact order enumerated.
	// Insertion order is meaningful: rendered output must be reproducible.
	Operations []Operation
}

// Operation is one HTTP operation owned by its parent API.
type Operation struct {
	// ID is the operation identifier.
	ID string

	// DisplayName is the human-readable name.
	DisplayName string

	// Method is the HTTP method (e.g., "GET").
	Method string

	// URLTemplate is the URL template, possibly embedding {name} tokens.
	URLTemplate string

	// Description is the free-text description.
	Description string

	// Parameters holds template-derived parameters first, then
	// query-derived parameters, each group in enumeration order.
	Parameters []Parameter
}

// HasParameters reports whether the operation declares any parameters.
// The renderer emits the Parameters block only when this is true.
func (o Operation) HasParameters() bool {
	return len(o.Parameters) > 0
}

// Parameter describes one operation parameter.
type Parameter struct {
	// Name is the parameter name.
	Name string

	// Description is the free-text description.
	Description string

	// Type is the declared type. Free-form; callers must tolerate
	// arbitrary values.
	Type string

	// Required indicates whether the parameter must be supplied.
	// When the source leaves it unset, template parameters default to
	// true and query parameters to false. The asymmetry is deliberate.
	Required bool
}

// HasTag reports whether the API carries the given tag.
func (a API) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
