package domain

// RawAPI is one catalog resource exactly as the remote catalog described it.
// Optional fields are pointers so that "absent" is distinguishable from
// "empty"; the normaliser resolves every absent field to a documented
// default. It is the enumerator's output before normalisation.
type RawAPI struct {
	// ID is the catalog identifier. Required: a record without one is
	// rejected as malformed rather than defaulted.
	ID string

	// DisplayName is the optional human-readable name.
	DisplayName *string

	// Description is the optional free-text description.
	Description *string

	// Path is the optional base path.
	Path *string

	// ServiceURL is the optional backend service URL.
	ServiceURL *string

	// Tags are the tags the catalog reports for this resource.
	Tags []string

	// Operations are the resource's operations in enumeration order.
	Operations []RawOperation
}

// RawOperation is one operation record as enumerated.
type RawOperation struct {
	// ID is the operation identifier.
	ID string

	// DisplayName is the optional human-readable name.
	DisplayName *string

	// Method is the optional HTTP method.
	Method *string

	// URLTemplate is the optional URL template.
	URLTemplate *string

	// Description is the optional free-text description.
	Description *string

	// TemplateParameters are parameters declared on the URL template.
	TemplateParameters []RawParameter

	// QueryParameters are parameters declared on the request query string.
	QueryParameters []RawParameter
}

// RawParameter is one parameter record as enumerated. The two declaration
// sources (template and query) share this shape but carry different
// Required defaults.
type RawParameter struct {
	// Name is the parameter name.
	Name string

	// Description is the optional free-text description.
	Description *string

	// Type is the optional declared type.
	Type *string

	// Required indicates whether the parameter is mandatory; nil means the
	// source left it unspecified.
	Required *bool
}
