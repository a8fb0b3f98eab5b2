package apim

// Wire types for the API Management management-plane REST API. Optional
// fields are pointers so absence survives decoding and reaches the
// normaliser intact.

// listResponse is the envelope for paged collection responses.
type listResponse[T any] struct {
	Value    []T     `json:"value"`
	NextLink *string `json:"nextLink"`
}

// apiResource is one API in a list-APIs response.
type apiResource struct {
	// Name is the API identifier within the service.
	Name       string        `json:"name"`
	Properties apiProperties `json:"properties"`
}

type apiProperties struct {
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	Path        *string `json:"path"`
	ServiceURL  *string `json:"serviceUrl"`
	APIVersion  *string `json:"apiVersion"`
}

// operationResource is one operation in a list-operations response.
type operationResource struct {
	Name       string              `json:"name"`
	Properties operationProperties `json:"properties"`
}

type operationProperties struct {
	DisplayName        *string             `json:"displayName"`
	Method             *string             `json:"method"`
	URLTemplate        *string             `json:"urlTemplate"`
	Description        *string             `json:"description"`
	TemplateParameters []parameterContract `json:"templateParameters"`
	Request            *requestContract    `json:"request"`
}

type requestContract struct {
	QueryParameters []parameterContract `json:"queryParameters"`
}

// parameterContract is shared by template and query parameter declarations.
type parameterContract struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Required    *bool   `json:"required"`
}

// tagResource is one tag in a list-API-tags response.
type tagResource struct {
	Name       string        `json:"name"`
	Properties tagProperties `json:"properties"`
}

type tagProperties struct {
	DisplayName *string `json:"displayName"`
}

// exportResult is the response to an API export request. The specification
// itself is behind the returned link.
type exportResult struct {
	Value struct {
		Link string `json:"link"`
	} `json:"value"`
}
