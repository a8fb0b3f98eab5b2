package azure

// Wire types for the Azure AI Search REST API.

// indexSchema is the create-or-update body for PUT /indexes/{name}.
type indexSchema struct {
	Name           string          `json:"name"`
	Fields         []fieldSchema   `json:"fields"`
	VectorSearch   *vectorSearch   `json:"vectorSearch,omitempty"`
	SemanticSearch *semanticSearch `json:"semantic,omitempty"`
}

type fieldSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Key         bool   `json:"key,omitempty"`
	Searchable  bool   `json:"searchable"`
	Filterable  bool   `json:"filterable"`
	Facetable   bool   `json:"facetable"`
	Sortable    bool   `json:"sortable"`
	Retrievable bool   `json:"retrievable"`

	Analyzer string `json:"analyzer,omitempty"`

	Dimensions    int    `json:"dimensions,omitempty"`
	VectorProfile string `json:"vectorSearchProfile,omitempty"`
}

type vectorSearch struct {
	Algorithms []vectorAlgorithm `json:"algorithms"`
	Profiles   []vectorProfile   `json:"profiles"`
}

type vectorAlgorithm struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type vectorProfile struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

type semanticSearch struct {
	Configurations []semanticConfiguration `json:"configurations"`
}

type semanticConfiguration struct {
	Name              string              `json:"name"`
	PrioritizedFields semanticFieldGroups `json:"prioritizedFields"`
}

type semanticFieldGroups struct {
	TitleField    semanticField   `json:"titleField"`
	ContentFields []semanticField `json:"prioritizedContentFields"`
}

type semanticField struct {
	FieldName string `json:"fieldName"`
}

// indexDocument is one entry of the POST /docs/index body.
type indexDocument struct {
	Action        string    `json:"@search.action"`
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	APIName       string    `json:"apiName"`
	APIVersion    string    `json:"apiVersion"`
	DocumentType  string    `json:"documentType"`
	LastUpdated   string    `json:"lastUpdated"`
	FileName      string    `json:"fileName"`
	Reference     string    `json:"reference"`
	ContentVector []float32 `json:"contentVector,omitempty"`
}

type indexBatch struct {
	Value []indexDocument `json:"value"`
}

type indexBatchResult struct {
	Value []indexResult `json:"value"`
}

type indexResult struct {
	Key          string `json:"key"`
	Status       bool   `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

// searchRequest is the POST /docs/search body.
type searchRequest struct {
	Search                string        `json:"search"`
	Top                   int           `json:"top"`
	Select                string        `json:"select"`
	QueryType             string        `json:"queryType,omitempty"`
	SemanticConfiguration string        `json:"semanticConfiguration,omitempty"`
	Captions              string        `json:"captions,omitempty"`
	VectorQueries         []vectorQuery `json:"vectorQueries,omitempty"`
}

type vectorQuery struct {
	Kind   string    `json:"kind"`
	Vector []float32 `json:"vector"`
	Fields string    `json:"fields"`
	K      int       `json:"k"`
}

type searchResponse struct {
	Value []searchHit `json:"value"`
}

type searchHit struct {
	Score    float64 `json:"@search.score"`
	Captions []struct {
		Text string `json:"text"`
	} `json:"@search.captions"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Reference string `json:"reference"`
}

// apiError is the error envelope returned by the service.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
