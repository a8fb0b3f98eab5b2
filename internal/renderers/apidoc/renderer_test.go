package apidoc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func sampleAPI() domain.API {
	return domain.API{
		ID:          "sample-api",
		DisplayName: "Sample API",
		Description: "A sample API.",
		Path:        "/sample",
		Tags:        []string{"v1"},
		Operations: []domain.Operation{
			{
				ID:          "get-users",
				DisplayName: "Get Users",
				Method:      "GET",
				URLTemplate: "/users",
				Description: "Lists users.",
				Parameters: []domain.Parameter{
					{Name: "page", Type: "integer", Description: "Page number.", Required: false},
					{Name: "pageSize", Type: "integer", Description: "Page size.", Required: false},
				},
			},
			{
				ID:          "get-user-by-id",
				DisplayName: "Get User By ID",
				Method:      "GET",
				URLTemplate: "/users/{userId}",
				Description: "Fetches one user.",
				Parameters: []domain.Parameter{
					{Name: "userId", Type: "string", Description: "User identifier.", Required: true},
				},
			},
			{
				ID:          "create-user",
				DisplayName: "Create User",
				Method:      "POST",
				URLTemplate: "/users",
				Description: "Creates a user.",
			},
		},
	}
}

func TestRender_FixedLayout(t *testing.T) {
	r := New()
	text := r.Render(sampleAPI())

	expected := `API Name: sample-api
Display Name: Sample API
Description: A sample API.
Path: /sample

Operation: Get Users
Method: GET
URL: /users
Description: Lists users.
Parameters:
- page (integer): Page number., Required: false
- pageSize (integer): Page size., Required: false

Operation: Get User By ID
Method: GET
URL: /users/{userId}
Description: Fetches one user.
Parameters:
- userId (string): User identifier., Required: true

Operation: Create User
Method: POST
URL: /users
Description: Creates a user.
`
	assert.Equal(t, expected, text)
}

func TestRender_ScenarioA(t *testing.T) {
	// Three Operation blocks in enumeration order; the parameterless
	// operation has no Parameters line.
	r := New()
	text := r.Render(sampleAPI())

	first := strings.Index(text, "Operation: Get Users")
	second := strings.Index(text, "Operation: Get User By ID")
	third := strings.Index(text, "Operation: Create User")

	require.True(t, first >= 0 && second > first && third > second,
		"operation blocks must appear in enumeration order")

	createBlock := text[third:]
	assert.NotContains(t, createBlock, "Parameters:")
}

func TestRender_Idempotent(t *testing.T) {
	r := New()
	api := sampleAPI()

	assert.Equal(t, r.Render(api), r.Render(api),
		"re-rendering an unchanged API must be byte-identical")
}

func TestDocument_Fields(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	r := New(WithClock(func() time.Time { return now }))

	doc := r.Document(sampleAPI())

	assert.Equal(t, "sample-api", doc.ID, "document is keyed by the API identifier")
	assert.Equal(t, "Sample API", doc.Title)
	assert.Equal(t, "v1", doc.APIVersion)
	assert.Equal(t, domain.DocumentTypeAPI, doc.DocumentType)
	assert.Equal(t, now, doc.LastUpdated)
	assert.Equal(t, "Sample_API_sample-api.md", doc.FileName)
	assert.Contains(t, doc.Content, "API Name: sample-api")
}

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name     string
		api      domain.API
		expected string
	}{
		{"from id", domain.API{ID: "users-api-v2"}, "v2"},
		{"from display name", domain.API{ID: "users", DisplayName: "Users v1.2"}, "v1.2"},
		{"from tag", domain.API{ID: "users", Tags: []string{"beta", "v3"}}, "v3"},
		{"none", domain.API{ID: "users"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectVersion(tt.api))
		})
	}
}

func TestFileName_Sanitised(t *testing.T) {
	api := domain.API{ID: "users-api", DisplayName: "Users API (beta)"}
	assert.Equal(t, "Users_API__beta__users-api.md", FileName(api))
}
