package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNormalise_AllFieldsPresent(t *testing.T) {
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID:          "users-api",
		DisplayName: strPtr("Users API"),
		Description: strPtr("Manages users."),
		Path:        strPtr("/users"),
		ServiceURL:  strPtr("https://backend.example.com"),
		Tags:        []string{"v1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "users-api", api.ID)
	assert.Equal(t, "Users API", api.DisplayName)
	assert.Equal(t, "Manages users.", api.Description)
	assert.Equal(t, "/users", api.Path)
	assert.Equal(t, "https://backend.example.com", api.ServiceURL)
	assert.Equal(t, []string{"v1"}, api.Tags)
}

func TestNormalise_DefaultSubstitutionTotality(t *testing.T) {
	// Every optional field absent: the output must have every field
	// populated with its documented default, never an empty marker.
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "bare-api",
		Operations: []domain.RawOperation{
			{ID: "bare-op"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "bare-api", api.DisplayName)
	assert.Equal(t, DefaultDescription, api.Description)
	assert.Equal(t, DefaultPath, api.Path)

	require.Len(t, api.Operations, 1)
	op := api.Operations[0]
	assert.Equal(t, "bare-op", op.DisplayName)
	assert.Equal(t, DefaultMethod, op.Method)
	assert.Equal(t, DefaultPath, op.URLTemplate)
	assert.Equal(t, DefaultDescription, op.Description)
}

func TestNormalise_MissingIdentifierIsMalformed(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, err := n.Normalise(domain.RawAPI{ID: tt.id, DisplayName: strPtr("Nameless")})
			assert.Nil(t, api)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestNormalise_RequiredDefaultAsymmetry(t *testing.T) {
	// Required unset on a template parameter normalises to true; the same
	// field unset on a query parameter normalises to false.
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "users-api",
		Operations: []domain.RawOperation{
			{
				ID:                 "get-user-by-id",
				TemplateParameters: []domain.RawParameter{{Name: "userId"}},
				QueryParameters:    []domain.RawParameter{{Name: "verbose"}},
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, api.Operations[0].Parameters, 2)
	assert.True(t, api.Operations[0].Parameters[0].Required, "template parameter defaults to required")
	assert.False(t, api.Operations[0].Parameters[1].Required, "query parameter defaults to optional")
}

func TestNormalise_ExplicitRequiredWins(t *testing.T) {
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "users-api",
		Operations: []domain.RawOperation{
			{
				ID:                 "op",
				TemplateParameters: []domain.RawParameter{{Name: "a", Required: boolPtr(false)}},
				QueryParameters:    []domain.RawParameter{{Name: "b", Required: boolPtr(true)}},
			},
		},
	})

	require.NoError(t, err)
	assert.False(t, api.Operations[0].Parameters[0].Required)
	assert.True(t, api.Operations[0].Parameters[1].Required)
}

func TestNormalise_ParameterOrderTemplateBeforeQuery(t *testing.T) {
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "users-api",
		Operations: []domain.RawOperation{
			{
				ID: "op",
				TemplateParameters: []domain.RawParameter{
					{Name: "t1"}, {Name: "t2"},
				},
				QueryParameters: []domain.RawParameter{
					{Name: "q1"}, {Name: "q2"},
				},
			},
		},
	})

	require.NoError(t, err)
	names := make([]string, 0, 4)
	for _, p := range api.Operations[0].Parameters {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"t1", "t2", "q1", "q2"}, names)
}

func TestNormalise_OperationOrderPreserved(t *testing.T) {
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "users-api",
		Operations: []domain.RawOperation{
			{ID: "get-users"},
			{ID: "get-user-by-id"},
			{ID: "create-user"},
		},
	})

	require.NoError(t, err)
	ids := make([]string, 0, 3)
	for _, op := range api.Operations {
		ids = append(ids, op.ID)
	}
	assert.Equal(t, []string{"get-users", "get-user-by-id", "create-user"}, ids)
}

func TestNormalise_MethodUppercased(t *testing.T) {
	n := New()

	api, err := n.Normalise(domain.RawAPI{
		ID: "a",
		Operations: []domain.RawOperation{
			{ID: "op", Method: strPtr("post")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "POST", api.Operations[0].Method)
}
