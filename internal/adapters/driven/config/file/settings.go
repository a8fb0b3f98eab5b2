// Package file loads the typed application settings from a TOML file and
// overlays environment variables, so secrets never need to live in the
// config file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the full application configuration.
type Settings struct {
	Azure     AzureSettings     `toml:"azure"`
	Search    SearchSettings    `toml:"search"`
	Filter    FilterSettings    `toml:"filter"`
	Output    OutputSettings    `toml:"output"`
	Wiki      WikiSettings      `toml:"wiki"`
	LLM       LLMSettings       `toml:"llm"`
	Embedding EmbeddingSettings `toml:"embedding"`
}

// AzureSettings identify the API Management instance and the service
// principal used to reach the management plane.
type AzureSettings struct {
	SubscriptionID string `toml:"subscription_id"`
	ResourceGroup  string `toml:"resource_group"`
	ServiceName    string `toml:"service_name"`

	TenantID     string `toml:"tenant_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`

	// AccessToken is a pre-issued bearer token; when set it is used
	// instead of the client credentials flow.
	AccessToken string `toml:"access_token"`
}

// SearchSettings select and configure the search backend.
type SearchSettings struct {
	// Backend is "azure" or "bleve" (default: bleve when no endpoint is
	// configured, azure otherwise).
	Backend string `toml:"backend"`

	// Endpoint, IndexName and APIKey configure the Azure AI Search
	// backend.
	Endpoint  string `toml:"endpoint"`
	IndexName string `toml:"index_name"`
	APIKey    string `toml:"api_key"`

	// Semantic enables semantic ranking with captions on the hosted
	// backend.
	Semantic bool `toml:"semantic"`

	// IndexPath is the on-disk location of the local bleve index.
	IndexPath string `toml:"index_path"`
}

// FilterSettings restrict which APIs the pipeline carries.
type FilterSettings struct {
	IncludeAPIs []string `toml:"include_apis"`
	IncludeTags []string `toml:"include_tags"`
}

// OutputSettings name the artifact directories.
type OutputSettings struct {
	SwaggerDir  string `toml:"swagger_dir"`
	MarkdownDir string `toml:"markdown_dir"`
	DataDir     string `toml:"data_dir"`
}

// WikiSettings locate the supplementary wiki markdown tree.
type WikiSettings struct {
	// Dir is the root of the wiki markdown tree. A missing tree skips
	// the wiki stage with a warning.
	Dir string `toml:"dir"`

	// BaseURL turns page paths into published document references.
	BaseURL string `toml:"base_url"`
}

// LLMSettings configure the completion backend for the chat client.
type LLMSettings struct {
	// Provider is "openai" or "anthropic".
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Model    string `toml:"model"`
}

// EmbeddingSettings configure the optional embedding service.
type EmbeddingSettings struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".apimdocs", "config.toml")
}

// Load reads settings from the TOML file at path and applies environment
// overrides. A missing file is not an error: the environment alone can
// carry a complete configuration.
func Load(path string) (*Settings, error) {
	settings := &Settings{}

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fall through to environment overrides.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	settings.applyEnv()
	return settings, nil
}

// applyEnv overlays environment variables onto the loaded settings.
func (s *Settings) applyEnv() {
	setString(&s.Azure.SubscriptionID, "AZURE_SUBSCRIPTION_ID")
	setString(&s.Azure.ResourceGroup, "AZURE_RESOURCE_GROUP")
	setString(&s.Azure.ServiceName, "AZURE_APIM_SERVICE_NAME")
	setString(&s.Azure.TenantID, "AZURE_TENANT_ID")
	setString(&s.Azure.ClientID, "AZURE_CLIENT_ID")
	setString(&s.Azure.ClientSecret, "AZURE_CLIENT_SECRET")
	setString(&s.Azure.AccessToken, "AZURE_ACCESS_TOKEN")

	setString(&s.Search.Endpoint, "AZURE_SEARCH_ENDPOINT")
	setString(&s.Search.APIKey, "AZURE_SEARCH_KEY")
	setString(&s.Search.IndexName, "AZURE_SEARCH_INDEX_NAME")

	setList(&s.Filter.IncludeAPIs, "AZURE_APIM_INCLUDE_APIS")
	setList(&s.Filter.IncludeTags, "AZURE_APIM_INCLUDE_TAGS")

	setString(&s.LLM.APIKey, "OPENAI_API_KEY")
	if s.LLM.Provider == "anthropic" {
		setString(&s.LLM.APIKey, "ANTHROPIC_API_KEY")
	}
	setString(&s.Embedding.APIKey, "OPENAI_API_KEY")
}

// Validate applies defaults and checks cross-field consistency.
func (s *Settings) Validate() error {
	if s.Search.Backend == "" {
		if s.Search.Endpoint != "" {
			s.Search.Backend = "azure"
		} else {
			s.Search.Backend = "bleve"
		}
	}
	switch s.Search.Backend {
	case "azure", "bleve":
	default:
		return fmt.Errorf("unknown search backend %q", s.Search.Backend)
	}

	if s.LLM.Provider == "" {
		s.LLM.Provider = "openai"
	}
	switch s.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown llm provider %q", s.LLM.Provider)
	}

	if s.Search.IndexName == "" {
		s.Search.IndexName = "api-docs"
	}
	if s.Output.SwaggerDir == "" {
		s.Output.SwaggerDir = "output/swagger"
	}
	if s.Output.MarkdownDir == "" {
		s.Output.MarkdownDir = "output/markdown"
	}
	if s.Wiki.Dir == "" {
		s.Wiki.Dir = "wiki_documents"
	}
	return nil
}

func setString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func setList(target *[]string, key string) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*target = out
}
