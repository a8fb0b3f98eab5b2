// Command apimdocs downloads, converts and indexes API Management
// documentation, and answers questions about it.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/auth"
	"github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/config/file"
	openaiembed "github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/llm/anthropic"
	openaillm "github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/llm/openai"
	azsearch "github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/searchindex/azure"
	blevesearch "github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/searchindex/bleve"
	"github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driven/storage/sqlite"
	"github.com/abdomohamed/apim-swagger-downloader/internal/adapters/driving/cli"
	"github.com/abdomohamed/apim-swagger-downloader/internal/connectors/apim"
	"github.com/abdomohamed/apim-swagger-downloader/internal/connectors/demo"
	"github.com/abdomohamed/apim-swagger-downloader/internal/connectors/wiki"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/services"
	"github.com/abdomohamed/apim-swagger-downloader/internal/normalisers/catalog"
	"github.com/abdomohamed/apim-swagger-downloader/internal/renderers/apidoc"
)

func main() {
	if err := cli.Execute(buildServices); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices is the composition root: it loads the settings and wires
// the adapters into the core services the commands consume.
func buildServices(opts cli.SetupOptions) (*cli.Services, error) {
	settings, err := file.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	catalogSource, err := buildCatalog(settings, opts.DemoMode)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(settings.Output.DataDir)
	if err != nil {
		return nil, err
	}

	embedder, err := buildEmbedding(settings)
	if err != nil {
		return nil, err
	}

	index, err := buildSearchIndex(settings, embedder)
	if err != nil {
		return nil, err
	}

	filter := domain.Filter{
		IncludeIDs:  settings.Filter.IncludeAPIs,
		IncludeTags: settings.Filter.IncludeTags,
	}

	pipeline := services.NewPipeline(
		catalogSource, catalog.New(), apidoc.New(), store, index, filter)
	pipeline.SwaggerDir = settings.Output.SwaggerDir
	pipeline.MarkdownDir = settings.Output.MarkdownDir
	pipeline.Wiki = wiki.New(settings.Wiki.Dir, settings.Wiki.BaseURL)

	retrieval := services.NewRetrieval(index, settings.Search.Semantic)

	registry := services.NewSourceRegistry()
	if err := registry.Register(retrieval); err != nil {
		return nil, err
	}

	svcs := &cli.Services{
		Pipeline: pipeline,
		Search:   retrieval,
		Store:    store,
	}

	completion, err := buildCompletion(settings)
	if err != nil {
		return nil, err
	}
	if completion != nil {
		svcs.Chat = services.NewChat(registry, completion)
	}

	return svcs, nil
}

// buildCatalog selects the catalog source. Demo mode serves the built-in
// sample catalog and needs no credentials.
func buildCatalog(settings *file.Settings, demoMode bool) (driven.CatalogSource, error) {
	if demoMode {
		return demo.New(), nil
	}

	provider, err := buildTokenProvider(settings)
	if err != nil {
		return nil, err
	}

	return apim.New(&apim.Config{
		SubscriptionID: settings.Azure.SubscriptionID,
		ResourceGroup:  settings.Azure.ResourceGroup,
		ServiceName:    settings.Azure.ServiceName,
	}, provider)
}

// buildTokenProvider prefers a pre-issued token over the client
// credentials flow.
func buildTokenProvider(settings *file.Settings) (driven.TokenProvider, error) {
	if settings.Azure.AccessToken != "" {
		return auth.NewStaticProvider(settings.Azure.AccessToken)
	}
	return auth.NewClientCredentialsProvider(
		settings.Azure.TenantID,
		settings.Azure.ClientID,
		settings.Azure.ClientSecret,
	)
}

// buildSearchIndex selects the hosted or the local search backend.
func buildSearchIndex(settings *file.Settings, embedder driven.EmbeddingService) (driven.SearchIndex, error) {
	switch settings.Search.Backend {
	case "azure":
		return azsearch.New(&azsearch.Config{
			Endpoint:  settings.Search.Endpoint,
			IndexName: settings.Search.IndexName,
			APIKey:    settings.Search.APIKey,
			Semantic:  settings.Search.Semantic,
		}, embedder)
	default:
		path := settings.Search.IndexPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolving home directory: %w", err)
			}
			path = filepath.Join(home, ".apimdocs", "data", "index.bleve")
		}
		return blevesearch.New(path)
	}
}

// buildEmbedding creates the optional embedding service. Embedding is only
// enabled when a model is configured explicitly.
func buildEmbedding(settings *file.Settings) (driven.EmbeddingService, error) {
	if settings.Embedding.Model == "" || settings.Embedding.APIKey == "" {
		return nil, nil
	}
	return openaiembed.New(openaiembed.Config{
		APIKey:     settings.Embedding.APIKey,
		BaseURL:    settings.Embedding.BaseURL,
		Model:      settings.Embedding.Model,
		Dimensions: settings.Embedding.Dimensions,
	})
}

// buildCompletion creates the optional completion service. The chat command
// stays disabled when no provider key is configured.
func buildCompletion(settings *file.Settings) (driven.CompletionService, error) {
	if settings.LLM.APIKey == "" {
		return nil, nil
	}

	switch settings.LLM.Provider {
	case "anthropic":
		return anthropicllm.New(anthropicllm.Config{
			APIKey:  settings.LLM.APIKey,
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
	default:
		return openaillm.New(openaillm.Config{
			APIKey:  settings.LLM.APIKey,
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
	}
}
