package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"the search query to run against the API documentation"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of snippets to return (default 5)"`
	Semantic bool   `json:"semantic,omitempty" jsonschema:"request semantic ranking when the backend supports it"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title     string  `json:"title"`
	Reference string  `json:"reference"`
	Score     float64 `json:"score"`
	Content   string  `json:"content,omitempty"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"a natural-language question about the organisation's APIs"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_api_docs",
		Description: "Search the indexed API documentation",
	}, s.handleSearch)

	if s.ports.Chat != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask_api_docs",
			Description: "Ask a question answered from the API documentation",
		}, s.handleAsk)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	opts := domain.SearchOptions{Limit: limit, Semantic: input.Semantic}
	snippets, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(snippets)),
		Count:   len(snippets),
	}

	for i := range snippets {
		output.Results[i] = SearchResultOutput{
			Title:     snippets[i].Title,
			Reference: snippets[i].Reference,
			Score:     snippets[i].Score,
			Content:   snippets[i].Content,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	reply, err := s.ports.Chat.Reply(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: reply}, nil
}
