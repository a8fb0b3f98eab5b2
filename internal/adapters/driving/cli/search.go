package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
)

var (
	searchLimit    int
	searchJSON     bool
	searchSemantic bool
)

// Styles for the search result table.
var (
	resultTitleStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))
	resultScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6C7086"))
	resultSnippetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CDD6F4")).
				PaddingLeft(6)
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed API documentation",
	Long: `Performs a full-text search across the indexed API documents.
When the search backend supports it, --semantic requests semantic ranking
with extractive captions instead of plain keyword matching.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultTopK,
		"maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchSemantic, "semantic", false,
		"request semantic ranking when the backend supports it")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Limit:    searchLimit,
		Semantic: searchSemantic,
	}

	snippets, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, snippets)
	}

	return outputSearchTable(cmd, snippets)
}

func outputSearchJSON(cmd *cobra.Command, snippets []domain.Snippet) error {
	data, err := json.MarshalIndent(snippets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, snippets []domain.Snippet) error {
	if len(snippets) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range snippets {
		// Format: [N] Title (Score) with the snippet indented below.
		title := snippets[i].Title
		if title == "" {
			title = snippets[i].Reference
		}

		cmd.Printf("  [%d] %s %s\n", i+1,
			resultTitleStyle.Render(title),
			resultScoreStyle.Render(fmt.Sprintf("(%.2f)", snippets[i].Score)))
		if snippets[i].Reference != "" {
			cmd.Printf("      Reference: %s\n", snippets[i].Reference)
		}
		if snippets[i].Content != "" {
			cmd.Println(resultSnippetStyle.Render(snippets[i].Content))
		}
		cmd.Println()
	}

	return nil
}
