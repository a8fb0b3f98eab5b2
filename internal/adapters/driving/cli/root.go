// Package cli provides the command-line interface for apimdocs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "0.1.0"

// Persistent flags shared by all commands.
var (
	configPath string
	verbose    bool
	demoMode   bool
)

// Services injected by the composition root. Commands guard against nil so
// the CLI degrades per command instead of failing wholesale.
var (
	pipelineRunner driving.PipelineRunner
	searchService  driving.SearchService
	chatService    driving.ChatService
	documentStore  driven.DocumentStore
)

// Services bundles the wired core services consumed by the commands.
type Services struct {
	Pipeline driving.PipelineRunner
	Search   driving.SearchService
	Chat     driving.ChatService
	Store    driven.DocumentStore
}

// SetupOptions carries the parsed persistent flags to the composition root.
type SetupOptions struct {
	// ConfigPath overrides the default settings file location.
	ConfigPath string

	// DemoMode selects the built-in sample catalog instead of a live one.
	DemoMode bool
}

// SetupFunc builds the services once persistent flags are parsed.
type SetupFunc func(opts SetupOptions) (*Services, error)

var setup SetupFunc

var rootCmd = &cobra.Command{
	Use:   "apimdocs",
	Short: "Download, convert and index API Management documentation",
	Long: `apimdocs enumerates APIs from an Azure API Management catalog, downloads
their swagger exports, converts them into fixed-layout text documents, and
indexes the documents into a search service.

The indexed corpus backs the search and chat commands, which answer
questions about the organisation's APIs with retrieved documentation.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the settings file (default ~/.apimdocs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo-mode", false,
		"use the built-in sample catalog instead of Azure API Management")
}

// configureServices wires the core services after flag parsing. When no
// setup function is registered (unit tests inject services directly) it only
// applies the logging level.
func configureServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if setup == nil {
		return nil
	}

	svcs, err := setup(SetupOptions{ConfigPath: configPath, DemoMode: demoMode})
	if err != nil {
		return fmt.Errorf("configuring services: %w", err)
	}

	pipelineRunner = svcs.Pipeline
	searchService = svcs.Search
	chatService = svcs.Chat
	documentStore = svcs.Store

	return nil
}

// Execute runs the root command with the given setup function.
func Execute(fn SetupFunc) error {
	setup = fn
	return rootCmd.Execute()
}
