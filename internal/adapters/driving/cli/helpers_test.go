package cli

import (
	"context"
	"errors"
	"time"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
)

// mockSearchService returns canned snippets.
type mockSearchService struct {
	snippets []domain.Snippet
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.Snippet, error) {
	m.lastOpts = opts
	return m.snippets, nil
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.Snippet, error) {
	return nil, errors.New("backend down")
}

// mockPipelineRunner records the options it ran with.
type mockPipelineRunner struct {
	report   *driving.RunReport
	err      error
	lastOpts driving.RunOptions
}

func (m *mockPipelineRunner) Run(
	_ context.Context,
	opts driving.RunOptions,
) (*driving.RunReport, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	now := time.Now()
	return &driving.RunReport{RunID: "run-1", Started: now, Finished: now}, nil
}

// mockChatService echoes a canned reply and counts resets.
type mockChatService struct {
	reply    string
	err      error
	messages []string
	resets   int
}

func (m *mockChatService) Reply(_ context.Context, message string) (string, error) {
	m.messages = append(m.messages, message)
	return m.reply, m.err
}

func (m *mockChatService) Reset() { m.resets++ }

func (m *mockChatService) SessionID() string { return "session-1" }

// setupTestServices installs mock services and returns a cleanup function
// restoring the previous ones.
func setupTestServices() func() {
	oldPipeline := pipelineRunner
	oldSearch := searchService
	oldChat := chatService

	// Reset flag state left behind by earlier tests: cobra's
	// mutually-exclusive check reads flag.Changed, which Execute never
	// clears.
	for _, name := range []string{"download-only", "convert-only", "wiki-only", "index-only"} {
		flag := pipelineCmd.Flags().Lookup(name)
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}

	pipelineRunner = &mockPipelineRunner{}
	searchService = &mockSearchService{
		snippets: []domain.Snippet{
			{Title: "Users API", Reference: "users-api", Content: "API Name: Users API", Score: 0.95},
		},
	}
	chatService = &mockChatService{reply: "The Users API lists users."}

	return func() {
		pipelineRunner = oldPipeline
		searchService = oldSearch
		chatService = oldChat
	}
}
